package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr, prevExit, prevVerbose := Out, Err, exit, Verbose
	Out, Err = &out, &errOut
	DisableColors()
	t.Cleanup(func() {
		Out, Err, exit, Verbose = prevOut, prevErr, prevExit, prevVerbose
	})
	return &out, &errOut
}

func TestLevels(t *testing.T) {
	out, errOut := capture(t)

	Infof("bucket %s", "telegraf")
	Success("done")
	Warn("careful")
	ErrorNoExit("broken")

	assert.Equal(t, "[INFO] bucket telegraf\n[OK] done\n", out.String())
	assert.Equal(t, "[WARN] careful\n[ERROR] broken\n", errOut.String())
}

func TestDebugRespectsVerbose(t *testing.T) {
	_, errOut := capture(t)

	Verbose = false
	Debugf("hidden %d", 1)
	assert.Empty(t, errOut.String())

	Verbose = true
	Debugf("shown %d", 2)
	assert.Equal(t, "[DEBUG] shown 2\n", errOut.String())
}

func TestErrorExits(t *testing.T) {
	_, errOut := capture(t)
	code := -1
	exit = func(c int) { code = c }

	Errorf("fatal: %s", "x")

	assert.Equal(t, 1, code)
	assert.Equal(t, "[ERROR] fatal: x\n", errOut.String())
}

func TestLogo(t *testing.T) {
	out, _ := capture(t)

	Logo()

	assert.True(t, strings.HasPrefix(out.String(), LogoText()))
	assert.Contains(t, out.String(), "Telegraf data collectors")
}
