package dataloaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluginsForBundle(t *testing.T) {
	tests := []struct {
		bundle BundleName
		want   []string
	}{
		{BundleSystem, []string{"cpu", "disk", "diskio", "mem", "net", "processes", "swap", "system"}},
		{BundleDocker, []string{"docker"}},
		{BundleRedis, []string{"redis"}},
		{BundleName("unknown"), nil},
	}
	for _, tc := range tests {
		t.Run(string(tc.bundle), func(t *testing.T) {
			assert.Equal(t, tc.want, PluginsForBundle(tc.bundle))
		})
	}
}

func TestPluginsForBundle_ReturnsCopy(t *testing.T) {
	got := PluginsForBundle(BundleSystem)
	got[0] = "mutated"
	assert.Equal(t, "cpu", PluginsForBundle(BundleSystem)[0])
}

func TestParseBundleName(t *testing.T) {
	b, err := ParseBundleName("Docker")
	require.NoError(t, err)
	assert.Equal(t, BundleDocker, b)

	b, err = ParseBundleName(" NGINX ")
	require.NoError(t, err)
	assert.Equal(t, BundleNginx, b)

	_, err = ParseBundleName("mysql")
	assert.Error(t, err)
}

func TestNewTelegrafPlugin(t *testing.T) {
	assert.Equal(t, Configured, NewTelegrafPlugin("cpu").Configured)
	assert.Equal(t, Unconfigured, NewTelegrafPlugin("docker").Configured)
	assert.False(t, NewTelegrafPlugin("cpu").Active)
}

func TestAllBundles_Order(t *testing.T) {
	assert.Equal(t, []BundleName{BundleSystem, BundleDocker, BundleKubernetes, BundleNginx, BundleRedis}, AllBundles())
}
