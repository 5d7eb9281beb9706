package cmd

import (
	"testing"
	"time"

	"github.com/cloud-exit/datawiz/internal/draft"
	"github.com/cloud-exit/datawiz/internal/store"
	"github.com/cloud-exit/datawiz/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDrafts(t *testing.T) *draft.Store {
	t.Helper()
	return openTestDraftsAt(t, nil)
}

func openTestDraftsAt(t *testing.T, now func() time.Time) *draft.Store {
	t.Helper()
	d, err := draft.Open(draft.Options{InMemory: true, Now: now})
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestDraftTable(t *testing.T) {
	saved := []time.Time{
		time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
		time.Date(2026, 5, 6, 18, 15, 0, 0, time.UTC),
	}
	calls := 0
	d := openTestDraftsAt(t, func() time.Time {
		at := saved[calls]
		calls++
		return at
	})

	out, err := draftTable(d)
	require.NoError(t, err)
	assert.Equal(t, "No saved drafts.", out)

	st := store.Reduce(store.State{}, store.SetBucketInfo{OrgID: "org1", Name: "telegraf", ID: "b1"})
	require.NoError(t, d.Save("org1", st))
	require.NoError(t, d.Save("org1", store.Reduce(st, store.IncrementStep{})))

	out, err = draftTable(d)
	require.NoError(t, err)
	assert.Contains(t, out, "org1")
	assert.Contains(t, out, "telegraf")
	assert.Contains(t, out, "CREATED")
	assert.Contains(t, out, formatDraftTime(saved[0]))
	assert.Contains(t, out, formatDraftTime(saved[1]))
}

func TestFormatDraftTime(t *testing.T) {
	assert.Equal(t, "-", formatDraftTime(time.Time{}))
	at := time.Date(2026, 1, 2, 3, 4, 0, 0, time.Local)
	assert.Equal(t, "2026-01-02 03:04", formatDraftTime(at))
}

func TestInitialState(t *testing.T) {
	d := openTestDrafts(t)

	st := store.Reduce(store.State{}, store.SetBucketInfo{OrgID: "org1", Name: "telegraf", ID: "b1"})
	st.DataLoading.Steps.CurrentStepIndex = 4
	require.NoError(t, d.Save("org1", st))

	t.Run("resume", func(t *testing.T) {
		got := initialState(d, "org1", true)
		assert.Equal(t, "telegraf", got.DataLoading.Steps.Bucket)
		assert.Equal(t, wizard.ResumeState(st), got)
	})
	t.Run("resume disabled", func(t *testing.T) {
		assert.Equal(t, store.State{}, initialState(d, "org1", false))
	})
	t.Run("no draft", func(t *testing.T) {
		assert.Equal(t, store.State{}, initialState(d, "other", true))
	})
	t.Run("no store", func(t *testing.T) {
		assert.Equal(t, store.State{}, initialState(nil, "org1", true))
	})
}

func TestCompletionHints(t *testing.T) {
	lines := completionHints("zsh", completionShells["zsh"])
	assert.Contains(t, lines, `#   eval "$(datawiz completion zsh)"`)
	assert.Contains(t, lines, "#   datawiz completion zsh > ~/.zfunc/_datawiz")

	fish := completionHints("fish", completionShells["fish"])
	assert.Contains(t, fish, "#   datawiz completion fish | source")
}
