package draft

import (
	"testing"
	"time"

	"github.com/cloud-exit/datawiz/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns start, then start+step, start+2*step, ...
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

func openClockedStore(t *testing.T, now func() time.Time) *Store {
	t.Helper()
	s, err := Open(Options{InMemory: true, Now: now})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, s.Close()) })
	return s
}

func TestSaveAppendsLogEntries(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := openClockedStore(t, fakeClock(start, time.Minute))

	require.NoError(t, s.Save("org1", store.State{}))
	require.NoError(t, s.Save("org1", sampleState()))

	desc, first, err := s.FirstLogEntry("org1")
	require.NoError(t, err)
	assert.True(t, first.Equal(start))
	assert.Equal(t, "step=0 bucket= bundles=0", desc)

	desc, last, err := s.LastLogEntry("org1")
	require.NoError(t, err)
	assert.True(t, last.Equal(start.Add(time.Minute)))
	assert.Equal(t, "step=1 bucket=bucketA bundles=1", desc)

	created, updated, err := s.CreatedUpdated("org1")
	require.NoError(t, err)
	assert.True(t, created.Equal(start))
	assert.True(t, updated.Equal(start.Add(time.Minute)))
}

func TestLogEntriesMissing(t *testing.T) {
	s := openTestStore(t)

	_, _, err := s.FirstLogEntry("org1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = s.LastLogEntry("org1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = s.CreatedUpdated("org1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogIsolatedPerOrg(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.AddLogEntry("a", "a1", base))
	require.NoError(t, s.AddLogEntry("a:b", "ab1", base.Add(-time.Hour)))
	require.NoError(t, s.AddLogEntry("a:b", "ab2", base.Add(time.Hour)))

	desc, at, err := s.FirstLogEntry("a")
	require.NoError(t, err)
	assert.Equal(t, "a1", desc)
	assert.True(t, at.Equal(base))

	desc, _, err = s.LastLogEntry("a")
	require.NoError(t, err)
	assert.Equal(t, "a1", desc)

	desc, _, err = s.LastLogEntry("a:b")
	require.NoError(t, err)
	assert.Equal(t, "ab2", desc)
}

func TestDeleteClearsLog(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Save("a", sampleState()))
	require.NoError(t, s.AddLogEntry("a:b", "other", time.Now()))

	require.NoError(t, s.Delete("a"))

	_, _, err := s.CreatedUpdated("a")
	assert.ErrorIs(t, err, ErrNotFound)
	desc, _, err := s.LastLogEntry("a:b")
	require.NoError(t, err)
	assert.Equal(t, "other", desc)

	orgs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, orgs)
}
