package results

import (
	"path/filepath"
	"testing"
	"time"

	"benchsuite/packages/verify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), HistoryName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistoryRecordAndList(t *testing.T) {
	h := openTestHistory(t)

	run := NewRun("dev")
	totals := verify.Totals{Passed: 3, Warned: 1, Errored: 2}
	require.NoError(t, h.RecordRun(run, totals))

	records, err := h.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, run.ID.String(), records[0].ID)
	assert.Equal(t, totals, records[0].Totals)
	assert.WithinDuration(t, run.StartedAt, records[0].StartedAt, time.Second)
}

func TestRecentRunsNewestFirstWithLimit(t *testing.T) {
	h := openTestHistory(t)

	older := NewRun("dev")
	older.StartedAt = older.StartedAt.Add(-time.Hour)
	newer := NewRun("dev")

	require.NoError(t, h.RecordRun(older, verify.Totals{}))
	require.NoError(t, h.RecordRun(newer, verify.Totals{}))

	records, err := h.RecentRuns(1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, newer.ID.String(), records[0].ID)
}

func TestRecordRunRejectsDuplicateID(t *testing.T) {
	h := openTestHistory(t)

	run := NewRun("dev")
	require.NoError(t, h.RecordRun(run, verify.Totals{}))
	assert.Error(t, h.RecordRun(run, verify.Totals{}))
}
