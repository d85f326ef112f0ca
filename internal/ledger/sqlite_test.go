package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteLedger {
	t.Helper()
	l, err := NewSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestSQLiteLedger_AppendAndLoadAll(t *testing.T) {
	l := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, l.Append(ctx, entry("1234A", "Kim", "재계약 협의")))
	require.NoError(t, l.Append(ctx, entry("1234A", "Lee", "후속 조치")))
	require.NoError(t, l.Append(ctx, entry("5678B", "Kim", "")))

	entries, err := l.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Insertion order preserved; duplicates per identifier retained.
	assert.Equal(t, "재계약 협의", entries[0].Note)
	assert.Equal(t, "후속 조치", entries[1].Note)
	assert.Equal(t, "5678B", entries[2].ContractIDNorm)
}

func TestSQLiteLedger_RoundTripsRecordedAt(t *testing.T) {
	l := newTestSQLite(t)
	ctx := context.Background()

	want := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	e := model.FeedbackEntry{ContractIDNorm: "1", Author: "Kim", RecordedAt: want}
	require.NoError(t, l.Append(ctx, e))

	entries, err := l.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].RecordedAt.Equal(want))
}

func TestSQLiteLedger_EmptyLoadAll(t *testing.T) {
	l := newTestSQLite(t)

	entries, err := l.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
