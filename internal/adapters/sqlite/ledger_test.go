package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagesync/internal/domain"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	require.NoError(t, l.Open(filepath.Join(t.TempDir(), "nested", "ledger.db")))
	t.Cleanup(func() {
		if err := l.Close(); err != nil {
			t.Errorf("failed to close ledger: %v", err)
		}
	})
	return l
}

func testRun(id string, started time.Time) *domain.RunRecord {
	parent := domain.ParentPageRef{ID: "3132484b-84ae-81b8-a2cb-deff086bb4d0", Name: "TASK_1", Dir: "TASK_1"}
	return &domain.RunRecord{
		ID:         id,
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		Created:    1,
		Skipped:    1,
		Errored:    1,
		Outcomes: []domain.SyncOutcome{
			{Parent: parent, File: domain.SourceFile{Title: "model_a.txt", Path: "model_a.txt"}, Kind: domain.OutcomeCreated, URL: "https://www.notion.so/x"},
			{Parent: parent, File: domain.SourceFile{Title: "model_b.txt", Path: "model_b.txt"}, Kind: domain.OutcomeSkipped},
			{Parent: parent, File: domain.SourceFile{Title: "model_c.txt", Path: "model_c.txt"}, Kind: domain.OutcomeErrored, Err: "create: 400: bad"},
		},
	}
}

func TestLedger_RecordAndGet(t *testing.T) {
	l := openTestLedger(t)
	ctx := context.Background()
	started := time.UnixMilli(time.Now().UnixMilli())

	want := testRun("run-1", started)
	require.NoError(t, l.RecordRun(ctx, want))

	got, err := l.GetRun(ctx, "run-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.StartedAt.Equal(got.StartedAt))
	assert.True(t, want.FinishedAt.Equal(got.FinishedAt))
	assert.Equal(t, want.Outcomes, got.Outcomes)
}

func TestLedger_GetMissing(t *testing.T) {
	l := openTestLedger(t)

	got, err := l.GetRun(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLedger_ListRunsNewestFirst(t *testing.T) {
	l := openTestLedger(t)
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, l.RecordRun(ctx, testRun("old", base.Add(-time.Hour))))
	require.NoError(t, l.RecordRun(ctx, testRun("new", base)))
	require.NoError(t, l.RecordRun(ctx, testRun("mid", base.Add(-time.Minute))))

	runs, err := l.ListRuns(ctx, 2)
	require.NoError(t, err)

	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)
	assert.Empty(t, runs[0].Outcomes)
}

func TestLedger_DuplicateRunRollsBack(t *testing.T) {
	l := openTestLedger(t)
	ctx := context.Background()

	require.NoError(t, l.RecordRun(ctx, testRun("dup", time.Now())))
	assert.Error(t, l.RecordRun(ctx, testRun("dup", time.Now())))

	got, err := l.GetRun(ctx, "dup")
	require.NoError(t, err)
	assert.Len(t, got.Outcomes, 3)
}

func TestLedger_ReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()

	first := NewLedger()
	require.NoError(t, first.Open(path))
	require.NoError(t, first.RecordRun(ctx, testRun("kept", time.Now())))
	require.NoError(t, first.Close())

	second := NewLedger()
	require.NoError(t, second.Open(path))
	defer second.Close()

	runs, err := second.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "kept", runs[0].ID)
}

