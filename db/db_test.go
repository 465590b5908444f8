package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nijaru/yt-kb/errors"
	"github.com/nijaru/yt-kb/models"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	ledger, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { ledger.Close() })
	return ledger
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	ledger := openTestLedger(t)

	id, err := ledger.StartRun(ctx, "scrape")
	if err != nil {
		t.Fatalf("Failed to start run: %v", err)
	}
	if id == "" {
		t.Fatal("expected run id")
	}

	if err := ledger.FinishRun(ctx, id, 5, 0, 3, 2); err != nil {
		t.Fatalf("Failed to finish run: %v", err)
	}

	runs, err := ledger.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Mode != "scrape" {
		t.Errorf("unexpected run %+v", r)
	}
	if r.Total != 5 || r.Success != 3 || r.Failed != 2 || r.Skipped != 0 {
		t.Errorf("unexpected counters %+v", r)
	}
	if !r.FinishedAt.Valid {
		t.Error("expected finished_at to be set")
	}
}

func TestFinishUnknownRun(t *testing.T) {
	ledger := openTestLedger(t)
	err := ledger.FinishRun(context.Background(), "missing", 0, 0, 0, 0)
	if !errors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestRecordAndListAttempts(t *testing.T) {
	ctx := context.Background()
	ledger := openTestLedger(t)

	runID, err := ledger.StartRun(ctx, "search")
	if err != nil {
		t.Fatalf("Failed to start run: %v", err)
	}

	first := Attempt{
		RunID: runID, Folder: "gottman", StorageKey: "test-video", VideoID: "abc123",
		Title: "Test Video", Status: models.StatusFailed, Reason: "disabled",
		CreatedAt: time.Now().Add(-time.Minute).UTC(),
	}
	second := first
	second.Status = models.StatusCompleted
	second.Reason = ""
	second.CreatedAt = time.Time{}

	for _, a := range []Attempt{first, second} {
		if err := ledger.RecordAttempt(ctx, a); err != nil {
			t.Fatalf("Failed to record attempt: %v", err)
		}
	}

	attempts, err := ledger.AttemptsForKey(ctx, "gottman", "test-video")
	if err != nil {
		t.Fatalf("Failed to list attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].Status != models.StatusFailed || attempts[0].Reason != "disabled" {
		t.Errorf("unexpected first attempt %+v", attempts[0])
	}
	if attempts[1].Status != models.StatusCompleted {
		t.Errorf("unexpected second attempt %+v", attempts[1])
	}

	other, err := ledger.AttemptsForKey(ctx, "esther-perel", "test-video")
	if err != nil {
		t.Fatalf("Failed to list attempts: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no attempts in other folder, got %d", len(other))
	}
}

func TestOpen_Error(t *testing.T) {
	// A regular file in the way keeps the database directory from being created.
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	_, err := Open(filepath.Join(file, "db", "x.db"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.IsStorage(err) {
		t.Errorf("expected storage failure, got %v", err)
	}
}
