package db

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/nijaru/yt-kb/errors"
	"github.com/nijaru/yt-kb/models"
	"github.com/sirupsen/logrus"
)

// Ledger records every run and fetch attempt with a structured status. The
// artifact store remains the source of truth for skip decisions.
type Ledger struct {
	db *sql.DB
}

type Run struct {
	ID         string
	Mode       string
	StartedAt  time.Time
	FinishedAt sql.NullTime
	Total      int
	Skipped    int
	Success    int
	Failed     int
}

type Attempt struct {
	RunID      string
	Folder     string
	StorageKey string
	VideoID    string
	Title      string
	Status     models.Status
	Reason     string
	CreatedAt  time.Time
}

func Open(dbPath string) (*Ledger, error) {
	const op = "db.Open"
	logrus.WithField("path", dbPath).Info("Initializing database")

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.StorageFailure(op, err, "Failed to create database directory")
	}

	conn, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, errors.StorageFailure(op, err, "Failed to open database")
	}

	// Writes are sequential; a single connection avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errors.StorageFailure(op, err, "Failed to connect to database")
	}

	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			conn.Close()
			return nil, errors.StorageFailure(op, err, "Failed to create schema")
		}
	}

	return &Ledger{db: conn}, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP,
		total INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0,
		success INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		folder TEXT NOT NULL,
		storage_key TEXT NOT NULL,
		video_id TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attempts_key ON attempts(folder, storage_key)`,
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// StartRun creates a run row and returns its id.
func (l *Ledger) StartRun(ctx context.Context, mode string) (string, error) {
	const op = "db.StartRun"
	id := uuid.New().String()

	_, err := l.db.ExecContext(ctx,
		"INSERT INTO runs (id, mode, started_at) VALUES (?, ?, ?)",
		id, mode, time.Now().UTC())
	if err != nil {
		return "", errors.StorageFailure(op, err, "Failed to insert run")
	}
	return id, nil
}

func (l *Ledger) RecordAttempt(ctx context.Context, a Attempt) error {
	const op = "db.RecordAttempt"
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO attempts (run_id, folder, storage_key, video_id, title, status, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.RunID, a.Folder, a.StorageKey, a.VideoID, a.Title, string(a.Status), a.Reason, a.CreatedAt)
	if err != nil {
		return errors.StorageFailure(op, err, "Failed to insert attempt")
	}
	return nil
}

func (l *Ledger) FinishRun(ctx context.Context, id string, total, skipped, success, failed int) error {
	const op = "db.FinishRun"

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.StorageFailure(op, err, "Failed to begin transaction")
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, total = ?, skipped = ?, success = ?, failed = ?
		WHERE id = ?`,
		time.Now().UTC(), total, skipped, success, failed, id)
	if err != nil {
		return errors.StorageFailure(op, err, "Failed to update run")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.StorageFailure(op, err, "Failed to get rows affected")
	}
	if rowsAffected == 0 {
		return errors.NotFound(op, nil, "run not found: "+id)
	}

	return tx.Commit()
}

// RecentRuns returns up to limit runs, newest first.
func (l *Ledger) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	const op = "db.RecentRuns"

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, mode, started_at, finished_at, total, skipped, success, failed
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.StorageFailure(op, err, "Failed to query runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Mode, &r.StartedAt, &r.FinishedAt, &r.Total, &r.Skipped, &r.Success, &r.Failed); err != nil {
			return nil, errors.StorageFailure(op, err, "Failed to scan run")
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.StorageFailure(op, err, "Failed to iterate runs")
	}
	return runs, nil
}

// AttemptsForKey lists attempts recorded for one artifact, oldest first.
func (l *Ledger) AttemptsForKey(ctx context.Context, folder, key string) ([]Attempt, error) {
	const op = "db.AttemptsForKey"

	rows, err := l.db.QueryContext(ctx, `
		SELECT run_id, folder, storage_key, video_id, title, status, reason, created_at
		FROM attempts WHERE folder = ? AND storage_key = ? ORDER BY id`, folder, key)
	if err != nil {
		return nil, errors.StorageFailure(op, err, "Failed to query attempts")
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var status string
		if err := rows.Scan(&a.RunID, &a.Folder, &a.StorageKey, &a.VideoID, &a.Title, &status, &a.Reason, &a.CreatedAt); err != nil {
			return nil, errors.StorageFailure(op, err, "Failed to scan attempt")
		}
		a.Status = models.Status(status)
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.StorageFailure(op, err, "Failed to iterate attempts")
	}
	return attempts, nil
}
