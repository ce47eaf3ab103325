package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/BalanceBalls/duty-bot/internal/storage"
)

type SqliteStorage struct {
	db *sql.DB
}

var _ storage.Journal = (*SqliteStorage)(nil)

func New(name string) (*SqliteStorage, error) {
	slog.Info("initializing DB...", "db_name", name)
	db, err := sql.Open("sqlite3", name)

	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not access database: %w", err)
	}

	return &SqliteStorage{db: db}, nil
}

func (s *SqliteStorage) Up(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createSessionsTable); err != nil {
		return fmt.Errorf("could not create table sessions: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, createReportsTable); err != nil {
		return fmt.Errorf("could not create table reports: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, createRowsTable); err != nil {
		return fmt.Errorf("could not create table report_rows: %w", err)
	}

	return nil
}

func (s *SqliteStorage) SaveSession(ctx context.Context, session storage.SessionRecord) error {
	var clockOut any
	if !session.ClockOut.IsZero() {
		clockOut = session.ClockOut.UTC().Format(time.RFC3339Nano)
	}

	_, err := s.db.ExecContext(ctx, addSession,
		session.SessionId.String(),
		string(session.Event),
		session.UserId,
		session.UserName,
		session.ClockIn.UTC().Format(time.RFC3339Nano),
		clockOut,
		session.ElapsedSeconds)
	if err != nil {
		return fmt.Errorf("could not add session: %w", err)
	}

	return nil
}

func (s *SqliteStorage) SaveReport(ctx context.Context, report storage.ReportRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, addReport, report.GeneratedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("could not add report: %w", err)
	}

	reportId, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not get report id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, addRow)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	defer stmt.Close()

	for _, row := range report.Rows {
		if _, err := stmt.ExecContext(ctx, reportId, row.Rank, row.UserId, row.UserName, row.TotalSeconds); err != nil {
			return fmt.Errorf("could not add report row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit report: %w", err)
	}

	return nil
}

func (s *SqliteStorage) Close() error {
	return s.db.Close()
}
