package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/lib/pq"

	"github.com/BalanceBalls/duty-bot/internal/storage"
)

type PostgresStorage struct {
	db *sql.DB
}

var _ storage.Journal = (*PostgresStorage)(nil)

func New(connectionString string) (*PostgresStorage, error) {
	slog.Info("initializing Postgres DB...")
	db, err := sql.Open("postgres", connectionString)

	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not access database: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

func (s *PostgresStorage) Up(ctx context.Context) error {
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

func (s *PostgresStorage) SaveSession(ctx context.Context, session storage.SessionRecord) error {
	var clockOut sql.NullTime
	if !session.ClockOut.IsZero() {
		clockOut = sql.NullTime{Time: session.ClockOut, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, addSession,
		session.SessionId.String(),
		string(session.Event),
		session.UserId,
		session.UserName,
		session.ClockIn,
		clockOut,
		session.ElapsedSeconds)
	if err != nil {
		return fmt.Errorf("could not add session: %w", err)
	}

	return nil
}

func (s *PostgresStorage) SaveReport(ctx context.Context, report storage.ReportRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	var reportId int64
	if err := tx.QueryRowContext(ctx, addReport, report.GeneratedAt).Scan(&reportId); err != nil {
		return fmt.Errorf("could not add report: %w", err)
	}

	if len(report.Rows) > 0 {
		query, values := buildRowsInsert(reportId, report.Rows)
		if _, err := tx.ExecContext(ctx, query, values...); err != nil {
			return fmt.Errorf("could not add report rows: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit report: %w", err)
	}

	return nil
}

// buildRowsInsert expands addRows into a single multi-values insert.
func buildRowsInsert(reportId int64, rows []storage.ReportRow) (string, []any) {
	const columnsCnt = 5

	placeholders := make([]string, 0, len(rows))
	values := make([]any, 0, len(rows)*columnsCnt)

	for i, row := range rows {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
			columnsCnt*i+1, columnsCnt*i+2, columnsCnt*i+3, columnsCnt*i+4, columnsCnt*i+5))

		values = append(values, reportId, row.Rank, row.UserId, row.UserName, row.TotalSeconds)
	}

	return addRows + strings.Join(placeholders, ", "), values
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
