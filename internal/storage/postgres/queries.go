package postgres

const (
	createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
  id              SERIAL PRIMARY KEY,
  session_id      UUID NOT NULL,
  event           TEXT NOT NULL,
  user_id         BIGINT NOT NULL,
  user_name       TEXT,
  clock_in        TIMESTAMPTZ NOT NULL,
  clock_out       TIMESTAMPTZ,
  elapsed_seconds DOUBLE PRECISION
)`

	createReportsTable = `
CREATE TABLE IF NOT EXISTS reports (
  id           SERIAL PRIMARY KEY,
  generated_at TIMESTAMPTZ NOT NULL
)`

	createRowsTable = `
CREATE TABLE IF NOT EXISTS report_rows (
  report_id     INTEGER,
  rank          INTEGER,
  user_id       BIGINT,
  user_name     TEXT,
  total_seconds DOUBLE PRECISION,

  FOREIGN KEY(report_id) REFERENCES reports(id)
)`

	addSession = `
INSERT INTO sessions (session_id, event, user_id, user_name, clock_in, clock_out, elapsed_seconds)
VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	addReport = `
INSERT INTO reports (generated_at) VALUES ($1) RETURNING id
	`

	addRows = `
INSERT INTO report_rows (report_id, rank, user_id, user_name, total_seconds) VALUES `
)
