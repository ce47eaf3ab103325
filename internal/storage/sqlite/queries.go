package sqlite

const (
	createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
  id              INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id      TEXT NOT NULL,
  event           TEXT NOT NULL,
  user_id         INT NOT NULL,
  user_name       TEXT,
  clock_in        TEXT NOT NULL,
  clock_out       TEXT,
  elapsed_seconds REAL
)`

	createReportsTable = `
CREATE TABLE IF NOT EXISTS reports (
  id            INTEGER PRIMARY KEY AUTOINCREMENT,
  generated_at  TEXT NOT NULL
)`

	createRowsTable = `
CREATE TABLE IF NOT EXISTS report_rows (
  report_id     INT,
  rank          INT,
  user_id       INT,
  user_name     TEXT,
  total_seconds REAL,

  FOREIGN KEY(report_id) REFERENCES reports(id)
)`

	addSession = `
INSERT INTO sessions (session_id, event, user_id, user_name, clock_in, clock_out, elapsed_seconds)
VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	addReport = `
INSERT INTO reports (generated_at) VALUES (?)
	`

	addRow = `
INSERT INTO report_rows (report_id, rank, user_id, user_name, total_seconds)
VALUES (?, ?, ?, ?, ?)
	`
)
