package store

// schema creates the history tables. Attempts reference their session and
// keep a per-session sequence so chronological order survives queries.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id             TEXT PRIMARY KEY,
	profile        TEXT NOT NULL,
	operation      TEXT NOT NULL,
	started_at     TIMESTAMP NOT NULL,
	duration_secs  REAL NOT NULL,
	cards_total    INTEGER NOT NULL,
	cards_mastered INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS attempts (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id   TEXT NOT NULL REFERENCES sessions(id),
	seq          INTEGER NOT NULL,
	prompt       TEXT NOT NULL,
	given_answer TEXT NOT NULL,
	correct      INTEGER NOT NULL,
	elapsed_secs REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id, seq);
`
