package ledger

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

// SQLiteLedger implements Ledger on modernc.org/sqlite.
type SQLiteLedger struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the ledger database and applies WAL mode and
// the schema.
func NewSQLite(dsn string) (*SQLiteLedger, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "ledger sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "ledger sqlite: exec %s", pragma)
		}
	}

	const migration = `
CREATE TABLE IF NOT EXISTS feedback (
	id               TEXT PRIMARY KEY,
	contract_id_norm TEXT NOT NULL,
	response_text    TEXT NOT NULL,
	author           TEXT NOT NULL,
	recorded_at      DATETIME NOT NULL,
	note             TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_feedback_contract ON feedback(contract_id_norm);
`
	if _, err := db.Exec(migration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "ledger sqlite: migrate")
	}

	return &SQLiteLedger{db: db}, nil
}

func (l *SQLiteLedger) Append(ctx context.Context, entry model.FeedbackEntry) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO feedback (id, contract_id_norm, response_text, author, recorded_at, note)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		entry.ContractIDNorm,
		entry.ResponseText,
		entry.Author,
		entry.RecordedAt.UTC().Format(time.RFC3339),
		entry.Note,
	)
	return eris.Wrap(err, "ledger sqlite: insert")
}

func (l *SQLiteLedger) LoadAll(ctx context.Context) ([]model.FeedbackEntry, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT contract_id_norm, response_text, author, recorded_at, note
		 FROM feedback ORDER BY rowid`)
	if err != nil {
		return nil, eris.Wrap(err, "ledger sqlite: select")
	}
	defer rows.Close()

	var entries []model.FeedbackEntry
	for rows.Next() {
		var e model.FeedbackEntry
		var recordedAt string
		if err := rows.Scan(&e.ContractIDNorm, &e.ResponseText, &e.Author, &recordedAt, &e.Note); err != nil {
			return nil, eris.Wrap(err, "ledger sqlite: scan")
		}
		e.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "ledger sqlite: rows")
	}
	return entries, nil
}

func (l *SQLiteLedger) Close() error {
	return l.db.Close()
}
