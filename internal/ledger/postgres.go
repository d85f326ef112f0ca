package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

// pgPool is the slice of pgxpool.Pool the ledger needs; pgxmock satisfies it
// in tests.
type pgPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresLedger implements Ledger on a pgx connection pool, for multi-node
// deployments where several dashboard instances share one ledger.
type PostgresLedger struct {
	pool pgPool
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS feedback (
	id               UUID PRIMARY KEY,
	seq              BIGSERIAL,
	contract_id_norm TEXT NOT NULL,
	response_text    TEXT NOT NULL,
	author           TEXT NOT NULL,
	recorded_at      TIMESTAMPTZ NOT NULL,
	note             TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_feedback_contract ON feedback(contract_id_norm);
`

// NewPostgres creates the ledger pool and applies the schema.
func NewPostgres(ctx context.Context, connString string) (*PostgresLedger, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "ledger postgres: parse config")
	}
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "ledger postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "ledger postgres: ping")
	}
	if _, err := pool.Exec(ctx, postgresMigration); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "ledger postgres: migrate")
	}
	return &PostgresLedger{pool: pool}, nil
}

func (l *PostgresLedger) Append(ctx context.Context, entry model.FeedbackEntry) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO feedback (id, contract_id_norm, response_text, author, recorded_at, note)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New().String(),
		entry.ContractIDNorm,
		entry.ResponseText,
		entry.Author,
		entry.RecordedAt.UTC(),
		entry.Note,
	)
	return eris.Wrap(err, "ledger postgres: insert")
}

func (l *PostgresLedger) LoadAll(ctx context.Context) ([]model.FeedbackEntry, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT contract_id_norm, response_text, author, recorded_at, note
		 FROM feedback ORDER BY seq`)
	if err != nil {
		return nil, eris.Wrap(err, "ledger postgres: select")
	}
	defer rows.Close()

	var entries []model.FeedbackEntry
	for rows.Next() {
		var e model.FeedbackEntry
		if err := rows.Scan(&e.ContractIDNorm, &e.ResponseText, &e.Author, &e.RecordedAt, &e.Note); err != nil {
			return nil, eris.Wrap(err, "ledger postgres: scan")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "ledger postgres: rows")
	}
	return entries, nil
}

func (l *PostgresLedger) Close() error {
	l.pool.Close()
	return nil
}
