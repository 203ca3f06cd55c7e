package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps sessions in the sessions table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the sessions table when it is missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			sid    VARCHAR     NOT NULL PRIMARY KEY,
			sess   JSONB       NOT NULL,
			expire TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_expire ON sessions(expire);`)
	if err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, sid string) (*Data, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT sess FROM sessions WHERE sid = $1 AND expire > NOW()`, sid,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &data, nil
}

func (s *PostgresStore) Set(ctx context.Context, sid string, data Data, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO sessions (sid, sess, expire) VALUES ($1, $2, $3)
		 ON CONFLICT (sid) DO UPDATE SET sess = EXCLUDED.sess, expire = EXCLUDED.expire`,
		sid, raw, time.Now().Add(ttl),
	)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, sid string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE sid = $1`, sid)
	return err
}

// PruneExpired deletes expired rows and reports how many were removed.
func (s *PostgresStore) PruneExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE expire <= NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
