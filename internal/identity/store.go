// Package identity maps platform user IDs to scheduling-backend user IDs.
// The mapping is injected into the router as a lookup capability so the
// message-understanding core stays free of identity concerns.
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUnknownUser = errors.New("unknown platform user")

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS identities (
			platform_user_id TEXT PRIMARY KEY,
			sched_user_id TEXT NOT NULL,
			display_name TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_seen_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_identities_sched_user ON identities(sched_user_id);`,
	}
	for _, q := range queries {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the scheduling-backend user ID bound to a platform user,
// updating last_seen_at on the way. ErrUnknownUser when no binding exists.
func (s *Store) Resolve(ctx context.Context, platformUserID string) (string, error) {
	platformUserID = strings.TrimSpace(platformUserID)
	if platformUserID == "" {
		return "", ErrUnknownUser
	}

	var schedUserID string
	err := s.pool.QueryRow(ctx,
		`UPDATE identities SET last_seen_at = NOW() WHERE platform_user_id = $1 RETURNING sched_user_id`,
		platformUserID,
	).Scan(&schedUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUnknownUser
	}
	if err != nil {
		return "", err
	}
	return schedUserID, nil
}

// Bind creates or replaces the mapping for a platform user.
func (s *Store) Bind(ctx context.Context, platformUserID, schedUserID, displayName string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO identities (platform_user_id, sched_user_id, display_name)
		 VALUES ($1, $2, NULLIF($3, ''))
		 ON CONFLICT (platform_user_id)
		 DO UPDATE SET sched_user_id = EXCLUDED.sched_user_id,
		               display_name = COALESCE(EXCLUDED.display_name, identities.display_name),
		               last_seen_at = NOW()`,
		platformUserID, schedUserID, displayName,
	)
	return err
}
