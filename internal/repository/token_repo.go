package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RevokedTokenRepository stores blacklisted refresh tokens by jti. Keeping the
// blacklist in the same SQLite file as everything else means a token revoked
// in one request is visible to the next with no stale-read window.
type RevokedTokenRepository struct {
	db *sql.DB
}

func NewRevokedTokenRepository(db *sql.DB) *RevokedTokenRepository {
	return &RevokedTokenRepository{db: db}
}

var _ RevokedTokens = (*RevokedTokenRepository)(nil)

const (
	insertRevokedSQL = `INSERT OR IGNORE INTO revoked_tokens (jti, user_id, expires_at, revoked_at) VALUES (?, ?, ?, ?)`
	purgeRevokedSQL  = `DELETE FROM revoked_tokens WHERE expires_at < ?`
)

// Revoke blacklists a refresh token and sweeps entries whose tokens have
// expired anyway, in one transaction. Returns whether the jti was newly
// blacklisted: INSERT OR IGNORE affects no rows when it already was, which
// lets a rotation claim a token exactly once even under concurrent calls.
func (r *RevokedTokenRepository) Revoke(ctx context.Context, jti, userID string, expiresAt time.Time) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin revoke transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, insertRevokedSQL, jti, userID, expiresAt.UTC(), now)
	if err != nil {
		return false, fmt.Errorf("insert revoked token %q: %w", jti, err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for revoked token %q: %w", jti, err)
	}
	if _, err := tx.ExecContext(ctx, purgeRevokedSQL, now); err != nil {
		return false, fmt.Errorf("purge expired revoked tokens: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit revoke transaction: %w", err)
	}
	return inserted > 0, nil
}
