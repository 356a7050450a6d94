package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aneves/socialnet/internal/domain"
)

// FollowRepository implements domain.FollowRepository using SQLite.
type FollowRepository struct {
	db *sql.DB
}

// NewFollowRepository creates a new SQLite-backed FollowRepository.
func NewFollowRepository(db *DB) *FollowRepository {
	return &FollowRepository{db: db.SqlDB}
}

func (r *FollowRepository) Create(ctx context.Context, follow *domain.Follow) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO follows (follower_id, following_id, created_at)
		 VALUES (?, ?, ?)`,
		follow.FollowerID, follow.FollowingID, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrAlreadyFollowing
		}
		return fmt.Errorf("insert follow: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	follow.ID = id
	follow.CreatedAt = now
	return nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = ? AND following_id = ?`,
		followerID, followingID,
	)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFollowing
	}
	return nil
}

// Exists reports whether the edge is present. Used by tests to assert that
// rejected operations left no row behind.
func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE follower_id = ? AND following_id = ?`,
		followerID, followingID,
	).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("count follows: %w", err)
	}
	return count > 0, nil
}
