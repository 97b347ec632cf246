package repository

import (
	"context"

	"github.com/google/uuid"
)

// StarRepository stores which lawyers each viewer has starred
type StarRepository struct {
	db DB
}

// NewStarRepository creates a new star repository
func NewStarRepository(db DB) *StarRepository {
	return &StarRepository{db: db}
}

// StarredIDs returns the set of lawyer IDs starred by viewer
func (r *StarRepository) StarredIDs(ctx context.Context, viewerID uuid.UUID) (map[int64]bool, error) {
	query := `SELECT lawyer_id FROM lawyer_stars WHERE user_id = $1`

	rows, err := r.db.Query(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	starred := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		starred[id] = true
	}

	return starred, rows.Err()
}

// SetStar records or clears a viewer's star on a lawyer. Both directions are idempotent.
func (r *StarRepository) SetStar(ctx context.Context, viewerID uuid.UUID, lawyerID int64, starred bool) error {
	if starred {
		_, err := r.db.Exec(ctx, `
			INSERT INTO lawyer_stars (user_id, lawyer_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, lawyer_id) DO NOTHING`,
			viewerID, lawyerID)
		return err
	}

	_, err := r.db.Exec(ctx, `DELETE FROM lawyer_stars WHERE user_id = $1 AND lawyer_id = $2`, viewerID, lawyerID)
	return err
}
