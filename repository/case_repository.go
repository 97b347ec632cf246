package repository

import (
	"context"

	"lawbandhu-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const caseColumns = `c.id, c.user_id, c.lawyer_id, c.title, c.case_number,
	COALESCE(l.name, ''), c.status, c.steps, c.created_at, c.updated_at`

// CaseRepository handles database operations for tracked cases
type CaseRepository struct {
	db DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create inserts a case and fills in its ID and timestamps
func (r *CaseRepository) Create(ctx context.Context, c *models.LegalCase) error {
	query := `
		INSERT INTO cases (user_id, lawyer_id, title, case_number, status, steps)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		c.UserID,
		c.LawyerID,
		c.Title,
		c.CaseNumber,
		c.Status,
		c.Steps,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetByID retrieves a case by ID, joined with its lawyer's name
func (r *CaseRepository) GetByID(ctx context.Context, id int64) (*models.LegalCase, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM cases c
		LEFT JOIN lawyers l ON l.id = c.lawyer_id
		WHERE c.id = $1`

	c, err := scanCase(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

// ListByUserID retrieves all cases of a user, most recently updated first
func (r *CaseRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.LegalCase, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM cases c
		LEFT JOIN lawyers l ON l.id = c.lawyer_id
		WHERE c.user_id = $1
		ORDER BY c.updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := make([]*models.LegalCase, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, rows.Err()
}

// AddUpdate appends an entry to a case timeline and bumps the case's updated_at
func (r *CaseRepository) AddUpdate(ctx context.Context, u *models.CaseUpdate) error {
	query := `
		INSERT INTO case_updates (case_id, title, description, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	if err := r.db.QueryRow(ctx, query, u.CaseID, u.Title, u.Description, u.Type).Scan(&u.ID, &u.CreatedAt); err != nil {
		return err
	}

	_, err := r.db.Exec(ctx, `UPDATE cases SET updated_at = NOW() WHERE id = $1`, u.CaseID)
	return err
}

// ListUpdates returns a case timeline, newest first
func (r *CaseRepository) ListUpdates(ctx context.Context, caseID int64) ([]models.CaseUpdate, error) {
	query := `
		SELECT id, case_id, title, description, type, created_at
		FROM case_updates
		WHERE case_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := make([]models.CaseUpdate, 0)
	for rows.Next() {
		var u models.CaseUpdate
		if err := rows.Scan(&u.ID, &u.CaseID, &u.Title, &u.Description, &u.Type, &u.CreatedAt); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}

	return updates, rows.Err()
}

func scanCase(row pgx.Row) (*models.LegalCase, error) {
	c := &models.LegalCase{}
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.LawyerID,
		&c.Title,
		&c.CaseNumber,
		&c.LawyerName,
		&c.Status,
		&c.Steps,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
