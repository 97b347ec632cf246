package repository

import (
	"context"

	"lawbandhu-backend/models"

	"github.com/jackc/pgx/v5"
)

const lawyerColumns = `id, name, specialization, rating, experience_years, location,
	languages, consultation_fee, image_url, bio, education, bar_council_id,
	success_rate, cases_handled`

// LawyerRepository handles database operations for the lawyer roster
type LawyerRepository struct {
	db DB
}

// NewLawyerRepository creates a new lawyer repository
func NewLawyerRepository(db DB) *LawyerRepository {
	return &LawyerRepository{db: db}
}

// Create inserts a lawyer and fills in its ID
func (r *LawyerRepository) Create(ctx context.Context, l *models.Lawyer) error {
	query := `
		INSERT INTO lawyers (
			name, specialization, rating, experience_years, location, languages,
			consultation_fee, image_url, bio, education, bar_council_id,
			success_rate, cases_handled
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	return r.db.QueryRow(
		ctx, query,
		l.Name,
		l.Specialization,
		l.Rating,
		l.ExperienceYears,
		l.Location,
		l.Languages,
		l.ConsultationFee,
		l.ImageURL,
		l.Bio,
		l.Education,
		l.BarCouncilID,
		l.SuccessRate,
		l.CasesHandled,
	).Scan(&l.ID)
}

// GetByID retrieves a lawyer by ID
func (r *LawyerRepository) GetByID(ctx context.Context, id int64) (*models.Lawyer, error) {
	query := `SELECT ` + lawyerColumns + ` FROM lawyers WHERE id = $1`

	l, err := scanLawyer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err)
	}
	return l, nil
}

// List returns the whole roster in ID order. Star flags are left unset.
func (r *LawyerRepository) List(ctx context.Context) ([]models.Lawyer, error) {
	query := `SELECT ` + lawyerColumns + ` FROM lawyers ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lawyers := make([]models.Lawyer, 0)
	for rows.Next() {
		l, err := scanLawyer(rows)
		if err != nil {
			return nil, err
		}
		lawyers = append(lawyers, *l)
	}

	return lawyers, rows.Err()
}

func scanLawyer(row pgx.Row) (*models.Lawyer, error) {
	l := &models.Lawyer{}
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Specialization,
		&l.Rating,
		&l.ExperienceYears,
		&l.Location,
		&l.Languages,
		&l.ConsultationFee,
		&l.ImageURL,
		&l.Bio,
		&l.Education,
		&l.BarCouncilID,
		&l.SuccessRate,
		&l.CasesHandled,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}
