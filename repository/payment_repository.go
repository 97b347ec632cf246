package repository

import (
	"context"

	"lawbandhu-backend/models"

	"github.com/google/uuid"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a payment and fills in its ID and timestamp
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (user_id, description, amount, status, invoice_id, method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		p.UserID,
		p.Description,
		p.Amount,
		p.Status,
		p.InvoiceID,
		p.Method,
	).Scan(&p.ID, &p.CreatedAt)
}

// ListByUserID returns a user's payments, newest first. A nil status returns all of them.
func (r *PaymentRepository) ListByUserID(ctx context.Context, userID uuid.UUID, status *models.PaymentStatus) ([]*models.Payment, error) {
	query := `
		SELECT id, user_id, description, amount, status, invoice_id, method, created_at
		FROM payments
		WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.db.Query(ctx, query, userID, statusArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*models.Payment, 0)
	for rows.Next() {
		p := &models.Payment{}
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Description,
			&p.Amount,
			&p.Status,
			&p.InvoiceID,
			&p.Method,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
