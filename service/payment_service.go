package service

import (
	"context"
	"errors"

	"lawbandhu-backend/models"
	"lawbandhu-backend/repository"

	"github.com/google/uuid"
)

// PaymentStore lists payments
type PaymentStore interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, status *models.PaymentStatus) ([]*models.Payment, error)
}

// PaymentService serves a user's payment history
type PaymentService struct {
	payments PaymentStore
}

// NewPaymentService creates a new payment service
func NewPaymentService(payments PaymentStore) *PaymentService {
	return &PaymentService{payments: payments}
}

// PaymentHistory is a (possibly filtered) list of payments with overall stats
type PaymentHistory struct {
	Payments []*models.Payment   `json:"payments"`
	Stats    models.PaymentStats `json:"stats"`
	Display  PaymentDisplay      `json:"display"`
}

// PaymentDisplay carries the stats preformatted in rupees
type PaymentDisplay struct {
	TotalPaid    string `json:"total_paid"`
	TotalPending string `json:"total_pending"`
}

// List returns the user's payments. Stats always cover the full history so a
// status filter does not change the totals.
func (s *PaymentService) List(ctx context.Context, userID uuid.UUID, status string) (*PaymentHistory, error) {
	if s.payments == nil {
		return nil, errors.New("payment store not set")
	}

	var filter models.PaymentStatus
	if status != "" && status != "all" {
		filter = models.PaymentStatus(status)
		if !filter.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	all, err := s.payments.ListByUserID(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	stats := models.SummarizePayments(all)
	payments := all
	if filter != "" {
		payments = models.FilterPaymentsByStatus(all, filter)
	}

	return &PaymentHistory{
		Payments: payments,
		Stats:    stats,
		Display: PaymentDisplay{
			TotalPaid:    models.FormatINR(stats.TotalPaid),
			TotalPending: models.FormatINR(stats.TotalPending),
		},
	}, nil
}

var _ PaymentStore = (*repository.PaymentRepository)(nil)
