package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

// Valid reports whether s is a known payment status
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentCompleted, PaymentPending, PaymentFailed:
		return true
	}
	return false
}

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	MethodUPI        PaymentMethod = "UPI"
	MethodCreditCard PaymentMethod = "Credit Card"
	MethodNetBanking PaymentMethod = "Net Banking"
	MethodPending    PaymentMethod = "Pending"
)

// Payment represents a billed item in a user's payment history
type Payment struct {
	ID          int64         `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Description string        `json:"description"`
	Amount      int64         `json:"amount"`
	Status      PaymentStatus `json:"status"`
	InvoiceID   string        `json:"invoice_id"`
	Method      PaymentMethod `json:"method"`
	CreatedAt   time.Time     `json:"date"`
}

// PaymentStats summarises a payment history
type PaymentStats struct {
	TotalPaid        int64 `json:"total_paid"`
	TotalPending     int64 `json:"total_pending"`
	TransactionCount int   `json:"transaction_count"`
	CompletedCount   int   `json:"completed_count"`
	PendingCount     int   `json:"pending_count"`
}

// SummarizePayments computes totals and counts over payments
func SummarizePayments(payments []*Payment) PaymentStats {
	stats := PaymentStats{TransactionCount: len(payments)}
	for _, p := range payments {
		switch p.Status {
		case PaymentCompleted:
			stats.TotalPaid += p.Amount
			stats.CompletedCount++
		case PaymentPending:
			stats.TotalPending += p.Amount
			stats.PendingCount++
		}
	}
	return stats
}

// FilterPaymentsByStatus keeps payments with the given status, preserving order
func FilterPaymentsByStatus(payments []*Payment, status PaymentStatus) []*Payment {
	out := make([]*Payment, 0, len(payments))
	for _, p := range payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// FormatINR renders an amount in rupees with Indian digit grouping, e.g. ₹1,50,000
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	out := sign + "₹"
	for _, g := range groups {
		out += g + ","
	}
	return out + tail
}
