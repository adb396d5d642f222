package domain

import "time"

type FineStatus string

const (
	FineStatusUnpaid FineStatus = "UNPAID"
	FineStatusPaid   FineStatus = "PAID"
)

// FineType is administrator-managed reference data: a penalty category with a
// per-day accrual rate. Amounts are integer cents.
type FineType struct {
	ID             int32  `json:"id"`
	Name           string `json:"name"`
	DailyRateCents int64  `json:"daily_rate_cents"`
}

// Fine is a monetary penalty against a user. LoanID is nil for manually
// issued fines. IsActive stays true exactly while the fine is unpaid; any
// active fine blocks the user from new loans.
type Fine struct {
	ID          int32      `json:"id"`
	UserID      string     `json:"user_id"`
	LoanID      *int32     `json:"loan_id,omitempty"`
	FineTypeID  int32      `json:"fine_type_id"`
	AmountCents int64      `json:"amount_cents"`
	Description string     `json:"description"`
	Status      FineStatus `json:"status"`
	IsActive    bool       `json:"is_active"`
	IssuedDate  time.Time  `json:"issued_date"`
}

// FineDetail is a fine joined with its type and, when loan-linked, the book
// context. Display only; no behavioral effect.
type FineDetail struct {
	Fine
	FineTypeName string  `json:"fine_type_name"`
	BookTitle    *string `json:"book_title,omitempty"`
	Barcode      *string `json:"barcode,omitempty"`
}
