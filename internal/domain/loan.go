package domain

import "time"

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "ACTIVE"
	LoanStatusReturned LoanStatus = "RETURNED"
)

// Loan is one borrowing episode of one physical copy by one user.
// ActualReturnDate == nil means the loan is still active; at most one active
// loan may reference a given copy at any time.
type Loan struct {
	ID                 int32      `json:"id"`
	UserID             string     `json:"user_id"`
	BookCopyID         int32      `json:"book_copy_id"`
	LoanDate           time.Time  `json:"loan_date"`
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty"`
}

// Status derives the state machine position from ActualReturnDate.
func (l *Loan) Status() LoanStatus {
	if l.ActualReturnDate == nil {
		return LoanStatusActive
	}
	return LoanStatusReturned
}

// LoanDetail is a loan joined with copy/book context for display.
type LoanDetail struct {
	Loan
	Barcode   string `json:"barcode"`
	BookTitle string `json:"book_title"`
}

// ReturnSummary is the result of returning a copy.
type ReturnSummary struct {
	LoanID       int32     `json:"loan_id"`
	BookTitle    string    `json:"book_title"`
	ReturnedDate time.Time `json:"returned_date"`
	Late         bool      `json:"late"`
	Message      string    `json:"message"`
}
