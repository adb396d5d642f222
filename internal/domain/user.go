package domain

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
)

// User IDs are opaque strings; the loan and fine engines never interpret
// them beyond non-emptiness.
type User struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	PasswordHash       string     `json:"-"`
	Role               UserRole   `json:"role"`
	RefreshToken       string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`
	CreatedOn          time.Time  `json:"created_on"`
}

// UserFilter narrows user listings.
type UserFilter struct {
	Email    string
	Name     string
	Page     int32
	PageSize int32
}

// DashboardStats holds the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	TotalBookCount   int64 `json:"total_book_count"`
	UserCount        int64 `json:"user_count"`
	LoanedBookCount  int64 `json:"loaned_book_count"`
	OverdueLoanCount int64 `json:"overdue_loan_count"`
}
