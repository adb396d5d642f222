package utils

import "time"

// OverdueDays returns how many whole days a return is late, rounding any
// partial day up: a return one second past the expected date counts as one
// full overdue day. Returns 0 for on-time or early returns.
func OverdueDays(expectedReturn, actualReturn time.Time) int32 {
	delay := actualReturn.Sub(expectedReturn)
	if delay <= 0 {
		return 0
	}
	days := delay / (24 * time.Hour)
	if delay%(24*time.Hour) != 0 {
		days++
	}
	return int32(days)
}

// FineAmountCents computes the penalty for the given overdue days at the
// fine type's daily rate. Integer cents, so no currency rounding occurs.
func FineAmountCents(overdueDays int32, dailyRateCents int64) int64 {
	if overdueDays <= 0 || dailyRateCents <= 0 {
		return 0
	}
	return int64(overdueDays) * dailyRateCents
}

// ExpectedReturnDate computes the due date for a new loan: today (UTC,
// truncated to midnight) plus the requested number of loan days.
func ExpectedReturnDate(now time.Time, loanDays int32) time.Time {
	return Midnight(now).AddDate(0, 0, int(loanDays))
}

// Midnight truncates t to the start of its UTC day.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
