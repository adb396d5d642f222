package jobs

import (
	"context"
	"time"

	"library-backend/internal/logger"
	"library-backend/internal/utils"
)

// SendOverdueReminders emails every member holding a loan past its expected
// return date.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		query := `
			SELECT l.id, l.expected_return_date,
			       u.email, u.first_name, u.last_name,
			       b.title
			FROM loans l
			JOIN users u ON u.id = l.user_id
			JOIN book_copies bc ON bc.id = l.book_copy_id
			JOIN books b ON b.id = bc.book_id
			WHERE l.actual_return_date IS NULL
			  AND l.expected_return_date < $1
			ORDER BY l.expected_return_date
		`

		now := time.Now()
		rows, err := jr.db.QueryContext(ctx, query, now)
		if err != nil {
			logger.Error("Failed to query overdue loans", "error", err)
			return
		}
		defer rows.Close()

		type overdueLoan struct {
			LoanID         int32
			ExpectedReturn time.Time
			Email          string
			FirstName      string
			LastName       string
			BookTitle      string
		}
		var overdue []overdueLoan

		for rows.Next() {
			var ol overdueLoan
			if err := rows.Scan(&ol.LoanID, &ol.ExpectedReturn, &ol.Email, &ol.FirstName, &ol.LastName, &ol.BookTitle); err != nil {
				logger.Error("Failed to scan overdue loan", "error", err)
				continue
			}
			overdue = append(overdue, ol)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue loans", "error", err)
			return
		}

		sent := 0
		for _, ol := range overdue {
			days := utils.OverdueDays(ol.ExpectedReturn, now)
			name := ol.FirstName + " " + ol.LastName
			if err := jr.services.Email.SendOverdueReminder(ctx, ol.Email, name, ol.BookTitle, days); err != nil {
				logger.Error("Failed to send overdue reminder",
					"loan_id", ol.LoanID, "email", ol.Email, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent overdue reminders", "overdue_loans", len(overdue), "emails_sent", sent)
	})
}
