package jobs

import (
	"context"

	"library-backend/internal/logger"
)

// SendFineNotices emails every member with unpaid fines a summary of what
// they owe.
func (jr *JobRunner) SendFineNotices() {
	jr.runWithRecovery("SendFineNotices", func() {
		ctx := context.Background()

		query := `
			SELECT u.email, u.first_name, u.last_name,
			       COUNT(f.id), COALESCE(SUM(f.amount_cents), 0)
			FROM fines f
			JOIN users u ON u.id = f.user_id
			WHERE f.is_active = TRUE
			GROUP BY u.id, u.email, u.first_name, u.last_name
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query active fines", "error", err)
			return
		}
		defer rows.Close()

		type fineSummary struct {
			Email       string
			FirstName   string
			LastName    string
			FineCount   int64
			AmountCents int64
		}
		var summaries []fineSummary

		for rows.Next() {
			var fs fineSummary
			if err := rows.Scan(&fs.Email, &fs.FirstName, &fs.LastName, &fs.FineCount, &fs.AmountCents); err != nil {
				logger.Error("Failed to scan fine summary", "error", err)
				continue
			}
			summaries = append(summaries, fs)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating fine summaries", "error", err)
			return
		}

		sent := 0
		for _, fs := range summaries {
			name := fs.FirstName + " " + fs.LastName
			description := "You have unpaid fines on your account. Borrowing stays blocked until they are settled."
			if fs.FineCount > 1 {
				description = "You have several unpaid fines on your account. Borrowing stays blocked until they are settled."
			}
			if err := jr.services.Email.SendFineNotice(ctx, fs.Email, name, description, fs.AmountCents); err != nil {
				logger.Error("Failed to send fine notice", "email", fs.Email, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent fine notices", "members_with_fines", len(summaries), "emails_sent", sent)
	})
}
