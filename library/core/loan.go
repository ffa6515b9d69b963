package core

import (
	"time"
)

const day = 24 * time.Hour

// DueDateFor returns the due date of a checkout started at checkoutDate.
func DueDateFor(checkoutDate time.Time, policy Policy) time.Time {
	return ToOccurredAt(checkoutDate.Add(policy.LoanPeriod))
}

// FineFor returns max(0, ceil((returnDate - dueDate) / 1 day)) * finePerDay.
// Every started day after the due date counts as a full day.
func FineFor(dueDate, returnDate time.Time, finePerDay int64) int64 {
	late := returnDate.Sub(dueDate)
	if late <= 0 {
		return 0
	}

	days := int64(late / day)
	if late%day != 0 {
		days++
	}

	return days * finePerDay
}
