package borrowinghistory

import (
	"time"

	"github.com/Chalhotra/LibMgmt/library/core"
)

// CheckoutInfo is one checkout of the history. ReturnDate is nil while the book is still out.
type CheckoutInfo struct {
	CheckoutID   core.CheckoutIDString `json:"checkoutId"`
	BookID       core.BookIDString     `json:"bookId"`
	Title        string                `json:"title"`
	Author       string                `json:"author"`
	CheckoutDate time.Time             `json:"checkoutDate"`
	DueDate      time.Time             `json:"dueDate"`
	ReturnDate   *time.Time            `json:"returnDate"`
	Fine         int64                 `json:"fine"`
}

// BorrowingHistory represents the query result.
type BorrowingHistory struct {
	UserID    core.UserIDString `json:"userId"`
	Checkouts []CheckoutInfo    `json:"checkouts"`
	Count     int               `json:"count"`
}

// IsQueryResult marks BorrowingHistory as a query result.
func (r BorrowingHistory) IsQueryResult() {}
