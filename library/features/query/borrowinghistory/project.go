package borrowinghistory

import (
	"github.com/Chalhotra/LibMgmt/store"
)

// ProjectBorrowingHistory turns the read model rows into the query result, keeping their order.
func ProjectBorrowingHistory(rows []store.CheckoutWithBook, query Query) BorrowingHistory {
	checkouts := make([]CheckoutInfo, 0, len(rows))

	for _, row := range rows {
		checkouts = append(checkouts, CheckoutInfo{
			CheckoutID:   row.ID.String(),
			BookID:       row.BookID.String(),
			Title:        row.Title,
			Author:       row.Author,
			CheckoutDate: row.CheckoutDate,
			DueDate:      row.DueDate,
			ReturnDate:   row.ReturnDate,
			Fine:         row.Fine,
		})
	}

	return BorrowingHistory{
		UserID:    query.UserID.String(),
		Checkouts: checkouts,
		Count:     len(checkouts),
	}
}
