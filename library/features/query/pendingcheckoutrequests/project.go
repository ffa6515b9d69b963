package pendingcheckoutrequests

import (
	"github.com/Chalhotra/LibMgmt/store"
)

// ProjectPendingCheckoutRequests turns the read model rows into the query result, keeping their order.
func ProjectPendingCheckoutRequests(rows []store.PendingCheckout) PendingCheckoutRequests {
	requests := make([]CheckoutRequest, 0, len(rows))

	for _, row := range rows {
		requests = append(requests, CheckoutRequest{
			CheckoutID:  row.ID.String(),
			UserID:      row.UserID.String(),
			Username:    row.Username,
			BookID:      row.BookID.String(),
			Title:       row.Title,
			Author:      row.Author,
			RequestedAt: row.CheckoutDate,
			DueDate:     row.DueDate,
		})
	}

	return PendingCheckoutRequests{
		Requests: requests,
		Count:    len(requests),
	}
}
