package pendingadminrequests

import (
	"github.com/Chalhotra/LibMgmt/store"
)

// ProjectPendingAdminRequests turns the read model rows into the query result, keeping their order.
// Password hashes never leave this function.
func ProjectPendingAdminRequests(rows []store.User) PendingAdminRequests {
	requests := make([]AdminRequest, 0, len(rows))

	for _, row := range rows {
		requests = append(requests, AdminRequest{
			UserID:       row.ID.String(),
			Username:     row.Username,
			IsAdmin:      row.IsAdmin,
			RegisteredAt: row.CreatedAt,
		})
	}

	return PendingAdminRequests{
		Requests: requests,
		Count:    len(requests),
	}
}
