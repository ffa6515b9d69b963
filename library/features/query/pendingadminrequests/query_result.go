package pendingadminrequests

import (
	"time"

	"github.com/Chalhotra/LibMgmt/library/core"
)

// AdminRequest is one user waiting for admin rights.
type AdminRequest struct {
	UserID       core.UserIDString `json:"userId"`
	Username     string            `json:"username"`
	IsAdmin      bool              `json:"isAdmin"`
	RegisteredAt time.Time         `json:"registeredAt"`
}

// PendingAdminRequests represents the query result, ordered by username.
type PendingAdminRequests struct {
	Requests []AdminRequest `json:"requests"`
	Count    int            `json:"count"`
}

// IsQueryResult marks PendingAdminRequests as a query result.
func (r PendingAdminRequests) IsQueryResult() {}
