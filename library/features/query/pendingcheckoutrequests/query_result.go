package pendingcheckoutrequests

import (
	"time"

	"github.com/Chalhotra/LibMgmt/library/core"
)

// CheckoutRequest is one pending checkout.
type CheckoutRequest struct {
	CheckoutID  core.CheckoutIDString `json:"checkoutId"`
	UserID      core.UserIDString     `json:"userId"`
	Username    string                `json:"username"`
	BookID      core.BookIDString     `json:"bookId"`
	Title       string                `json:"title"`
	Author      string                `json:"author"`
	RequestedAt time.Time             `json:"requestedAt"`
	DueDate     time.Time             `json:"dueDate"`
}

// PendingCheckoutRequests represents the query result, oldest request first.
type PendingCheckoutRequests struct {
	Requests []CheckoutRequest `json:"requests"`
	Count    int               `json:"count"`
}

// IsQueryResult marks PendingCheckoutRequests as a query result.
func (r PendingCheckoutRequests) IsQueryResult() {}
