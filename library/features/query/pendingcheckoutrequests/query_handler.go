package pendingcheckoutrequests

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/store"
)

const failureReasonAdminRequired = "admin rights required"

// Store defines the read model the QueryHandler depends on.
type Store interface {
	ListPendingCheckouts(ctx context.Context) ([]store.PendingCheckout, error)
}

// QueryHandler runs Query -> Project for PendingCheckoutRequests.
type QueryHandler struct {
	libraryStore Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(libraryStore Store) QueryHandler {
	return QueryHandler{libraryStore: libraryStore}
}

// Handle executes the query. Non-admins get Forbidden without touching the store.
func (h QueryHandler) Handle(ctx context.Context, query Query) (PendingCheckoutRequests, error) {
	if !query.ActorIsAdmin {
		return PendingCheckoutRequests{}, core.Reject(core.ErrForbidden, failureReasonAdminRequired)
	}

	rows, err := h.libraryStore.ListPendingCheckouts(ctx)
	if err != nil {
		return PendingCheckoutRequests{}, core.StorageFailure(err)
	}

	return ProjectPendingCheckoutRequests(rows), nil
}
