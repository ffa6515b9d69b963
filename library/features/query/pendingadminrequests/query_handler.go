package pendingadminrequests

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/store"
)

const failureReasonAdminRequired = "admin rights required"

// Store defines the read model the QueryHandler depends on.
type Store interface {
	ListPendingAdminRequests(ctx context.Context) ([]store.User, error)
}

// QueryHandler runs Query -> Project for PendingAdminRequests.
type QueryHandler struct {
	libraryStore Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(libraryStore Store) QueryHandler {
	return QueryHandler{libraryStore: libraryStore}
}

// Handle executes the query. Non-admins get Forbidden without touching the store.
func (h QueryHandler) Handle(ctx context.Context, query Query) (PendingAdminRequests, error) {
	if !query.ActorIsAdmin {
		return PendingAdminRequests{}, core.Reject(core.ErrForbidden, failureReasonAdminRequired)
	}

	rows, err := h.libraryStore.ListPendingAdminRequests(ctx)
	if err != nil {
		return PendingAdminRequests{}, core.StorageFailure(err)
	}

	return ProjectPendingAdminRequests(rows), nil
}
