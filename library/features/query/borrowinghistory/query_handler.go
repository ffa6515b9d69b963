package borrowinghistory

import (
	"context"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/store"
)

// Store defines the read model the QueryHandler depends on.
type Store interface {
	ListCheckoutHistory(ctx context.Context, userID uuid.UUID) ([]store.CheckoutWithBook, error)
}

// QueryHandler runs Query -> Project for BorrowingHistory.
type QueryHandler struct {
	libraryStore Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(libraryStore Store) QueryHandler {
	return QueryHandler{libraryStore: libraryStore}
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BorrowingHistory, error) {
	rows, err := h.libraryStore.ListCheckoutHistory(ctx, query.UserID)
	if err != nil {
		return BorrowingHistory{}, core.StorageFailure(err)
	}

	return ProjectBorrowingHistory(rows, query), nil
}
