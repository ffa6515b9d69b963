package searchbooks

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/store"
)

// Store defines the read model the QueryHandler depends on.
type Store interface {
	SearchBooks(ctx context.Context, term string, onlyAvailable bool) ([]store.Book, error)
}

// QueryHandler runs Query -> Project for SearchBooks.
type QueryHandler struct {
	libraryStore Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(libraryStore Store) QueryHandler {
	return QueryHandler{libraryStore: libraryStore}
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, query Query) (FoundBooks, error) {
	rows, err := h.libraryStore.SearchBooks(ctx, query.Term, query.OnlyAvailable)
	if err != nil {
		return FoundBooks{}, core.StorageFailure(err)
	}

	return ProjectFoundBooks(rows, query), nil
}
