package bookswithstatus

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/store"
)

// Store defines the read model the QueryHandler depends on.
type Store interface {
	ListBooksWithBorrowers(ctx context.Context) ([]store.BookWithBorrowers, error)
}

// QueryHandler runs Query -> Project for BooksWithStatus.
type QueryHandler struct {
	libraryStore Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(libraryStore Store) QueryHandler {
	return QueryHandler{libraryStore: libraryStore}
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (BooksWithStatus, error) {
	rows, err := h.libraryStore.ListBooksWithBorrowers(ctx)
	if err != nil {
		return BooksWithStatus{}, core.StorageFailure(err)
	}

	return ProjectBooksWithStatus(rows), nil
}
