package bookswithstatus

import (
	"github.com/Chalhotra/LibMgmt/library/core"
)

// BookStatus is one book of the inventory with its availability.
type BookStatus struct {
	BookID    core.BookIDString `json:"bookId"`
	Title     string            `json:"title"`
	Author    string            `json:"author"`
	Quantity  int               `json:"quantity"`
	Status    string            `json:"status"`
	Borrowers []string          `json:"borrowers"`
}

// BooksWithStatus represents the query result, ordered by title and author.
type BooksWithStatus struct {
	Books []BookStatus `json:"books"`
	Count int          `json:"count"`
}

// IsQueryResult marks BooksWithStatus as a query result.
func (r BooksWithStatus) IsQueryResult() {}
