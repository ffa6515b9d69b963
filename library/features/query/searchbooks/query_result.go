package searchbooks

import (
	"github.com/Chalhotra/LibMgmt/library/core"
)

// BookInfo is one matching book.
type BookInfo struct {
	BookID   core.BookIDString `json:"bookId"`
	Title    string            `json:"title"`
	Author   string            `json:"author"`
	Quantity int               `json:"quantity"`
}

// FoundBooks represents the query result, ordered by title and author.
type FoundBooks struct {
	Term  string     `json:"term"`
	Books []BookInfo `json:"books"`
	Count int        `json:"count"`
}

// IsQueryResult marks FoundBooks as a query result.
func (r FoundBooks) IsQueryResult() {}
