package searchbooks

import (
	"github.com/Chalhotra/LibMgmt/store"
)

// ProjectFoundBooks turns the matching rows into the query result.
func ProjectFoundBooks(rows []store.Book, query Query) FoundBooks {
	books := make([]BookInfo, 0, len(rows))

	for _, row := range rows {
		books = append(books, BookInfo{
			BookID:   row.ID.String(),
			Title:    row.Title,
			Author:   row.Author,
			Quantity: row.Quantity,
		})
	}

	return FoundBooks{
		Term:  query.Term,
		Books: books,
		Count: len(books),
	}
}
