package bookswithstatus

import (
	"strings"

	"github.com/Chalhotra/LibMgmt/store"
)

const (
	StatusAvailable    = "Available"
	StatusNotAvailable = "Not Available"
	statusBorrowedBy   = "Borrowed by "
)

// ProjectBooksWithStatus turns the read model rows into the query result.
//
// Query Logic:
//
//	GIVEN: the books with the usernames holding open approved checkouts
//	WHEN: BooksWithStatus query is executed
//	THEN: each book is "Available" while copies are left
//	OR: "Borrowed by a, b" when no copy is left and someone borrows it
//	OR: "Not Available" when no copy is left and nobody borrows it
func ProjectBooksWithStatus(rows []store.BookWithBorrowers) BooksWithStatus {
	books := make([]BookStatus, 0, len(rows))

	for _, row := range rows {
		borrowers := row.Borrowers
		if borrowers == nil {
			borrowers = make([]string, 0)
		}

		books = append(books, BookStatus{
			BookID:    row.ID.String(),
			Title:     row.Title,
			Author:    row.Author,
			Quantity:  row.Quantity,
			Status:    StatusFor(row.Quantity, borrowers),
			Borrowers: borrowers,
		})
	}

	return BooksWithStatus{
		Books: books,
		Count: len(books),
	}
}

// StatusFor returns the availability label of a book.
func StatusFor(quantity int, borrowers []string) string {
	switch {
	case quantity > 0:
		return StatusAvailable
	case len(borrowers) > 0:
		return statusBorrowedBy + strings.Join(borrowers, ", ")
	default:
		return StatusNotAvailable
	}
}
