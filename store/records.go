package store

import (
	"time"

	"github.com/google/uuid"
)

// Checkout status values as persisted in the checkouts.status column.
const (
	CheckoutStatusPending  = "pending"
	CheckoutStatusApproved = "approved"
	CheckoutStatusDenied   = "denied"
)

// Admin request status values as persisted in the users.admin_request_status column.
const (
	AdminRequestNone     = "none"
	AdminRequestPending  = "pending"
	AdminRequestApproved = "approved"
	AdminRequestDenied   = "denied"
)

// Book is a row of the books table.
type Book struct {
	ID       uuid.UUID
	Title    string
	Author   string
	Quantity int
}

// User is a row of the users table.
type User struct {
	ID                 uuid.UUID
	Username           string
	PasswordHash       string
	IsAdmin            bool
	AdminRequestStatus string
	CreatedAt          time.Time
}

// Checkout is a row of the checkouts table.
// ReturnDate is nil while the book is out.
type Checkout struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	BookID       uuid.UUID
	CheckoutDate time.Time
	DueDate      time.Time
	ReturnDate   *time.Time
	Fine         int64
	Status       string
}

// IsActive reports whether the checkout still holds or lends a copy.
func (c Checkout) IsActive() bool {
	return c.ReturnDate == nil && (c.Status == CheckoutStatusPending || c.Status == CheckoutStatusApproved)
}

// IsOpen reports whether the book is currently lent out on this checkout.
func (c Checkout) IsOpen() bool {
	return c.ReturnDate == nil && c.Status == CheckoutStatusApproved
}

// BookWithBorrowers is a read model row: a book plus the usernames holding open approved checkouts.
type BookWithBorrowers struct {
	Book
	Borrowers []string
}

// CheckoutWithBook is a read model row: a checkout joined with its book.
type CheckoutWithBook struct {
	Checkout
	Title  string
	Author string
}

// PendingCheckout is a read model row: a pending checkout joined with its book and user.
type PendingCheckout struct {
	CheckoutWithBook
	Username string
}
