package httpapi

import (
	"time"

	"github.com/Chalhotra/LibMgmt/library/core"
)

// UserView is returned by registration and the admin request operations.
type UserView struct {
	UserID             core.UserIDString `json:"userId"`
	Username           string            `json:"username,omitempty"`
	IsAdmin            bool              `json:"isAdmin"`
	AdminRequestStatus string            `json:"adminRequestStatus,omitempty"`
}

// TokenView is returned by login.
type TokenView struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
	UserID    core.UserIDString `json:"userId"`
	Username  string            `json:"username"`
	IsAdmin   bool              `json:"isAdmin"`
}

// BookView is a book after an inventory change.
type BookView struct {
	BookID   core.BookIDString `json:"bookId"`
	Title    string            `json:"title"`
	Author   string            `json:"author"`
	Quantity int               `json:"quantity"`
}

// CheckoutView is a checkout after a lifecycle transition. BookQuantity is the book's
// quantity after the transition, when the transition changed it.
type CheckoutView struct {
	CheckoutID   core.CheckoutIDString `json:"checkoutId"`
	UserID       core.UserIDString     `json:"userId"`
	BookID       core.BookIDString     `json:"bookId"`
	Status       string                `json:"status"`
	CheckoutDate *time.Time            `json:"checkoutDate,omitempty"`
	DueDate      *time.Time            `json:"dueDate,omitempty"`
	ReturnDate   *time.Time            `json:"returnDate,omitempty"`
	Fine         int64                 `json:"fine"`
	BookQuantity *int                  `json:"bookQuantity,omitempty"`
}

// CheckoutStatusReturned marks a checkout that was checked in.
const CheckoutStatusReturned = "returned"
