package store

import (
	"context"

	"github.com/google/uuid"
)

// Tx is the unit of work handed to command handlers by WithinTx.
//
// All Lock* methods take a row lock (SELECT ... FOR UPDATE) that is held until the
// transaction ends, and return ErrRowNotFound when no row matches.
// Write methods return ErrNoRowsAffected when the target row does not exist.
//
// CountActiveCheckouts reads without row locks. It is complete only while the caller holds the
// lock on the book, because every checkout insert and every release of a copy holds that lock.
type Tx interface {
	LockBook(ctx context.Context, bookID uuid.UUID) (Book, error)
	LockBookByTitleAndAuthor(ctx context.Context, title, author string) (Book, error)
	InsertBook(ctx context.Context, book Book) error
	UpdateBook(ctx context.Context, book Book) error
	SetBookQuantity(ctx context.Context, bookID uuid.UUID, quantity int) error
	DeleteBook(ctx context.Context, bookID uuid.UUID) error

	LockUser(ctx context.Context, userID uuid.UUID) (User, error)
	LockUserByUsername(ctx context.Context, username string) (User, error)
	InsertUser(ctx context.Context, user User) error
	UpdateUserAdminState(ctx context.Context, userID uuid.UUID, isAdmin bool, adminRequestStatus string) error

	LockCheckout(ctx context.Context, checkoutID uuid.UUID) (Checkout, error)
	LockActiveCheckouts(ctx context.Context, filter CheckoutFilter) ([]Checkout, error)
	CountActiveCheckouts(ctx context.Context, filter CheckoutFilter) (int, error)
	InsertCheckout(ctx context.Context, checkout Checkout) error
	UpdateCheckout(ctx context.Context, checkout Checkout) error
	DeleteCheckoutsForBook(ctx context.Context, bookID uuid.UUID) (int64, error)

	AppendEvent(ctx context.Context, event StorableEvent) error
}

// CheckoutFilter narrows LockActiveCheckouts and CountActiveCheckouts. Zero-valued fields do not filter.
type CheckoutFilter struct {
	UserID       uuid.UUID
	BookID       uuid.UUID
	OnlyApproved bool
}

// Matches reports whether an active checkout satisfies the filter.
func (f CheckoutFilter) Matches(c Checkout) bool {
	if !c.IsActive() {
		return false
	}

	if f.UserID != uuid.Nil && c.UserID != f.UserID {
		return false
	}

	if f.BookID != uuid.Nil && c.BookID != f.BookID {
		return false
	}

	if f.OnlyApproved && c.Status != CheckoutStatusApproved {
		return false
	}

	return true
}
