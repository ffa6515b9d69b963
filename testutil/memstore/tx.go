package memstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/store"
)

var _ store.Tx = (*memTx)(nil)

type memTx struct {
	state *state
}

func (tx *memTx) LockBook(_ context.Context, bookID uuid.UUID) (store.Book, error) {
	book, ok := tx.state.books[bookID]
	if !ok {
		return store.Book{}, store.ErrRowNotFound
	}

	return book, nil
}

func (tx *memTx) LockBookByTitleAndAuthor(_ context.Context, title, author string) (store.Book, error) {
	for _, book := range tx.state.books {
		if book.Title == title && book.Author == author {
			return book, nil
		}
	}

	return store.Book{}, store.ErrRowNotFound
}

func (tx *memTx) InsertBook(_ context.Context, book store.Book) error {
	if _, exists := tx.state.books[book.ID]; exists {
		return fmt.Errorf("%w: books_pkey", store.ErrUniqueViolation)
	}

	for _, other := range tx.state.books {
		if other.Title == book.Title && other.Author == book.Author {
			return fmt.Errorf("%w: books_title_author_key", store.ErrUniqueViolation)
		}
	}

	tx.state.books[book.ID] = book

	return nil
}

func (tx *memTx) UpdateBook(_ context.Context, book store.Book) error {
	if _, exists := tx.state.books[book.ID]; !exists {
		return store.ErrNoRowsAffected
	}

	for _, other := range tx.state.books {
		if other.ID != book.ID && other.Title == book.Title && other.Author == book.Author {
			return fmt.Errorf("%w: books_title_author_key", store.ErrUniqueViolation)
		}
	}

	tx.state.books[book.ID] = book

	return nil
}

func (tx *memTx) SetBookQuantity(_ context.Context, bookID uuid.UUID, quantity int) error {
	book, exists := tx.state.books[bookID]
	if !exists {
		return store.ErrNoRowsAffected
	}

	if quantity < 0 {
		return fmt.Errorf("%w: books_quantity_check", store.ErrExecutingFailed)
	}

	book.Quantity = quantity
	tx.state.books[bookID] = book

	return nil
}

func (tx *memTx) DeleteBook(_ context.Context, bookID uuid.UUID) error {
	if _, exists := tx.state.books[bookID]; !exists {
		return store.ErrNoRowsAffected
	}

	for _, c := range tx.state.checkouts {
		if c.BookID == bookID {
			return fmt.Errorf("%w: checkouts_book_id_fkey", store.ErrExecutingFailed)
		}
	}

	delete(tx.state.books, bookID)

	return nil
}

func (tx *memTx) LockUser(_ context.Context, userID uuid.UUID) (store.User, error) {
	user, ok := tx.state.users[userID]
	if !ok {
		return store.User{}, store.ErrRowNotFound
	}

	return user, nil
}

func (tx *memTx) LockUserByUsername(_ context.Context, username string) (store.User, error) {
	for _, user := range tx.state.users {
		if user.Username == username {
			return user, nil
		}
	}

	return store.User{}, store.ErrRowNotFound
}

func (tx *memTx) InsertUser(_ context.Context, user store.User) error {
	if _, exists := tx.state.users[user.ID]; exists {
		return fmt.Errorf("%w: users_pkey", store.ErrUniqueViolation)
	}

	for _, other := range tx.state.users {
		if other.Username == user.Username {
			return fmt.Errorf("%w: users_username_key", store.ErrUniqueViolation)
		}
	}

	tx.state.users[user.ID] = user

	return nil
}

func (tx *memTx) UpdateUserAdminState(_ context.Context, userID uuid.UUID, isAdmin bool, adminRequestStatus string) error {
	user, exists := tx.state.users[userID]
	if !exists {
		return store.ErrNoRowsAffected
	}

	user.IsAdmin = isAdmin
	user.AdminRequestStatus = adminRequestStatus
	tx.state.users[userID] = user

	return nil
}

func (tx *memTx) LockCheckout(_ context.Context, checkoutID uuid.UUID) (store.Checkout, error) {
	checkout, ok := tx.state.checkouts[checkoutID]
	if !ok {
		return store.Checkout{}, store.ErrRowNotFound
	}

	return cloneCheckout(checkout), nil
}

func (tx *memTx) LockActiveCheckouts(_ context.Context, filter store.CheckoutFilter) ([]store.Checkout, error) {
	checkouts := make([]store.Checkout, 0)
	for _, c := range tx.state.checkouts {
		if filter.Matches(c) {
			checkouts = append(checkouts, cloneCheckout(c))
		}
	}

	slices.SortFunc(checkouts, func(a, b store.Checkout) int {
		return a.CheckoutDate.Compare(b.CheckoutDate)
	})

	return checkouts, nil
}

func (tx *memTx) CountActiveCheckouts(_ context.Context, filter store.CheckoutFilter) (int, error) {
	count := 0
	for _, c := range tx.state.checkouts {
		if filter.Matches(c) {
			count++
		}
	}

	return count, nil
}

func (tx *memTx) InsertCheckout(_ context.Context, checkout store.Checkout) error {
	if _, exists := tx.state.checkouts[checkout.ID]; exists {
		return fmt.Errorf("%w: checkouts_pkey", store.ErrUniqueViolation)
	}

	if _, exists := tx.state.users[checkout.UserID]; !exists {
		return fmt.Errorf("%w: checkouts_user_id_fkey", store.ErrExecutingFailed)
	}

	if _, exists := tx.state.books[checkout.BookID]; !exists {
		return fmt.Errorf("%w: checkouts_book_id_fkey", store.ErrExecutingFailed)
	}

	if checkout.IsActive() && tx.hasOtherActiveCheckout(checkout) {
		return fmt.Errorf("%w: checkouts_one_active_per_user_book", store.ErrUniqueViolation)
	}

	tx.state.checkouts[checkout.ID] = cloneCheckout(checkout)

	return nil
}

func (tx *memTx) UpdateCheckout(_ context.Context, checkout store.Checkout) error {
	existing, exists := tx.state.checkouts[checkout.ID]
	if !exists {
		return store.ErrNoRowsAffected
	}

	existing.ReturnDate = checkout.ReturnDate
	existing.Fine = checkout.Fine
	existing.Status = checkout.Status

	if existing.IsActive() && tx.hasOtherActiveCheckout(existing) {
		return fmt.Errorf("%w: checkouts_one_active_per_user_book", store.ErrUniqueViolation)
	}

	tx.state.checkouts[checkout.ID] = cloneCheckout(existing)

	return nil
}

func (tx *memTx) hasOtherActiveCheckout(checkout store.Checkout) bool {
	for _, other := range tx.state.checkouts {
		if other.ID != checkout.ID && other.IsActive() &&
			other.UserID == checkout.UserID && other.BookID == checkout.BookID {
			return true
		}
	}

	return false
}

func (tx *memTx) DeleteCheckoutsForBook(_ context.Context, bookID uuid.UUID) (int64, error) {
	var deleted int64
	for id, c := range tx.state.checkouts {
		if c.BookID == bookID {
			delete(tx.state.checkouts, id)
			deleted++
		}
	}

	return deleted, nil
}

func (tx *memTx) AppendEvent(_ context.Context, event store.StorableEvent) error {
	tx.state.events = append(tx.state.events, event)

	return nil
}
