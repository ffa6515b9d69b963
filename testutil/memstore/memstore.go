package memstore

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/store"
)

type state struct {
	books     map[uuid.UUID]store.Book
	users     map[uuid.UUID]store.User
	checkouts map[uuid.UUID]store.Checkout
	events    []store.StorableEvent
}

func newState() state {
	return state{
		books:     map[uuid.UUID]store.Book{},
		users:     map[uuid.UUID]store.User{},
		checkouts: map[uuid.UUID]store.Checkout{},
	}
}

func (s state) clone() state {
	checkouts := make(map[uuid.UUID]store.Checkout, len(s.checkouts))
	for id, c := range s.checkouts {
		checkouts[id] = cloneCheckout(c)
	}

	return state{
		books:     maps.Clone(s.books),
		users:     maps.Clone(s.users),
		checkouts: checkouts,
		events:    slices.Clone(s.events),
	}
}

func cloneCheckout(c store.Checkout) store.Checkout {
	if c.ReturnDate != nil {
		returnDate := *c.ReturnDate
		c.ReturnDate = &returnDate
	}

	return c
}

// Store is the in-memory store. The zero value is not usable, use New.
type Store struct {
	mu       sync.Mutex
	state    state
	failWith error
}

// New returns an empty Store.
func New() *Store {
	return &Store{state: newState()}
}

// FailTransactionsWith makes every following WithinTx call fail with err before running its callback.
// Pass nil to restore normal behavior.
func (s *Store) FailTransactionsWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failWith = err
}

// WithinTx runs fn on a private copy of the state and commits it when fn returns nil.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return fmt.Errorf("%w: %w", store.ErrBeginningTxFailed, s.failWith)
	}

	working := s.state.clone()
	if err := fn(ctx, &memTx{state: &working}); err != nil {
		return err
	}

	s.state = working

	return nil
}

// Events returns a copy of the journal.
func (s *Store) Events() []store.StorableEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.state.events)
}

// Book returns a committed book row.
func (s *Store) Book(bookID uuid.UUID) (store.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.state.books[bookID]

	return book, ok
}

// User returns a committed user row.
func (s *Store) User(userID uuid.UUID) (store.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.state.users[userID]

	return user, ok
}

// Checkout returns a committed checkout row.
func (s *Store) Checkout(checkoutID uuid.UUID) (store.Checkout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checkout, ok := s.state.checkouts[checkoutID]

	return cloneCheckout(checkout), ok
}

// Ping always succeeds unless transactions are set to fail.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.failWith
}

func (s *Store) read(ctx context.Context) (state, error) {
	if err := ctx.Err(); err != nil {
		return state{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return state{}, fmt.Errorf("%w: %w", store.ErrQueryingFailed, s.failWith)
	}

	return s.state.clone(), nil
}

// ListBooksWithBorrowers mirrors the PostgreSQL read model.
func (s *Store) ListBooksWithBorrowers(ctx context.Context) ([]store.BookWithBorrowers, error) {
	snapshot, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	books := make([]store.BookWithBorrowers, 0, len(snapshot.books))
	for _, book := range sortedBooks(snapshot.books) {
		borrowers := make([]string, 0)
		for _, c := range snapshot.checkouts {
			if c.BookID == book.ID && c.IsOpen() {
				borrowers = append(borrowers, snapshot.users[c.UserID].Username)
			}
		}

		slices.Sort(borrowers)
		books = append(books, store.BookWithBorrowers{Book: book, Borrowers: borrowers})
	}

	return books, nil
}

// SearchBooks mirrors the PostgreSQL read model: a case-insensitive substring match on title or author.
func (s *Store) SearchBooks(ctx context.Context, term string, onlyAvailable bool) ([]store.Book, error) {
	snapshot, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	books := make([]store.Book, 0)

	for _, book := range sortedBooks(snapshot.books) {
		if onlyAvailable && book.Quantity <= 0 {
			continue
		}

		if needle != "" &&
			!strings.Contains(strings.ToLower(book.Title), needle) &&
			!strings.Contains(strings.ToLower(book.Author), needle) {
			continue
		}

		books = append(books, book)
	}

	return books, nil
}

// ListCheckoutHistory returns the approved checkouts of a user, most recent first.
func (s *Store) ListCheckoutHistory(ctx context.Context, userID uuid.UUID) ([]store.CheckoutWithBook, error) {
	snapshot, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]store.CheckoutWithBook, 0)
	for _, c := range snapshot.checkouts {
		if c.UserID != userID || c.Status != store.CheckoutStatusApproved {
			continue
		}

		book := snapshot.books[c.BookID]
		history = append(history, store.CheckoutWithBook{Checkout: c, Title: book.Title, Author: book.Author})
	}

	slices.SortFunc(history, func(a, b store.CheckoutWithBook) int {
		return b.CheckoutDate.Compare(a.CheckoutDate)
	})

	return history, nil
}

// ListPendingCheckouts returns all checkout requests awaiting a decision, oldest first.
func (s *Store) ListPendingCheckouts(ctx context.Context) ([]store.PendingCheckout, error) {
	snapshot, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]store.PendingCheckout, 0)
	for _, c := range snapshot.checkouts {
		if c.Status != store.CheckoutStatusPending {
			continue
		}

		book := snapshot.books[c.BookID]
		pending = append(pending, store.PendingCheckout{
			CheckoutWithBook: store.CheckoutWithBook{Checkout: c, Title: book.Title, Author: book.Author},
			Username:         snapshot.users[c.UserID].Username,
		})
	}

	slices.SortFunc(pending, func(a, b store.PendingCheckout) int {
		return a.CheckoutDate.Compare(b.CheckoutDate)
	})

	return pending, nil
}

// ListPendingAdminRequests returns the users with a pending admin request, ordered by username.
func (s *Store) ListPendingAdminRequests(ctx context.Context) ([]store.User, error) {
	snapshot, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]store.User, 0)
	for _, u := range snapshot.users {
		if u.AdminRequestStatus == store.AdminRequestPending {
			users = append(users, u)
		}
	}

	slices.SortFunc(users, func(a, b store.User) int { return cmp.Compare(a.Username, b.Username) })

	return users, nil
}

// FindUserByUsername returns store.ErrRowNotFound when absent.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (store.User, error) {
	snapshot, err := s.read(ctx)
	if err != nil {
		return store.User{}, err
	}

	for _, u := range snapshot.users {
		if u.Username == username {
			return u, nil
		}
	}

	return store.User{}, store.ErrRowNotFound
}

func sortedBooks(books map[uuid.UUID]store.Book) []store.Book {
	sorted := slices.Collect(maps.Values(books))
	slices.SortFunc(sorted, func(a, b store.Book) int {
		return cmp.Or(
			cmp.Compare(a.Title, b.Title),
			cmp.Compare(a.Author, b.Author),
			cmp.Compare(a.ID.String(), b.ID.String()),
		)
	})

	return sorted
}
