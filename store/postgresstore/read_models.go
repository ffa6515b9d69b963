package postgresstore

import (
	"context"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/store"
	"github.com/Chalhotra/LibMgmt/store/postgresstore/internal/adapters"
)

const (
	actionListBooks            = "list books with borrowers"
	actionSearchBooks          = "search books"
	actionCheckoutHistory      = "checkout history"
	actionPendingCheckouts     = "pending checkouts"
	actionPendingAdminRequests = "pending admin requests"
	actionFindUser             = "find user"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListBooksWithBorrowers returns every book ordered by title and author, together with the
// usernames that currently hold an open approved checkout of it.
func (s Store) ListBooksWithBorrowers(ctx context.Context) ([]store.BookWithBorrowers, error) {
	stmt := dialect().From(goqu.T(tableBooks).As("b")).Prepared(true).
		LeftJoin(
			goqu.T(tableCheckouts).As("c"),
			goqu.On(
				goqu.I("c.book_id").Eq(goqu.I("b.id")),
				goqu.I("c.status").Eq(store.CheckoutStatusApproved),
				goqu.I("c.return_date").IsNull(),
			),
		).
		LeftJoin(
			goqu.T(tableUsers).As("u"),
			goqu.On(goqu.I("u.id").Eq(goqu.I("c.user_id"))),
		).
		Select("b.id", "b.title", "b.author", "b.quantity", "u.username").
		Order(goqu.I("b.title").Asc(), goqu.I("b.author").Asc(), goqu.I("b.id").Asc(), goqu.I("u.username").Asc())

	books := make([]store.BookWithBorrowers, 0)

	err := s.queryRows(ctx, s.db, actionListBooks, stmt, func(rows adapters.DBRows) error {
		var row store.BookWithBorrowers
		var borrower *string

		if err := rows.Scan(&row.ID, &row.Title, &row.Author, &row.Quantity, &borrower); err != nil {
			return err
		}

		if n := len(books); n > 0 && books[n-1].ID == row.ID {
			if borrower != nil {
				books[n-1].Borrowers = append(books[n-1].Borrowers, *borrower)
			}

			return nil
		}

		row.Borrowers = make([]string, 0)
		if borrower != nil {
			row.Borrowers = append(row.Borrowers, *borrower)
		}

		books = append(books, row)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}

// SearchBooks returns books whose title or author contains term, case-insensitively.
// An empty term matches every book.
func (s Store) SearchBooks(ctx context.Context, term string, onlyAvailable bool) ([]store.Book, error) {
	stmt := dialect().From(tableBooks).Prepared(true).
		Select(bookColumns...).
		Order(goqu.C(colTitle).Asc(), goqu.C(colAuthor).Asc())

	if term != "" {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		stmt = stmt.Where(goqu.Or(
			goqu.C(colTitle).ILike(pattern),
			goqu.C(colAuthor).ILike(pattern),
		))
	}

	if onlyAvailable {
		stmt = stmt.Where(goqu.C(colQuantity).Gt(0))
	}

	books := make([]store.Book, 0)

	err := s.queryRows(ctx, s.db, actionSearchBooks, stmt, func(rows adapters.DBRows) error {
		book, err := scanBook(rows)
		books = append(books, book)

		return err
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}

// ListCheckoutHistory returns the approved checkouts of a user, most recent first.
func (s Store) ListCheckoutHistory(ctx context.Context, userID uuid.UUID) ([]store.CheckoutWithBook, error) {
	stmt := checkoutsWithBooks().
		Where(
			goqu.I("c.user_id").Eq(userID.String()),
			goqu.I("c.status").Eq(store.CheckoutStatusApproved),
		).
		Order(goqu.I("c.checkout_date").Desc())

	history := make([]store.CheckoutWithBook, 0)

	err := s.queryRows(ctx, s.db, actionCheckoutHistory, stmt, func(rows adapters.DBRows) error {
		var row store.CheckoutWithBook
		err := rows.Scan(
			&row.ID, &row.UserID, &row.BookID, &row.CheckoutDate, &row.DueDate, &row.ReturnDate, &row.Fine, &row.Status,
			&row.Title, &row.Author,
		)
		history = append(history, row)

		return err
	})
	if err != nil {
		return nil, err
	}

	return history, nil
}

// ListPendingCheckouts returns all checkout requests awaiting a decision, oldest first.
func (s Store) ListPendingCheckouts(ctx context.Context) ([]store.PendingCheckout, error) {
	stmt := checkoutsWithBooks().
		InnerJoin(goqu.T(tableUsers).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("c.user_id")))).
		SelectAppend("u.username").
		Where(goqu.I("c.status").Eq(store.CheckoutStatusPending)).
		Order(goqu.I("c.checkout_date").Asc())

	pending := make([]store.PendingCheckout, 0)

	err := s.queryRows(ctx, s.db, actionPendingCheckouts, stmt, func(rows adapters.DBRows) error {
		var row store.PendingCheckout
		err := rows.Scan(
			&row.ID, &row.UserID, &row.BookID, &row.CheckoutDate, &row.DueDate, &row.ReturnDate, &row.Fine, &row.Status,
			&row.Title, &row.Author, &row.Username,
		)
		pending = append(pending, row)

		return err
	})
	if err != nil {
		return nil, err
	}

	return pending, nil
}

// ListPendingAdminRequests returns the users with a pending admin request, ordered by username.
func (s Store) ListPendingAdminRequests(ctx context.Context) ([]store.User, error) {
	stmt := dialect().From(tableUsers).Prepared(true).
		Select(userColumns...).
		Where(goqu.Ex{colAdminRequestStatus: store.AdminRequestPending}).
		Order(goqu.C(colUsername).Asc())

	users := make([]store.User, 0)

	err := s.queryRows(ctx, s.db, actionPendingAdminRequests, stmt, func(rows adapters.DBRows) error {
		user, err := scanUser(rows)
		users = append(users, user)

		return err
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// FindUserByUsername reads a user without locking. It returns store.ErrRowNotFound when absent.
func (s Store) FindUserByUsername(ctx context.Context, username string) (store.User, error) {
	stmt := dialect().From(tableUsers).Prepared(true).
		Select(userColumns...).
		Where(goqu.Ex{colUsername: username})

	var users []store.User

	err := s.queryRows(ctx, s.db, actionFindUser, stmt, func(rows adapters.DBRows) error {
		user, err := scanUser(rows)
		users = append(users, user)

		return err
	})
	if err != nil {
		return store.User{}, err
	}

	if len(users) == 0 {
		return store.User{}, store.ErrRowNotFound
	}

	return users[0], nil
}

// Ping checks that the database is reachable.
func (s Store) Ping(ctx context.Context) error {
	return s.queryRows(ctx, s.db, "ping", dialect().Select(goqu.L("1")), func(rows adapters.DBRows) error {
		var one int
		return rows.Scan(&one)
	})
}

func checkoutsWithBooks() *goqu.SelectDataset {
	return dialect().From(goqu.T(tableCheckouts).As("c")).Prepared(true).
		InnerJoin(goqu.T(tableBooks).As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("c.book_id")))).
		Select(
			"c.id", "c.user_id", "c.book_id", "c.checkout_date", "c.due_date", "c.return_date", "c.fine", "c.status",
			"b.title", "b.author",
		)
}
