package postgresstore

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/store"
	"github.com/Chalhotra/LibMgmt/store/postgresstore/internal/adapters"
)

const (
	colID                 = "id"
	colTitle              = "title"
	colAuthor             = "author"
	colQuantity           = "quantity"
	colUsername           = "username"
	colPasswordHash       = "password_hash"
	colIsAdmin            = "is_admin"
	colAdminRequestStatus = "admin_request_status"
	colCreatedAt          = "created_at"
	colUserID             = "user_id"
	colBookID             = "book_id"
	colCheckoutDate       = "checkout_date"
	colDueDate            = "due_date"
	colReturnDate         = "return_date"
	colFine               = "fine"
	colStatus             = "status"
	colEventType          = "event_type"
	colOccurredAt         = "occurred_at"
	colPayload            = "payload"
	colMetadata           = "metadata"
	castJsonb             = "?::jsonb"

	actionLockBook           = "lock book"
	actionLockUser           = "lock user"
	actionLockCheckout       = "lock checkout"
	actionLockActiveCheckout = "lock active checkouts"
	actionCountActive        = "count active checkouts"
	actionInsertBook         = "insert book"
	actionUpdateBook         = "update book"
	actionSetQuantity        = "set book quantity"
	actionDeleteBook         = "delete book"
	actionInsertUser         = "insert user"
	actionUpdateUser         = "update user admin state"
	actionInsertCheckout     = "insert checkout"
	actionUpdateCheckout     = "update checkout"
	actionDeleteCheckouts    = "delete checkouts for book"
	actionAppendEvent        = "append event"
)

var (
	bookColumns     = []any{colID, colTitle, colAuthor, colQuantity}
	userColumns     = []any{colID, colUsername, colPasswordHash, colIsAdmin, colAdminRequestStatus, colCreatedAt}
	checkoutColumns = []any{colID, colUserID, colBookID, colCheckoutDate, colDueDate, colReturnDate, colFine, colStatus}
)

// pgTx implements store.Tx on top of an open adapter transaction.
type pgTx struct {
	store Store
	q     adapters.Querier
}

func (tx pgTx) LockBook(ctx context.Context, bookID uuid.UUID) (store.Book, error) {
	stmt := dialect().From(tableBooks).Prepared(true).
		Select(bookColumns...).
		Where(goqu.Ex{colID: bookID.String()}).
		ForUpdate(exp.Wait)

	return tx.lockOneBook(ctx, stmt)
}

func (tx pgTx) LockBookByTitleAndAuthor(ctx context.Context, title, author string) (store.Book, error) {
	stmt := dialect().From(tableBooks).Prepared(true).
		Select(bookColumns...).
		Where(goqu.Ex{colTitle: title, colAuthor: author}).
		ForUpdate(exp.Wait)

	return tx.lockOneBook(ctx, stmt)
}

func (tx pgTx) lockOneBook(ctx context.Context, stmt *goqu.SelectDataset) (store.Book, error) {
	var books []store.Book

	err := tx.store.queryRows(ctx, tx.q, actionLockBook, stmt, func(rows adapters.DBRows) error {
		book, scanErr := scanBook(rows)
		books = append(books, book)

		return scanErr
	})
	if err != nil {
		return store.Book{}, err
	}

	if len(books) == 0 {
		return store.Book{}, store.ErrRowNotFound
	}

	return books[0], nil
}

func (tx pgTx) InsertBook(ctx context.Context, book store.Book) error {
	stmt := dialect().Insert(tableBooks).Prepared(true).Rows(goqu.Record{
		colID:       book.ID.String(),
		colTitle:    book.Title,
		colAuthor:   book.Author,
		colQuantity: book.Quantity,
	})

	return tx.store.execOne(ctx, tx.q, actionInsertBook, stmt)
}

func (tx pgTx) UpdateBook(ctx context.Context, book store.Book) error {
	stmt := dialect().Update(tableBooks).Prepared(true).
		Set(goqu.Record{
			colTitle:    book.Title,
			colAuthor:   book.Author,
			colQuantity: book.Quantity,
		}).
		Where(goqu.Ex{colID: book.ID.String()})

	return tx.store.execOne(ctx, tx.q, actionUpdateBook, stmt)
}

func (tx pgTx) SetBookQuantity(ctx context.Context, bookID uuid.UUID, quantity int) error {
	stmt := dialect().Update(tableBooks).Prepared(true).
		Set(goqu.Record{colQuantity: quantity}).
		Where(goqu.Ex{colID: bookID.String()})

	return tx.store.execOne(ctx, tx.q, actionSetQuantity, stmt)
}

func (tx pgTx) DeleteBook(ctx context.Context, bookID uuid.UUID) error {
	stmt := dialect().Delete(tableBooks).Prepared(true).
		Where(goqu.Ex{colID: bookID.String()})

	return tx.store.execOne(ctx, tx.q, actionDeleteBook, stmt)
}

func (tx pgTx) LockUser(ctx context.Context, userID uuid.UUID) (store.User, error) {
	stmt := dialect().From(tableUsers).Prepared(true).
		Select(userColumns...).
		Where(goqu.Ex{colID: userID.String()}).
		ForUpdate(exp.Wait)

	return tx.lockOneUser(ctx, stmt)
}

func (tx pgTx) LockUserByUsername(ctx context.Context, username string) (store.User, error) {
	stmt := dialect().From(tableUsers).Prepared(true).
		Select(userColumns...).
		Where(goqu.Ex{colUsername: username}).
		ForUpdate(exp.Wait)

	return tx.lockOneUser(ctx, stmt)
}

func (tx pgTx) lockOneUser(ctx context.Context, stmt *goqu.SelectDataset) (store.User, error) {
	var users []store.User

	err := tx.store.queryRows(ctx, tx.q, actionLockUser, stmt, func(rows adapters.DBRows) error {
		user, scanErr := scanUser(rows)
		users = append(users, user)

		return scanErr
	})
	if err != nil {
		return store.User{}, err
	}

	if len(users) == 0 {
		return store.User{}, store.ErrRowNotFound
	}

	return users[0], nil
}

func (tx pgTx) InsertUser(ctx context.Context, user store.User) error {
	stmt := dialect().Insert(tableUsers).Prepared(true).Rows(goqu.Record{
		colID:                 user.ID.String(),
		colUsername:           user.Username,
		colPasswordHash:       user.PasswordHash,
		colIsAdmin:            user.IsAdmin,
		colAdminRequestStatus: user.AdminRequestStatus,
		colCreatedAt:          user.CreatedAt,
	})

	return tx.store.execOne(ctx, tx.q, actionInsertUser, stmt)
}

func (tx pgTx) UpdateUserAdminState(ctx context.Context, userID uuid.UUID, isAdmin bool, adminRequestStatus string) error {
	stmt := dialect().Update(tableUsers).Prepared(true).
		Set(goqu.Record{
			colIsAdmin:            isAdmin,
			colAdminRequestStatus: adminRequestStatus,
		}).
		Where(goqu.Ex{colID: userID.String()})

	return tx.store.execOne(ctx, tx.q, actionUpdateUser, stmt)
}

func (tx pgTx) LockCheckout(ctx context.Context, checkoutID uuid.UUID) (store.Checkout, error) {
	stmt := dialect().From(tableCheckouts).Prepared(true).
		Select(checkoutColumns...).
		Where(goqu.Ex{colID: checkoutID.String()}).
		ForUpdate(exp.Wait)

	checkouts, err := tx.lockCheckouts(ctx, actionLockCheckout, stmt)
	if err != nil {
		return store.Checkout{}, err
	}

	if len(checkouts) == 0 {
		return store.Checkout{}, store.ErrRowNotFound
	}

	return checkouts[0], nil
}

func (tx pgTx) LockActiveCheckouts(ctx context.Context, filter store.CheckoutFilter) ([]store.Checkout, error) {
	stmt := dialect().From(tableCheckouts).Prepared(true).
		Select(checkoutColumns...).
		Where(activeCheckoutsWhere(filter)).
		Order(goqu.C(colCheckoutDate).Asc()).
		ForUpdate(exp.Wait)

	return tx.lockCheckouts(ctx, actionLockActiveCheckout, stmt)
}

func (tx pgTx) CountActiveCheckouts(ctx context.Context, filter store.CheckoutFilter) (int, error) {
	stmt := dialect().From(tableCheckouts).Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		Where(activeCheckoutsWhere(filter))

	var count int

	err := tx.store.queryRows(ctx, tx.q, actionCountActive, stmt, func(rows adapters.DBRows) error {
		return rows.Scan(&count)
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

func activeCheckoutsWhere(filter store.CheckoutFilter) goqu.Ex {
	statuses := []string{store.CheckoutStatusPending, store.CheckoutStatusApproved}
	if filter.OnlyApproved {
		statuses = []string{store.CheckoutStatusApproved}
	}

	where := goqu.Ex{
		colReturnDate: nil,
		colStatus:     statuses,
	}

	if filter.UserID != uuid.Nil {
		where[colUserID] = filter.UserID.String()
	}

	if filter.BookID != uuid.Nil {
		where[colBookID] = filter.BookID.String()
	}

	return where
}

func (tx pgTx) lockCheckouts(ctx context.Context, action string, stmt *goqu.SelectDataset) ([]store.Checkout, error) {
	checkouts := make([]store.Checkout, 0)

	err := tx.store.queryRows(ctx, tx.q, action, stmt, func(rows adapters.DBRows) error {
		checkout, scanErr := scanCheckout(rows)
		checkouts = append(checkouts, checkout)

		return scanErr
	})
	if err != nil {
		return nil, err
	}

	return checkouts, nil
}

func (tx pgTx) InsertCheckout(ctx context.Context, checkout store.Checkout) error {
	stmt := dialect().Insert(tableCheckouts).Prepared(true).Rows(goqu.Record{
		colID:           checkout.ID.String(),
		colUserID:       checkout.UserID.String(),
		colBookID:       checkout.BookID.String(),
		colCheckoutDate: checkout.CheckoutDate,
		colDueDate:      checkout.DueDate,
		colReturnDate:   nullableTime(checkout.ReturnDate),
		colFine:         checkout.Fine,
		colStatus:       checkout.Status,
	})

	return tx.store.execOne(ctx, tx.q, actionInsertCheckout, stmt)
}

func (tx pgTx) UpdateCheckout(ctx context.Context, checkout store.Checkout) error {
	stmt := dialect().Update(tableCheckouts).Prepared(true).
		Set(goqu.Record{
			colReturnDate: nullableTime(checkout.ReturnDate),
			colFine:       checkout.Fine,
			colStatus:     checkout.Status,
		}).
		Where(goqu.Ex{colID: checkout.ID.String()})

	return tx.store.execOne(ctx, tx.q, actionUpdateCheckout, stmt)
}

func (tx pgTx) DeleteCheckoutsForBook(ctx context.Context, bookID uuid.UUID) (int64, error) {
	stmt := dialect().Delete(tableCheckouts).Prepared(true).
		Where(goqu.Ex{colBookID: bookID.String()})

	rowsAffected, err := tx.store.exec(ctx, tx.q, actionDeleteCheckouts, stmt)
	if err != nil {
		return 0, err
	}

	tx.store.logOperation(ctx, actionDeleteCheckouts, logAttrRowCount, rowsAffected)

	return rowsAffected, nil
}

func (tx pgTx) AppendEvent(ctx context.Context, event store.StorableEvent) error {
	stmt := dialect().Insert(tx.store.eventTableName).Prepared(true).Rows(goqu.Record{
		colEventType:  event.EventType,
		colOccurredAt: event.OccurredAt,
		colPayload:    goqu.L(castJsonb, string(event.PayloadJSON)),
		colMetadata:   goqu.L(castJsonb, string(event.MetadataJSON)),
	})

	return tx.store.execOne(ctx, tx.q, actionAppendEvent, stmt)
}

func scanBook(rows adapters.DBRows) (store.Book, error) {
	var book store.Book
	err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Quantity)

	return book, err
}

func scanUser(rows adapters.DBRows) (store.User, error) {
	var user store.User
	err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.AdminRequestStatus, &user.CreatedAt)

	return user, err
}

func scanCheckout(rows adapters.DBRows) (store.Checkout, error) {
	var c store.Checkout
	err := rows.Scan(&c.ID, &c.UserID, &c.BookID, &c.CheckoutDate, &c.DueDate, &c.ReturnDate, &c.Fine, &c.Status)

	return c, err
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return *t
}
