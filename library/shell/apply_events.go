package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/store"
)

// ErrUnsupportedDomainEvent is returned by ApplyEvents for an event type it cannot write.
var ErrUnsupportedDomainEvent = errors.New("unsupported domain event")

// ErrMalformedEventID is returned when an event carries an ID that is not a UUID.
var ErrMalformedEventID = errors.New("malformed id in domain event")

// ApplyEvents writes the row changes each event describes and appends the event to the journal,
// all through the caller's transaction. Events are applied in order.
func ApplyEvents(ctx context.Context, tx store.Tx, metadata EventMetadata, events core.DomainEvents) error {
	for _, event := range events {
		if err := applyEvent(ctx, tx, event); err != nil {
			return err
		}

		storableEvent, err := StorableEventFrom(event, metadata)
		if err != nil {
			return err
		}

		if err = tx.AppendEvent(ctx, storableEvent); err != nil {
			return err
		}
	}

	return nil
}

func applyEvent(ctx context.Context, tx store.Tx, event core.DomainEvent) error { //nolint:gocyclo
	switch e := event.(type) {
	case core.BookAddedToInventory:
		bookID, err := parseID(e.BookID)
		if err != nil {
			return err
		}

		return tx.InsertBook(ctx, store.Book{ID: bookID, Title: e.Title, Author: e.Author, Quantity: e.Quantity})

	case core.BookRestocked:
		bookID, err := parseID(e.BookID)
		if err != nil {
			return err
		}

		return tx.SetBookQuantity(ctx, bookID, e.Quantity)

	case core.BookUpdated:
		bookID, err := parseID(e.BookID)
		if err != nil {
			return err
		}

		return tx.UpdateBook(ctx, store.Book{ID: bookID, Title: e.Title, Author: e.Author, Quantity: e.Quantity})

	case core.BookRemoved:
		bookID, err := parseID(e.BookID)
		if err != nil {
			return err
		}

		if _, err = tx.DeleteCheckoutsForBook(ctx, bookID); err != nil {
			return err
		}

		return tx.DeleteBook(ctx, bookID)

	case core.CheckoutRequested:
		ids, err := parseIDs(e.CheckoutID, e.UserID, e.BookID)
		if err != nil {
			return err
		}

		if err = tx.InsertCheckout(ctx, store.Checkout{
			ID:           ids[0],
			UserID:       ids[1],
			BookID:       ids[2],
			CheckoutDate: e.CheckoutDate,
			DueDate:      e.DueDate,
			Status:       store.CheckoutStatusPending,
		}); err != nil {
			return err
		}

		return tx.SetBookQuantity(ctx, ids[2], e.BookQuantity)

	case core.CheckoutApproved:
		checkoutID, err := parseID(e.CheckoutID)
		if err != nil {
			return err
		}

		return tx.UpdateCheckout(ctx, store.Checkout{ID: checkoutID, Status: store.CheckoutStatusApproved})

	case core.CheckoutDenied:
		ids, err := parseIDs(e.CheckoutID, e.BookID)
		if err != nil {
			return err
		}

		if err = tx.UpdateCheckout(ctx, store.Checkout{ID: ids[0], Status: store.CheckoutStatusDenied}); err != nil {
			return err
		}

		return tx.SetBookQuantity(ctx, ids[1], e.BookQuantity)

	case core.BookCheckedIn:
		ids, err := parseIDs(e.CheckoutID, e.BookID)
		if err != nil {
			return err
		}

		returnDate := e.ReturnDate
		if err = tx.UpdateCheckout(ctx, store.Checkout{
			ID:         ids[0],
			ReturnDate: &returnDate,
			Fine:       e.Fine,
			Status:     store.CheckoutStatusApproved,
		}); err != nil {
			return err
		}

		return tx.SetBookQuantity(ctx, ids[1], e.BookQuantity)

	case core.AdminRequested:
		userID, err := parseID(e.UserID)
		if err != nil {
			return err
		}

		user, err := tx.LockUser(ctx, userID)
		if err != nil {
			return err
		}

		return tx.UpdateUserAdminState(ctx, userID, user.IsAdmin, store.AdminRequestPending)

	case core.AdminApproved:
		userID, err := parseID(e.UserID)
		if err != nil {
			return err
		}

		return tx.UpdateUserAdminState(ctx, userID, true, store.AdminRequestApproved)

	case core.AdminDenied:
		userID, err := parseID(e.UserID)
		if err != nil {
			return err
		}

		return tx.UpdateUserAdminState(ctx, userID, e.RemainsAdmin, store.AdminRequestDenied)

	case core.UserRegistered:
		userID, err := parseID(e.UserID)
		if err != nil {
			return err
		}

		return tx.InsertUser(ctx, store.User{
			ID:                 userID,
			Username:           e.Username,
			PasswordHash:       e.PasswordHash,
			AdminRequestStatus: store.AdminRequestNone,
			CreatedAt:          e.OccurredAt,
		})

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDomainEvent, event.IsEventType())
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.Join(ErrMalformedEventID, err)
	}

	return parsed, nil
}

func parseIDs(ids ...string) ([]uuid.UUID, error) {
	parsed := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		p, err := parseID(id)
		if err != nil {
			return nil, err
		}

		parsed = append(parsed, p)
	}

	return parsed, nil
}
