package requestcheckout

import (
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	commandType = "RequestCheckout"
)

// Command represents the intent of a user to borrow a book.
type Command struct {
	CheckoutID uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(checkoutID, userID, bookID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		CheckoutID: checkoutID,
		UserID:     userID,
		BookID:     bookID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
