package checkinbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	commandType = "CheckInBook"
)

// Command represents the intent of a borrower to return a book.
type Command struct {
	CheckoutID uuid.UUID
	UserID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// occurredAt becomes the return date.
func BuildCommand(checkoutID, userID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		CheckoutID: checkoutID,
		UserID:     userID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
