package approvecheckout

import (
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	commandType = "ApproveCheckout"
)

// Command represents the intent of an admin to approve a pending checkout.
type Command struct {
	ActorID    uuid.UUID
	CheckoutID uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actorID, checkoutID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		ActorID:    actorID,
		CheckoutID: checkoutID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
