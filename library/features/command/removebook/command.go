package removebook

import (
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	commandType = "RemoveBook"
)

// Command represents the intent to delete a book from the inventory.
type Command struct {
	ActorID    uuid.UUID
	BookID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actorID, bookID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		ActorID:    actorID,
		BookID:     bookID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
