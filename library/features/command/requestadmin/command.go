package requestadmin

import (
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	commandType = "RequestAdmin"
)

// Command represents the intent of a user to gain admin rights.
type Command struct {
	UserID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(userID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		UserID:     userID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
