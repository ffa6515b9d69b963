package approveadmin

import (
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	commandType = "ApproveAdmin"
)

// Command represents the intent of an admin to grant a pending admin request.
type Command struct {
	ActorID    uuid.UUID
	UserID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actorID, userID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		ActorID:    actorID,
		UserID:     userID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
