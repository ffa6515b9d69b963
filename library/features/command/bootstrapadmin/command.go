package bootstrapadmin

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	commandType = "BootstrapAdmin"
)

// Command represents the intent of an operator to make a user an admin.
// UserID is only used when the account does not exist yet.
type Command struct {
	UserID     uuid.UUID
	Username   string
	Password   string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(userID uuid.UUID, username, password string, occurredAt time.Time) Command {
	return Command{
		UserID:     userID,
		Username:   strings.TrimSpace(username),
		Password:   password,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
