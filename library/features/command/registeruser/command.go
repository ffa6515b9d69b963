package registeruser

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	commandType = "RegisterUser"
)

// Command represents the intent to create a regular user account.
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
// The username is trimmed, the password is taken as given.
func BuildCommand(userID uuid.UUID, username, password string, occurredAt time.Time) Command {
	return Command{
		UserID:     userID,
		Username:   strings.TrimSpace(username),
		Password:   password,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
