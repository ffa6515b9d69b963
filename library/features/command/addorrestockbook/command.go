package addorrestockbook

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	commandType = "AddOrRestockBook"
)

// Command represents the intent to add copies of a book to the inventory.
// BookID is used only when no book with the same title and author exists.
type Command struct {
	ActorID    uuid.UUID
	BookID     uuid.UUID
	Title      string
	Author     string
	Quantity   int
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters. Title and author are trimmed.
func BuildCommand(actorID, bookID uuid.UUID, title, author string, quantity int, occurredAt time.Time) Command {
	return Command{
		ActorID:    actorID,
		BookID:     bookID,
		Title:      strings.TrimSpace(title),
		Author:     strings.TrimSpace(author),
		Quantity:   quantity,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
