package shell

import (
	"context"

	"github.com/Chalhotra/LibMgmt/store"
)

// TxRunner is the transactional part of the store that command handlers depend on.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.Tx) error) error
}

// Command represents the contract for all command types.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Implementations run Lock -> Project -> Decide -> Apply inside one transaction and leave
// observability to the wrappers in package observable.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query represents the contract for all query types.
type Query interface {
	QueryType() string
}

// QueryResult is the marker contract for read models.
type QueryResult interface {
	IsQueryResult()
}

// CoreQueryHandler defines the contract for components that load and project a read model.
type CoreQueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
