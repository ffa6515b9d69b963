package httpapi

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/addorrestockbook"
	"github.com/Chalhotra/LibMgmt/library/features/command/approveadmin"
	"github.com/Chalhotra/LibMgmt/library/features/command/approvecheckout"
	"github.com/Chalhotra/LibMgmt/library/features/command/checkinbook"
	"github.com/Chalhotra/LibMgmt/library/features/command/denyadmin"
	"github.com/Chalhotra/LibMgmt/library/features/command/denycheckout"
	"github.com/Chalhotra/LibMgmt/library/features/command/registeruser"
	"github.com/Chalhotra/LibMgmt/library/features/command/removebook"
	"github.com/Chalhotra/LibMgmt/library/features/command/requestadmin"
	"github.com/Chalhotra/LibMgmt/library/features/command/requestcheckout"
	"github.com/Chalhotra/LibMgmt/library/features/command/updatebook"
	"github.com/Chalhotra/LibMgmt/library/features/query/authenticateuser"
	"github.com/Chalhotra/LibMgmt/library/features/query/borrowinghistory"
	"github.com/Chalhotra/LibMgmt/library/features/query/bookswithstatus"
	"github.com/Chalhotra/LibMgmt/library/features/query/pendingadminrequests"
	"github.com/Chalhotra/LibMgmt/library/features/query/pendingcheckoutrequests"
	"github.com/Chalhotra/LibMgmt/library/features/query/searchbooks"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/library/shell/observable"
)

// LibraryStore is everything the HTTP layer needs from the store: transactions for the
// command handlers, the read models for the query handlers, and a ping for readiness.
type LibraryStore interface {
	shell.TxRunner
	bookswithstatus.Store
	searchbooks.Store
	borrowinghistory.Store
	pendingcheckoutrequests.Store
	pendingadminrequests.Store
	authenticateuser.Store
	Ping(ctx context.Context) error
}

// Observability bundles the optional collectors handed to every wrapped handler.
// Nil fields are skipped.
type Observability struct {
	Metrics shell.MetricsCollector
	Tracing shell.TracingCollector
	Logger  shell.ContextualLogger
}

// Commands holds one handler per write operation.
type Commands struct {
	RegisterUser     shell.CoreCommandHandler[registeruser.Command]
	AddOrRestockBook shell.CoreCommandHandler[addorrestockbook.Command]
	UpdateBook       shell.CoreCommandHandler[updatebook.Command]
	RemoveBook       shell.CoreCommandHandler[removebook.Command]
	RequestCheckout  shell.CoreCommandHandler[requestcheckout.Command]
	ApproveCheckout  shell.CoreCommandHandler[approvecheckout.Command]
	DenyCheckout     shell.CoreCommandHandler[denycheckout.Command]
	CheckinBook      shell.CoreCommandHandler[checkinbook.Command]
	RequestAdmin     shell.CoreCommandHandler[requestadmin.Command]
	ApproveAdmin     shell.CoreCommandHandler[approveadmin.Command]
	DenyAdmin        shell.CoreCommandHandler[denyadmin.Command]
}

// Queries holds one handler per read operation.
type Queries struct {
	AuthenticateUser        shell.CoreQueryHandler[authenticateuser.Query, authenticateuser.Principal]
	BooksWithStatus         shell.CoreQueryHandler[bookswithstatus.Query, bookswithstatus.BooksWithStatus]
	SearchBooks             shell.CoreQueryHandler[searchbooks.Query, searchbooks.FoundBooks]
	BorrowingHistory        shell.CoreQueryHandler[borrowinghistory.Query, borrowinghistory.BorrowingHistory]
	PendingCheckoutRequests shell.CoreQueryHandler[pendingcheckoutrequests.Query, pendingcheckoutrequests.PendingCheckoutRequests]
	PendingAdminRequests    shell.CoreQueryHandler[pendingadminrequests.Query, pendingadminrequests.PendingAdminRequests]
}

// Handlers is the complete set of feature handlers the router dispatches to.
type Handlers struct {
	Commands Commands
	Queries  Queries
}

// NewHandlers builds every feature handler on libraryStore and wraps each one with the
// observable decorators.
func NewHandlers(
	libraryStore LibraryStore,
	policy core.Policy,
	obs Observability,
	registerOptions ...registeruser.Option,
) (Handlers, error) {
	var err error
	var h Handlers

	if h.Commands.RegisterUser, err = wrapCommand[registeruser.Command](
		registeruser.NewCommandHandler(libraryStore, registerOptions...), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.AddOrRestockBook, err = wrapCommand[addorrestockbook.Command](
		addorrestockbook.NewCommandHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.UpdateBook, err = wrapCommand[updatebook.Command](
		updatebook.NewCommandHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.RemoveBook, err = wrapCommand[removebook.Command](
		removebook.NewCommandHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.RequestCheckout, err = wrapCommand[requestcheckout.Command](
		requestcheckout.NewCommandHandler(libraryStore, policy), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.ApproveCheckout, err = wrapCommand[approvecheckout.Command](
		approvecheckout.NewCommandHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.DenyCheckout, err = wrapCommand[denycheckout.Command](
		denycheckout.NewCommandHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.CheckinBook, err = wrapCommand[checkinbook.Command](
		checkinbook.NewCommandHandler(libraryStore, policy), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.RequestAdmin, err = wrapCommand[requestadmin.Command](
		requestadmin.NewCommandHandler(libraryStore, policy), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.ApproveAdmin, err = wrapCommand[approveadmin.Command](
		approveadmin.NewCommandHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Commands.DenyAdmin, err = wrapCommand[denyadmin.Command](
		denyadmin.NewCommandHandler(libraryStore, policy), obs); err != nil {
		return Handlers{}, err
	}

	if h.Queries.AuthenticateUser, err = wrapQuery[authenticateuser.Query, authenticateuser.Principal](
		authenticateuser.NewQueryHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Queries.BooksWithStatus, err = wrapQuery[bookswithstatus.Query, bookswithstatus.BooksWithStatus](
		bookswithstatus.NewQueryHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Queries.SearchBooks, err = wrapQuery[searchbooks.Query, searchbooks.FoundBooks](
		searchbooks.NewQueryHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Queries.BorrowingHistory, err = wrapQuery[borrowinghistory.Query, borrowinghistory.BorrowingHistory](
		borrowinghistory.NewQueryHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Queries.PendingCheckoutRequests, err = wrapQuery[pendingcheckoutrequests.Query, pendingcheckoutrequests.PendingCheckoutRequests](
		pendingcheckoutrequests.NewQueryHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	if h.Queries.PendingAdminRequests, err = wrapQuery[pendingadminrequests.Query, pendingadminrequests.PendingAdminRequests](
		pendingadminrequests.NewQueryHandler(libraryStore), obs); err != nil {
		return Handlers{}, err
	}

	return h, nil
}

func wrapCommand[C shell.Command](coreHandler shell.CoreCommandHandler[C], obs Observability) (shell.CoreCommandHandler[C], error) {
	opts := make([]observable.CommandOption[C], 0, 3)

	if obs.Metrics != nil {
		opts = append(opts, observable.WithCommandMetrics[C](obs.Metrics))
	}

	if obs.Tracing != nil {
		opts = append(opts, observable.WithCommandTracing[C](obs.Tracing))
	}

	if obs.Logger != nil {
		opts = append(opts, observable.WithCommandContextualLogging[C](obs.Logger))
	}

	return observable.NewCommandWrapper(coreHandler, opts...)
}

func wrapQuery[Q shell.Query, R shell.QueryResult](
	coreHandler shell.CoreQueryHandler[Q, R],
	obs Observability,
) (shell.CoreQueryHandler[Q, R], error) {
	opts := make([]observable.QueryOption[Q, R], 0, 3)

	if obs.Metrics != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](obs.Metrics))
	}

	if obs.Tracing != nil {
		opts = append(opts, observable.WithQueryTracing[Q, R](obs.Tracing))
	}

	if obs.Logger != nil {
		opts = append(opts, observable.WithQueryContextualLogging[Q, R](obs.Logger))
	}

	return observable.NewQueryWrapper(coreHandler, opts...)
}
