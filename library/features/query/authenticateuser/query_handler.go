package authenticateuser

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/store"
)

const failureReasonInvalidCredentials = "invalid credentials"

// dummyHash is compared against when the user does not exist, so both failures take the same time.
const dummyHash = "$2b$10$abcdefghijklmnopqrstuu4T826PRnz0Hu6YlprUuxkZxOOj5Fw5S"

// Store defines the read model the QueryHandler depends on.
type Store interface {
	FindUserByUsername(ctx context.Context, username string) (store.User, error)
}

// QueryHandler checks credentials.
type QueryHandler struct {
	libraryStore Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(libraryStore Store) QueryHandler {
	return QueryHandler{libraryStore: libraryStore}
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Principal, error) {
	user, err := h.libraryStore.FindUserByUsername(ctx, query.Username)

	switch {
	case errors.Is(err, store.ErrRowNotFound):
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(query.Password))
		return Principal{}, core.Reject(core.ErrForbidden, failureReasonInvalidCredentials)

	case err != nil:
		return Principal{}, core.StorageFailure(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(query.Password)) != nil {
		return Principal{}, core.Reject(core.ErrForbidden, failureReasonInvalidCredentials)
	}

	return Principal{
		UserID:   user.ID.String(),
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, nil
}
