package httpapi

import (
	"errors"
	"net/http"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/httpapi/auth"
)

const (
	kindUnauthenticated = "Unauthenticated"

	reasonMalformedBody    = "malformed request body"
	reasonMalformedID      = "malformed id in path"
	reasonMalformedFlag    = "available must be true or false"
	reasonRouteNotFound    = "no such route"
	reasonMethodNotAllowed = "method not allowed"
	reasonStorageHidden    = "storage error"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var statusByKind = map[core.Kind]int{
	core.KindNotFound:    http.StatusNotFound,
	core.KindForbidden:   http.StatusForbidden,
	core.KindConflict:    http.StatusConflict,
	core.KindUnavailable: http.StatusUnprocessableEntity,
	core.KindInvalid:     http.StatusBadRequest,
	core.KindStorage:     http.StatusInternalServerError,
}

// StatusFor returns the HTTP status code for an error kind.
func StatusFor(kind core.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// writeError maps err to its status and body. Storage details are logged and only shown to admins.
func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := core.KindOf(err)
	message := core.Reason(err)

	if kind == core.KindStorage {
		s.logError(r, err)

		message = reasonStorageHidden
		if caller, ok := auth.PrincipalFrom(r.Context()); ok && caller.IsAdmin {
			message = err.Error()
		}
	}

	writeJSON(w, StatusFor(kind), ErrorResponse{Kind: string(kind), Message: message})
}

func writeUnauthenticated(w http.ResponseWriter, err error) {
	message := auth.ErrInvalidToken.Error()
	if errors.Is(err, auth.ErrMissingToken) {
		message = auth.ErrMissingToken.Error()
	}

	w.Header().Set("WWW-Authenticate", `Bearer realm="libmgmt"`)
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Kind: kindUnauthenticated, Message: message})
}
