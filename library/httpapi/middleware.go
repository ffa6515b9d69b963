package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/httpapi/auth"
	"github.com/Chalhotra/LibMgmt/library/shell"
)

const (
	headerRequestID     = "X-Request-ID"
	headerAuthorization = "Authorization"

	logMsgRequestFailed = "http request failed"

	logAttrMethod = "method"
	logAttrPath   = "path"
	logAttrError  = "error"
)

// correlate takes the request id from X-Request-ID, or creates one, and stores it as the
// correlation id of every event the request produces.
func (s *server) correlate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID, err := uuid.Parse(r.Header.Get(headerRequestID))
		if err != nil {
			correlationID = uuid.New()
		}

		w.Header().Set(headerRequestID, correlationID.String())
		next.ServeHTTP(w, r.WithContext(shell.WithCorrelationID(r.Context(), correlationID)))
	})
}

func (s *server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r.Header.Get(headerAuthorization))
		if err != nil {
			writeUnauthenticated(w, err)
			return
		}

		p, err := s.issuer.Verify(token)
		if err != nil {
			writeUnauthenticated(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
	})
}

func (s *server) logError(r *http.Request, err error) {
	if s.logger == nil {
		return
	}

	s.logger.ErrorContext(r.Context(), logMsgRequestFailed,
		logAttrMethod, r.Method,
		logAttrPath, r.URL.Path,
		logAttrError, err.Error(),
	)
}
