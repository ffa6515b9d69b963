package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/registeruser"
	"github.com/Chalhotra/LibMgmt/library/features/command/requestadmin"
	"github.com/Chalhotra/LibMgmt/library/features/query/authenticateuser"
	"github.com/Chalhotra/LibMgmt/library/features/query/borrowinghistory"
	"github.com/Chalhotra/LibMgmt/library/httpapi/auth"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *server) registerUser(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.commands.RegisterUser.Handle(
		r.Context(),
		registeruser.BuildCommand(s.newID(), req.Username, req.Password, s.now()),
	)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	registered, _ := shell.FirstEventOf[core.UserRegistered](result)

	writeJSON(w, http.StatusCreated, UserView{
		UserID:             registered.UserID,
		Username:           registered.Username,
		AdminRequestStatus: store.AdminRequestNone,
	})
}

func (s *server) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := s.queries.AuthenticateUser.Handle(r.Context(), authenticateuser.BuildQuery(req.Username, req.Password))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	userID, err := uuid.Parse(p.UserID)
	if err != nil {
		s.writeError(w, r, core.StorageFailure(err))
		return
	}

	token, expiresAt, err := s.issuer.Issue(auth.Principal{UserID: userID, Username: p.Username, IsAdmin: p.IsAdmin})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenView{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    p.UserID,
		Username:  p.Username,
		IsAdmin:   p.IsAdmin,
	})
}

// currentUser echoes the verified principal. The admin flag is the one the token was issued with.
func (s *server) currentUser(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	writeJSON(w, http.StatusOK, UserView{
		UserID:   p.UserID.String(),
		Username: p.Username,
		IsAdmin:  p.IsAdmin,
	})
}

func (s *server) borrowingHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.queries.BorrowingHistory.Handle(r.Context(), borrowinghistory.BuildQuery(principal(r).UserID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

func (s *server) requestAdmin(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	result, err := s.commands.RequestAdmin.Handle(r.Context(), requestadmin.BuildCommand(p.UserID, s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view := UserView{
		UserID:             p.UserID.String(),
		Username:           p.Username,
		AdminRequestStatus: store.AdminRequestPending,
	}

	if _, approved := shell.FirstEventOf[core.AdminApproved](result); approved {
		view.IsAdmin = true
		view.AdminRequestStatus = store.AdminRequestApproved
	}

	writeJSON(w, http.StatusAccepted, view)
}
