package httpapi

import (
	"net/http"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/approveadmin"
	"github.com/Chalhotra/LibMgmt/library/features/command/approvecheckout"
	"github.com/Chalhotra/LibMgmt/library/features/command/denyadmin"
	"github.com/Chalhotra/LibMgmt/library/features/command/denycheckout"
	"github.com/Chalhotra/LibMgmt/library/features/query/pendingadminrequests"
	"github.com/Chalhotra/LibMgmt/library/features/query/pendingcheckoutrequests"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

func (s *server) pendingCheckoutRequests(w http.ResponseWriter, r *http.Request) {
	query := pendingcheckoutrequests.BuildQuery(principal(r).IsAdmin)

	requests, err := s.queries.PendingCheckoutRequests.Handle(r.Context(), query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

func (s *server) approveCheckout(w http.ResponseWriter, r *http.Request) {
	checkoutID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	command := approvecheckout.BuildCommand(principal(r).UserID, checkoutID, s.now())

	result, err := s.commands.ApproveCheckout.Handle(r.Context(), command)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	approved, _ := shell.FirstEventOf[core.CheckoutApproved](result)

	writeJSON(w, http.StatusOK, CheckoutView{
		CheckoutID: approved.CheckoutID,
		UserID:     approved.UserID,
		BookID:     approved.BookID,
		Status:     store.CheckoutStatusApproved,
	})
}

func (s *server) denyCheckout(w http.ResponseWriter, r *http.Request) {
	checkoutID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	command := denycheckout.BuildCommand(principal(r).UserID, checkoutID, s.now())

	result, err := s.commands.DenyCheckout.Handle(r.Context(), command)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	denied, _ := shell.FirstEventOf[core.CheckoutDenied](result)

	writeJSON(w, http.StatusOK, CheckoutView{
		CheckoutID:   denied.CheckoutID,
		UserID:       denied.UserID,
		BookID:       denied.BookID,
		Status:       store.CheckoutStatusDenied,
		BookQuantity: &denied.BookQuantity,
	})
}

func (s *server) pendingAdminRequests(w http.ResponseWriter, r *http.Request) {
	query := pendingadminrequests.BuildQuery(principal(r).IsAdmin)

	requests, err := s.queries.PendingAdminRequests.Handle(r.Context(), query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

func (s *server) approveAdmin(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	command := approveadmin.BuildCommand(principal(r).UserID, userID, s.now())

	if _, err = s.commands.ApproveAdmin.Handle(r.Context(), command); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UserView{
		UserID:             userID.String(),
		IsAdmin:            true,
		AdminRequestStatus: store.AdminRequestApproved,
	})
}

func (s *server) denyAdmin(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.commands.DenyAdmin.Handle(r.Context(), denyadmin.BuildCommand(principal(r).UserID, userID, s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	denied, _ := shell.FirstEventOf[core.AdminDenied](result)

	writeJSON(w, http.StatusOK, UserView{
		UserID:             userID.String(),
		IsAdmin:            denied.RemainsAdmin,
		AdminRequestStatus: store.AdminRequestDenied,
	})
}
