package httpapi

import (
	"net/http"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/checkinbook"
	"github.com/Chalhotra/LibMgmt/library/features/command/requestcheckout"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

func (s *server) requestCheckout(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	command := requestcheckout.BuildCommand(s.newID(), principal(r).UserID, bookID, s.now())

	result, err := s.commands.RequestCheckout.Handle(r.Context(), command)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	requested, _ := shell.FirstEventOf[core.CheckoutRequested](result)

	view := CheckoutView{
		CheckoutID:   requested.CheckoutID,
		UserID:       requested.UserID,
		BookID:       requested.BookID,
		Status:       store.CheckoutStatusPending,
		CheckoutDate: &requested.CheckoutDate,
		DueDate:      &requested.DueDate,
		BookQuantity: &requested.BookQuantity,
	}

	if _, approved := shell.FirstEventOf[core.CheckoutApproved](result); approved {
		view.Status = store.CheckoutStatusApproved
	}

	writeJSON(w, http.StatusCreated, view)
}

func (s *server) checkinBook(w http.ResponseWriter, r *http.Request) {
	checkoutID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.commands.CheckinBook.Handle(r.Context(), checkinbook.BuildCommand(checkoutID, principal(r).UserID, s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	checkedIn, _ := shell.FirstEventOf[core.BookCheckedIn](result)

	writeJSON(w, http.StatusOK, CheckoutView{
		CheckoutID:   checkedIn.CheckoutID,
		UserID:       checkedIn.UserID,
		BookID:       checkedIn.BookID,
		Status:       CheckoutStatusReturned,
		DueDate:      &checkedIn.DueDate,
		ReturnDate:   &checkedIn.ReturnDate,
		Fine:         checkedIn.Fine,
		BookQuantity: &checkedIn.BookQuantity,
	})
}
