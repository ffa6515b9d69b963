package httpapi

import (
	"net/http"
	"strconv"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/addorrestockbook"
	"github.com/Chalhotra/LibMgmt/library/features/command/removebook"
	"github.com/Chalhotra/LibMgmt/library/features/command/updatebook"
	"github.com/Chalhotra/LibMgmt/library/features/query/bookswithstatus"
	"github.com/Chalhotra/LibMgmt/library/features/query/searchbooks"
	"github.com/Chalhotra/LibMgmt/library/shell"
)

type bookRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Quantity int    `json:"quantity"`
}

func (s *server) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.queries.BooksWithStatus.Handle(r.Context(), bookswithstatus.BuildQuery())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, books)
}

func (s *server) searchBooks(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	onlyAvailable := false
	if raw := params.Get("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, r, core.Reject(core.ErrInvalid, reasonMalformedFlag))
			return
		}

		onlyAvailable = parsed
	}

	found, err := s.queries.SearchBooks.Handle(r.Context(), searchbooks.BuildQuery(params.Get("q"), onlyAvailable))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, found)
}

// addOrRestockBook answers 201 for a new title and 200 when an existing title was restocked.
func (s *server) addOrRestockBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	command := addorrestockbook.BuildCommand(principal(r).UserID, s.newID(), req.Title, req.Author, req.Quantity, s.now())

	result, err := s.commands.AddOrRestockBook.Handle(r.Context(), command)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if restocked, ok := shell.FirstEventOf[core.BookRestocked](result); ok {
		writeJSON(w, http.StatusOK, BookView{
			BookID:   restocked.BookID,
			Title:    restocked.Title,
			Author:   restocked.Author,
			Quantity: restocked.Quantity,
		})

		return
	}

	added, _ := shell.FirstEventOf[core.BookAddedToInventory](result)

	writeJSON(w, http.StatusCreated, BookView{
		BookID:   added.BookID,
		Title:    added.Title,
		Author:   added.Author,
		Quantity: added.Quantity,
	})
}

func (s *server) updateBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req bookRequest
	if err = decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	command := updatebook.BuildCommand(principal(r).UserID, bookID, req.Title, req.Author, req.Quantity, s.now())

	result, err := s.commands.UpdateBook.Handle(r.Context(), command)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view := BookView{
		BookID:   command.BookID.String(),
		Title:    command.Title,
		Author:   command.Author,
		Quantity: command.Quantity,
	}

	if updated, ok := shell.FirstEventOf[core.BookUpdated](result); ok {
		view = BookView{BookID: updated.BookID, Title: updated.Title, Author: updated.Author, Quantity: updated.Quantity}
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *server) removeBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err = s.commands.RemoveBook.Handle(r.Context(), removebook.BuildCommand(principal(r).UserID, bookID, s.now())); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
