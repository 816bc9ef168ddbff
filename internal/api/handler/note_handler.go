package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/app/service"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common"

	"github.com/go-chi/chi/v5"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listNotes)            // GET /notes
	r.Get("/{noteSlug}", h.getNote)    // GET /notes/broken-screen
	r.Post("/", h.createNote)          // POST /notes
	r.Patch("/", h.updateNote)         // PATCH /notes
	r.Delete("/", h.deleteNote)        // DELETE /notes
}

func (h *NoteHandler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) getNote(w http.ResponseWriter, r *http.Request) {
	noteSlug := chi.URLParam(r, "noteSlug")

	note, err := h.noteService.GetBySlug(r.Context(), noteSlug)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) createNote(w http.ResponseWriter, r *http.Request) {
	var req service.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	note, err := h.noteService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusCreated, fmt.Sprintf("New note %s created", note.Title))
}

func (h *NoteHandler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	note, err := h.noteService.Update(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, fmt.Sprintf("Updated note %s", note.Title))
}

func (h *NoteHandler) deleteNote(w http.ResponseWriter, r *http.Request) {
	var req service.DeleteNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	note, err := h.noteService.Delete(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, fmt.Sprintf("Note %s with id %s deleted", note.Title, note.ID))
}
