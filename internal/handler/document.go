// internal/handler/document.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/collabnest/teamspace/internal/domain"
	"github.com/collabnest/teamspace/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type DocumentHandler struct {
	service *service.DocumentService
}

func NewDocumentHandler(service *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) CreateCollaborativeFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	var input service.CreateCollaborativeFolderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	folder, err := h.service.CreateCollaborativeFolder(r.Context(), userID, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, folder)
}

func (h *DocumentHandler) ShareDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	var input service.ShareDocumentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	doc, err := h.service.ShareDocument(r.Context(), userID, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	var input service.CreateDocumentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	doc, err := h.service.CreateDocument(r.Context(), userID, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Document operation error", "error", err, "requestID", chmw.GetReqID(r.Context()))

	switch {
	case errors.Is(err, domain.ErrTeamSpaceNotFound),
		errors.Is(err, domain.ErrFolderNotFound),
		errors.Is(err, domain.ErrDocumentNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotMember):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrFolderNotInTeamSpace),
		errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
