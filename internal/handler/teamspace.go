// internal/handler/teamspace.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/collabnest/teamspace/internal/domain"
	"github.com/collabnest/teamspace/internal/model"
	"github.com/collabnest/teamspace/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type TeamSpaceHandler struct {
	service *service.TeamSpaceService
}

func NewTeamSpaceHandler(service *service.TeamSpaceService) *TeamSpaceHandler {
	return &TeamSpaceHandler{service: service}
}

// CreateTeamSpaceRequest represents the request body for creating a team space
type CreateTeamSpaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *TeamSpaceHandler) CreateTeamSpace(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	var req CreateTeamSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	space, err := h.service.Create(r.Context(), userID, service.CreateTeamSpaceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, space)
}

func (h *TeamSpaceHandler) ListTeamSpaces(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	spaces, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, spaces)
}

func (h *TeamSpaceHandler) GetTeamSpace(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	spaceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team space ID")
		return
	}

	space, err := h.service.Get(r.Context(), userID, spaceID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, space)
}

func (h *TeamSpaceHandler) DeleteTeamSpace(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	spaceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team space ID")
		return
	}

	if err := h.service.Delete(r.Context(), userID, spaceID); err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// AddMemberRequest represents the request body for adding a member
type AddMemberRequest struct {
	UserID uuid.UUID           `json:"user_id"`
	Role   model.TeamSpaceRole `json:"role"`
}

func (h *TeamSpaceHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	spaceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team space ID")
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	member, err := h.service.AddMember(r.Context(), userID, service.AddMemberInput{
		TeamSpaceID: spaceID,
		UserID:      req.UserID,
		Role:        req.Role,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, member)
}

func (h *TeamSpaceHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	spaceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team space ID")
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.RemoveMember(r.Context(), userID, spaceID, targetID); err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// UpdateMemberRoleRequest represents the request body for a role change
type UpdateMemberRoleRequest struct {
	NewRole model.TeamSpaceRole `json:"new_role"`
}

func (h *TeamSpaceHandler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	spaceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team space ID")
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdateMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	member, err := h.service.UpdateMemberRole(r.Context(), userID, service.UpdateMemberRoleInput{
		TeamSpaceID: spaceID,
		UserID:      targetID,
		NewRole:     req.NewRole,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, member)
}

func (h *TeamSpaceHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Team space operation error", "error", err, "requestID", chmw.GetReqID(r.Context()))

	switch {
	case errors.Is(err, domain.ErrTeamSpaceNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMemberNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotMember),
		errors.Is(err, domain.ErrNotAdmin),
		errors.Is(err, domain.ErrNotOwner):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrTeamSpaceNameTaken),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrOwnerProtected):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRole):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
