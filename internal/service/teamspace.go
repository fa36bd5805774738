// internal/service/teamspace.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/collabnest/teamspace/internal/config"
	"github.com/collabnest/teamspace/internal/domain"
	"github.com/collabnest/teamspace/internal/email"
	"github.com/collabnest/teamspace/internal/email/mailer"
	"github.com/collabnest/teamspace/internal/model"
	"github.com/collabnest/teamspace/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TeamSpaceService struct {
	spaceRepo    repository.TeamSpaceRepositoryIface
	memberRepo   repository.TeamSpaceMemberRepositoryIface
	userRepo     repository.UserRepositoryIface
	emailService *email.Service
	config       *config.Config
	validate     *validator.Validate
}

func NewTeamSpaceService(
	spaceRepo repository.TeamSpaceRepositoryIface,
	memberRepo repository.TeamSpaceMemberRepositoryIface,
	userRepo repository.UserRepositoryIface,
	emailService *email.Service,
	config *config.Config,
) *TeamSpaceService {
	return &TeamSpaceService{
		spaceRepo:    spaceRepo,
		memberRepo:   memberRepo,
		userRepo:     userRepo,
		emailService: emailService,
		config:       config,
		validate:     validator.New(),
	}
}

type CreateTeamSpaceInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Create creates a team space with the requesting user as its owner. The
// space and the founding membership are persisted in one write.
func (s *TeamSpaceService) Create(ctx context.Context, requesterID uuid.UUID, input CreateTeamSpaceInput) (*model.TeamSpace, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if _, err := s.userRepo.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	taken, err := s.spaceRepo.ExistsByNameAndStatus(ctx, input.Name, model.TeamSpaceActive)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrTeamSpaceNameTaken
	}

	space := &model.TeamSpace{
		Name:        input.Name,
		Description: input.Description,
		Status:      model.TeamSpaceActive,
	}
	if err := space.AddMember(model.TeamSpaceMember{
		UserID: requesterID,
		Role:   model.RoleOwner,
	}); err != nil {
		return nil, err
	}

	if err := s.spaceRepo.Create(ctx, space); err != nil {
		return nil, err
	}

	return space, nil
}

// Get returns a team space with its members. Only members can see it.
func (s *TeamSpaceService) Get(ctx context.Context, requesterID, spaceID uuid.UUID) (*model.TeamSpace, error) {
	space, err := s.spaceRepo.FindByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	if !space.IsMember(requesterID) {
		return nil, domain.ErrNotMember
	}

	return space, nil
}

// ListForUser returns all team spaces the user belongs to.
func (s *TeamSpaceService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.TeamSpace, error) {
	return s.spaceRepo.FindByMember(ctx, userID)
}

// Delete removes a team space and its memberships. Owner only.
func (s *TeamSpaceService) Delete(ctx context.Context, requesterID, spaceID uuid.UUID) error {
	space, err := s.spaceRepo.FindByID(ctx, spaceID)
	if err != nil {
		return err
	}

	if !space.IsOwner(requesterID) {
		return domain.ErrNotOwner
	}

	return s.spaceRepo.Delete(ctx, spaceID)
}

type AddMemberInput struct {
	TeamSpaceID uuid.UUID           `json:"team_space_id" validate:"required"`
	UserID      uuid.UUID           `json:"user_id" validate:"required"`
	Role        model.TeamSpaceRole `json:"role" validate:"required"`
}

// AddMember adds a user to a team space. The requester must hold the admin
// role or above; the candidate must exist and not already belong.
func (s *TeamSpaceService) AddMember(ctx context.Context, requesterID uuid.UUID, input AddMemberInput) (*model.TeamSpaceMember, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if !input.Role.Valid() || input.Role == model.RoleOwner {
		return nil, domain.ErrInvalidRole
	}

	space, err := s.spaceRepo.FindByID(ctx, input.TeamSpaceID)
	if err != nil {
		return nil, err
	}

	if !space.IsAdmin(requesterID) {
		return nil, domain.ErrNotAdmin
	}

	candidate, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.memberRepo.FindByTeamSpaceAndUser(ctx, input.TeamSpaceID, input.UserID); err == nil {
		return nil, domain.ErrAlreadyMember
	} else if !errors.Is(err, domain.ErrMemberNotFound) {
		return nil, err
	}

	member := &model.TeamSpaceMember{
		TeamSpaceID: input.TeamSpaceID,
		UserID:      input.UserID,
		Role:        input.Role,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.notifyAdded(ctx, space, candidate, requesterID, input.Role)

	return member, nil
}

// RemoveMember removes a user from a team space. The requester must hold the
// admin role or above; the owner cannot be removed.
func (s *TeamSpaceService) RemoveMember(ctx context.Context, requesterID, spaceID, targetUserID uuid.UUID) error {
	space, err := s.spaceRepo.FindByID(ctx, spaceID)
	if err != nil {
		return err
	}

	if !space.IsAdmin(requesterID) {
		return domain.ErrNotAdmin
	}

	// The aggregate enforces membership and owner protection.
	if err := space.RemoveMember(targetUserID); err != nil {
		return err
	}

	return s.memberRepo.DeleteByTeamSpaceAndUser(ctx, spaceID, targetUserID)
}

type UpdateMemberRoleInput struct {
	TeamSpaceID uuid.UUID           `json:"team_space_id" validate:"required"`
	UserID      uuid.UUID           `json:"user_id" validate:"required"`
	NewRole     model.TeamSpaceRole `json:"new_role" validate:"required"`
}

// UpdateMemberRole changes a member's role. Only the owner may do this, and
// the owner's own role is immutable.
func (s *TeamSpaceService) UpdateMemberRole(ctx context.Context, requesterID uuid.UUID, input UpdateMemberRoleInput) (*model.TeamSpaceMember, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	space, err := s.spaceRepo.FindByID(ctx, input.TeamSpaceID)
	if err != nil {
		return nil, err
	}

	if !space.IsOwner(requesterID) {
		return nil, domain.ErrNotOwner
	}

	if err := space.UpdateMemberRole(input.UserID, input.NewRole); err != nil {
		return nil, err
	}

	member := space.MemberByUserID(input.UserID)
	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	// Re-read the row to return persisted state. Absence here means the
	// member disappeared underneath us; that is a defect, not user error.
	updated, err := s.memberRepo.FindByTeamSpaceAndUser(ctx, input.TeamSpaceID, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return nil, domain.ErrMemberVanished
		}
		return nil, err
	}

	return updated, nil
}

// notifyAdded sends the invitation email. Failures are logged and never fail
// the membership write.
func (s *TeamSpaceService) notifyAdded(ctx context.Context, space *model.TeamSpace, candidate *model.User, inviterID uuid.UUID, role model.TeamSpaceRole) {
	if s.emailService == nil {
		return
	}

	inviterName := "A team space admin"
	if inviter, err := s.userRepo.FindByID(ctx, inviterID); err == nil {
		inviterName = inviter.FirstName + " " + inviter.LastName
	}

	err := mailer.SendTeamSpaceInvitation(s.emailService, candidate.Email, mailer.InvitationTemplateData{
		FirstName:     candidate.FirstName,
		TeamSpaceName: space.Name,
		InviterName:   inviterName,
		Role:          string(role),
		TeamSpaceLink: fmt.Sprintf("%s/team-spaces/%s", s.config.BaseURL, space.ID),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to send team space invitation",
			"error", err, "teamSpaceID", space.ID, "userID", candidate.ID)
	}
}
