// internal/repository/teamspace_member.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/collabnest/teamspace/internal/domain"
	"github.com/collabnest/teamspace/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamSpaceMemberRepositoryIface interface {
	Create(ctx context.Context, member *model.TeamSpaceMember) error
	Save(ctx context.Context, member *model.TeamSpaceMember) error
	FindByTeamSpaceAndUser(ctx context.Context, teamSpaceID, userID uuid.UUID) (*model.TeamSpaceMember, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.TeamSpaceMember, error)
	DeleteByTeamSpaceAndUser(ctx context.Context, teamSpaceID, userID uuid.UUID) error
}

type TeamSpaceMemberRepository struct {
	db *gorm.DB
}

func NewTeamSpaceMemberRepository(db *gorm.DB) *TeamSpaceMemberRepository {
	return &TeamSpaceMemberRepository{db: db}
}

func (r *TeamSpaceMemberRepository) Create(ctx context.Context, member *model.TeamSpaceMember) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		// The unique index on (team_space_id, user_id) backstops the
		// in-memory duplicate check under concurrent adds.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("creating team space member: %w", err)
	}
	return nil
}

func (r *TeamSpaceMemberRepository) Save(ctx context.Context, member *model.TeamSpaceMember) error {
	if err := r.db.WithContext(ctx).Save(member).Error; err != nil {
		return fmt.Errorf("saving team space member: %w", err)
	}
	return nil
}

func (r *TeamSpaceMemberRepository) FindByTeamSpaceAndUser(ctx context.Context, teamSpaceID, userID uuid.UUID) (*model.TeamSpaceMember, error) {
	var member model.TeamSpaceMember
	err := r.db.WithContext(ctx).
		Where("team_space_id = ? AND user_id = ?", teamSpaceID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("finding team space member: %w", err)
	}
	return &member, nil
}

func (r *TeamSpaceMemberRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.TeamSpaceMember, error) {
	var members []model.TeamSpaceMember
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("finding memberships for user: %w", err)
	}
	return members, nil
}

func (r *TeamSpaceMemberRepository) DeleteByTeamSpaceAndUser(ctx context.Context, teamSpaceID, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("team_space_id = ? AND user_id = ?", teamSpaceID, userID).
		Delete(&model.TeamSpaceMember{}).Error
	if err != nil {
		return fmt.Errorf("deleting team space member: %w", err)
	}
	return nil
}
