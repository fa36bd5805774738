// internal/repository/teamspace.go
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

type TeamSpaceRepositoryIface interface {
	// Create persists the team space together with its initial members in
	// one transaction.
	Create(ctx context.Context, space *model.TeamSpace) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TeamSpace, error)
	FindByMember(ctx context.Context, userID uuid.UUID) ([]model.TeamSpace, error)
	ExistsByNameAndStatus(ctx context.Context, name string, status model.TeamSpaceStatus) (bool, error)
	Update(ctx context.Context, space *model.TeamSpace) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TeamSpaceRepository struct {
	db *gorm.DB
}

func NewTeamSpaceRepository(db *gorm.DB) *TeamSpaceRepository {
	return &TeamSpaceRepository{db: db}
}

func (r *TeamSpaceRepository) Create(ctx context.Context, space *model.TeamSpace) error {
	// GORM writes the space and its Members association in a single
	// transaction, so the founding owner row never lands without the space.
	if err := r.db.WithContext(ctx).Create(space).Error; err != nil {
		return fmt.Errorf("creating team space: %w", err)
	}
	return nil
}

func (r *TeamSpaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TeamSpace, error) {
	var space model.TeamSpace
	if err := r.db.WithContext(ctx).Preload("Members").First(&space, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamSpaceNotFound
		}
		return nil, fmt.Errorf("finding team space: %w", err)
	}
	return &space, nil
}

func (r *TeamSpaceRepository) FindByMember(ctx context.Context, userID uuid.UUID) ([]model.TeamSpace, error) {
	var spaces []model.TeamSpace
	if err := r.db.WithContext(ctx).
		Joins("JOIN team_space_members ON team_spaces.id = team_space_members.team_space_id").
		Where("team_space_members.user_id = ?", userID).
		Find(&spaces).Error; err != nil {
		return nil, fmt.Errorf("finding team spaces by member: %w", err)
	}
	return spaces, nil
}

func (r *TeamSpaceRepository) ExistsByNameAndStatus(ctx context.Context, name string, status model.TeamSpaceStatus) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.TeamSpace{}).
		Where("name = ? AND status = ?", name, status).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking team space name: %w", err)
	}
	return count > 0, nil
}

func (r *TeamSpaceRepository) Update(ctx context.Context, space *model.TeamSpace) error {
	if err := r.db.WithContext(ctx).Omit("Members", "Folders").Save(space).Error; err != nil {
		return fmt.Errorf("updating team space: %w", err)
	}
	return nil
}

func (r *TeamSpaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete memberships first; the space owns them.
		if err := tx.Where("team_space_id = ?", id).Delete(&model.TeamSpaceMember{}).Error; err != nil {
			return fmt.Errorf("deleting team space members: %w", err)
		}

		if err := tx.Delete(&model.TeamSpace{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting team space: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
