// internal/repository/folder.go
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

type FolderRepositoryIface interface {
	Create(ctx context.Context, folder *model.Folder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Folder, error)
	FindByTeamSpace(ctx context.Context, teamSpaceID uuid.UUID) ([]model.Folder, error)
}

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) Create(ctx context.Context, folder *model.Folder) error {
	if err := r.db.WithContext(ctx).Create(folder).Error; err != nil {
		return fmt.Errorf("creating folder: %w", err)
	}
	return nil
}

func (r *FolderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Folder, error) {
	var folder model.Folder
	if err := r.db.WithContext(ctx).First(&folder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFolderNotFound
		}
		return nil, fmt.Errorf("finding folder: %w", err)
	}
	return &folder, nil
}

func (r *FolderRepository) FindByTeamSpace(ctx context.Context, teamSpaceID uuid.UUID) ([]model.Folder, error) {
	var folders []model.Folder
	if err := r.db.WithContext(ctx).Where("team_space_id = ?", teamSpaceID).Find(&folders).Error; err != nil {
		return nil, fmt.Errorf("finding folders for team space: %w", err)
	}
	return folders, nil
}
