// internal/repository/document.go
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

type DocumentRepositoryIface interface {
	Create(ctx context.Context, doc *model.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	FindByFolder(ctx context.Context, folderID uuid.UUID) ([]model.Document, error)
}

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("creating document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var doc model.Document
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("finding document: %w", err)
	}
	return &doc, nil
}

func (r *DocumentRepository) FindByFolder(ctx context.Context, folderID uuid.UUID) ([]model.Document, error) {
	var docs []model.Document
	if err := r.db.WithContext(ctx).Where("folder_id = ?", folderID).Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("finding documents in folder: %w", err)
	}
	return docs, nil
}
