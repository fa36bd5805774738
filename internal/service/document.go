// internal/service/document.go
package service

import (
	"context"
	"fmt"

	"github.com/collabnest/teamspace/internal/domain"
	"github.com/collabnest/teamspace/internal/model"
	"github.com/collabnest/teamspace/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type DocumentService struct {
	spaceRepo  repository.TeamSpaceRepositoryIface
	folderRepo repository.FolderRepositoryIface
	docRepo    repository.DocumentRepositoryIface
	validate   *validator.Validate
}

func NewDocumentService(
	spaceRepo repository.TeamSpaceRepositoryIface,
	folderRepo repository.FolderRepositoryIface,
	docRepo repository.DocumentRepositoryIface,
) *DocumentService {
	return &DocumentService{
		spaceRepo:  spaceRepo,
		folderRepo: folderRepo,
		docRepo:    docRepo,
		validate:   validator.New(),
	}
}

type CreateCollaborativeFolderInput struct {
	TeamSpaceID    uuid.UUID  `json:"team_space_id" validate:"required"`
	Name           string     `json:"name" validate:"required"`
	Description    string     `json:"description"`
	ParentFolderID *uuid.UUID `json:"parent_folder_id,omitempty"`
}

// CreateCollaborativeFolder creates a folder scoped to a team space. Any
// member may create one; a parent folder must live in the same space.
func (s *DocumentService) CreateCollaborativeFolder(ctx context.Context, requesterID uuid.UUID, input CreateCollaborativeFolderInput) (*model.Folder, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	space, err := s.spaceRepo.FindByID(ctx, input.TeamSpaceID)
	if err != nil {
		return nil, err
	}

	if !space.IsMember(requesterID) {
		return nil, domain.ErrNotMember
	}

	if input.ParentFolderID != nil {
		parent, err := s.folderRepo.FindByID(ctx, *input.ParentFolderID)
		if err != nil {
			return nil, err
		}
		if parent.TeamSpaceID == nil || *parent.TeamSpaceID != space.ID {
			return nil, domain.ErrFolderNotInTeamSpace
		}
	}

	folder := &model.Folder{
		Name:          input.Name,
		Description:   input.Description,
		TeamSpaceID:   &space.ID,
		ParentID:      input.ParentFolderID,
		Collaborative: true,
		CreatedByID:   requesterID,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

type ShareDocumentInput struct {
	DocumentID     uuid.UUID `json:"document_id" validate:"required"`
	TeamSpaceID    uuid.UUID `json:"team_space_id" validate:"required"`
	TargetFolderID uuid.UUID `json:"target_folder_id" validate:"required"`
}

// ShareDocument copies a document into a team space folder. The copy is a new
// record with its own lifecycle; it starts at the initial version, carries the
// shared status, and points back at the source document.
func (s *DocumentService) ShareDocument(ctx context.Context, requesterID uuid.UUID, input ShareDocumentInput) (*model.Document, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	source, err := s.docRepo.FindByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}

	space, err := s.spaceRepo.FindByID(ctx, input.TeamSpaceID)
	if err != nil {
		return nil, err
	}

	folder, err := s.folderRepo.FindByID(ctx, input.TargetFolderID)
	if err != nil {
		return nil, err
	}

	if !space.IsMember(requesterID) {
		return nil, domain.ErrNotMember
	}

	if folder.TeamSpaceID == nil || *folder.TeamSpaceID != space.ID {
		return nil, domain.ErrFolderNotInTeamSpace
	}

	shared := &model.Document{
		Name:             source.Name,
		Description:      source.Description,
		Version:          model.InitialSharedVersion,
		FileType:         source.FileType,
		FileSize:         source.FileSize,
		FilePath:         source.FilePath,
		Status:           model.DocumentShared,
		FolderID:         &folder.ID,
		OriginDocumentID: &source.ID,
		OwnerID:          requesterID,
		Tags:             source.Tags.Clone(),
		Metadata:         source.Metadata.Clone(),
	}

	if err := s.docRepo.Create(ctx, shared); err != nil {
		return nil, err
	}

	return shared, nil
}

type CreateDocumentInput struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	FileType    string            `json:"file_type"`
	FileSize    int64             `json:"file_size"`
	FilePath    string            `json:"file_path"`
	FolderID    *uuid.UUID        `json:"folder_id,omitempty"`
	Tags        []string          `json:"tags"`
	Metadata    map[string]string `json:"metadata"`
}

// CreateDocument stores a new document record. Uploads into a collaborative
// folder are restricted to members of the folder's team space.
func (s *DocumentService) CreateDocument(ctx context.Context, requesterID uuid.UUID, input CreateDocumentInput) (*model.Document, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if input.FolderID != nil {
		folder, err := s.folderRepo.FindByID(ctx, *input.FolderID)
		if err != nil {
			return nil, err
		}

		if folder.Collaborative && folder.TeamSpaceID != nil {
			space, err := s.spaceRepo.FindByID(ctx, *folder.TeamSpaceID)
			if err != nil {
				return nil, err
			}
			if !space.IsMember(requesterID) {
				return nil, domain.ErrNotMember
			}
		}
	}

	doc := &model.Document{
		Name:        input.Name,
		Description: input.Description,
		Version:     model.InitialSharedVersion,
		FileType:    input.FileType,
		FileSize:    input.FileSize,
		FilePath:    input.FilePath,
		Status:      model.DocumentActive,
		FolderID:    input.FolderID,
		OwnerID:     requesterID,
		Tags:        input.Tags,
		Metadata:    input.Metadata,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}
