// internal/model/folder.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Folder struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	// TeamSpaceID is nil for personal folders, which are not team-scoped.
	TeamSpaceID *uuid.UUID `gorm:"type:uuid;index" json:"team_space_id,omitempty"`
	// ParentID, when set, must reference a folder in the same team space.
	ParentID      *uuid.UUID `gorm:"type:uuid" json:"parent_id,omitempty"`
	Collaborative bool       `gorm:"not null;default:false" json:"collaborative"`
	CreatedByID   uuid.UUID  `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Parent *Folder `gorm:"foreignKey:ParentID" json:"-"`
}
