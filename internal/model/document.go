// internal/model/document.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentActive DocumentStatus = "active"
	DocumentShared DocumentStatus = "shared"
)

// InitialSharedVersion is the version assigned to a document when it is
// shared into a team space; the copy starts its own version history.
const InitialSharedVersion = "1.0"

type Document struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Version     string         `gorm:"type:text;not null;default:'1.0'" json:"version"`
	FileType    string         `gorm:"type:text" json:"file_type"`
	FileSize    int64          `json:"file_size"`
	FilePath    string         `gorm:"type:text" json:"file_path"`
	Status      DocumentStatus `gorm:"type:document_status;not null;default:'active'" json:"status"`
	FolderID    *uuid.UUID     `gorm:"type:uuid;index" json:"folder_id,omitempty"`
	// OriginDocumentID links a shared copy back to the document it was
	// derived from. The original keeps its own independent lifecycle.
	OriginDocumentID *uuid.UUID `gorm:"type:uuid" json:"origin_document_id,omitempty"`
	OwnerID          uuid.UUID  `gorm:"type:uuid;not null" json:"owner_id"`
	Tags             Tags       `gorm:"type:text[];not null;default:'{}'" json:"tags"`
	Metadata         Metadata   `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Tags is a custom type that implements the sql.Scanner and driver.Valuer interfaces
type Tags []string

// Scan implements the sql.Scanner interface
func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = []string{}
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, t)
	}

	trimmed := strings.Trim(str, "{}")
	if trimmed == "" {
		*t = []string{}
		return nil
	}
	*t = strings.Split(trimmed, ",")
	return nil
}

// Value implements the driver.Valuer interface
func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "{}", nil
	}
	return "{" + strings.Join(t, ",") + "}", nil
}

// Clone returns a copy that shares no storage with the receiver.
func (t Tags) Clone() Tags {
	out := make(Tags, len(t))
	copy(out, t)
	return out
}

// Metadata is a jsonb-backed string map.
type Metadata map[string]string

// Scan implements the sql.Scanner interface
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, m)
	}

	return json.Unmarshal(data, m)
}

// Value implements the driver.Valuer interface
func (m Metadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Clone returns a copy that shares no storage with the receiver.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
