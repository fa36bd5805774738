// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName    string     `gorm:"type:text;not null" json:"first_name"`
	LastName     string     `gorm:"type:text" json:"last_name"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	Status       UserStatus `gorm:"type:user_status;not null;default:'pending'" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
