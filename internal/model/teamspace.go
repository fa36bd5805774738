// internal/model/teamspace.go
package model

import (
	"time"

	"github.com/collabnest/teamspace/internal/domain"
	"github.com/google/uuid"
)

type TeamSpaceStatus string

const (
	TeamSpaceActive   TeamSpaceStatus = "active"
	TeamSpaceArchived TeamSpaceStatus = "archived"
	TeamSpaceDeleted  TeamSpaceStatus = "deleted"
)

type TeamSpaceRole string

const (
	RoleOwner  TeamSpaceRole = "owner"
	RoleAdmin  TeamSpaceRole = "admin"
	RoleMember TeamSpaceRole = "member"
)

// rolePrivilege orders roles for admin-or-above checks. Higher is more
// privileged; the ordering carries no other meaning.
var rolePrivilege = map[TeamSpaceRole]int{
	RoleMember: 1,
	RoleAdmin:  2,
	RoleOwner:  3,
}

// Valid reports whether r is one of the known roles.
func (r TeamSpaceRole) Valid() bool {
	_, ok := rolePrivilege[r]
	return ok
}

// AtLeast reports whether r holds at least the privilege of other.
func (r TeamSpaceRole) AtLeast(other TeamSpaceRole) bool {
	return rolePrivilege[r] >= rolePrivilege[other]
}

type TeamSpace struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Status      TeamSpaceStatus `gorm:"type:team_space_status;not null;default:'active'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Members []TeamSpaceMember `gorm:"foreignKey:TeamSpaceID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Folders []Folder          `gorm:"foreignKey:TeamSpaceID" json:"folders,omitempty"`
}

type TeamSpaceMember struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeamSpaceID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_team_space_user" json:"team_space_id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_team_space_user" json:"user_id"`
	Role        TeamSpaceRole `gorm:"type:team_space_role;not null" json:"role"`
	JoinedAt    time.Time     `gorm:"autoCreateTime" json:"joined_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// IsMember reports whether the user belongs to the team space in any role.
func (ts *TeamSpace) IsMember(userID uuid.UUID) bool {
	return ts.MemberByUserID(userID) != nil
}

// IsAdmin reports whether the user holds the admin role or above.
func (ts *TeamSpace) IsAdmin(userID uuid.UUID) bool {
	m := ts.MemberByUserID(userID)
	return m != nil && m.Role.AtLeast(RoleAdmin)
}

// IsOwner reports whether the user is the team space owner.
func (ts *TeamSpace) IsOwner(userID uuid.UUID) bool {
	m := ts.MemberByUserID(userID)
	return m != nil && m.Role == RoleOwner
}

// MemberByUserID returns the membership for the given user, or nil.
func (ts *TeamSpace) MemberByUserID(userID uuid.UUID) *TeamSpaceMember {
	for i := range ts.Members {
		if ts.Members[i].UserID == userID {
			return &ts.Members[i]
		}
	}
	return nil
}

// AddMember inserts a new membership. Duplicate users are rejected here so
// that the invariant lives in one place rather than in every caller.
func (ts *TeamSpace) AddMember(member TeamSpaceMember) error {
	if ts.IsMember(member.UserID) {
		return domain.ErrAlreadyMember
	}
	ts.Members = append(ts.Members, member)
	return nil
}

// RemoveMember removes the membership for the given user. The owner is
// protected; a team space always keeps exactly one owner.
func (ts *TeamSpace) RemoveMember(userID uuid.UUID) error {
	m := ts.MemberByUserID(userID)
	if m == nil {
		return domain.ErrMemberNotFound
	}
	if m.Role == RoleOwner {
		return domain.ErrOwnerProtected
	}
	for i := range ts.Members {
		if ts.Members[i].UserID == userID {
			ts.Members = append(ts.Members[:i], ts.Members[i+1:]...)
			break
		}
	}
	return nil
}

// UpdateMemberRole replaces the role of the given member. The current owner
// cannot be reassigned, and no member can be promoted to owner, so the
// single-owner invariant holds across every role change.
func (ts *TeamSpace) UpdateMemberRole(userID uuid.UUID, newRole TeamSpaceRole) error {
	if !newRole.Valid() {
		return domain.ErrInvalidRole
	}
	m := ts.MemberByUserID(userID)
	if m == nil {
		return domain.ErrMemberNotFound
	}
	if m.Role == RoleOwner || newRole == RoleOwner {
		return domain.ErrOwnerProtected
	}
	m.Role = newRole
	return nil
}
