package model_test

import (
	"testing"

	"github.com/collabnest/teamspace/internal/domain"
	"github.com/collabnest/teamspace/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoleOrdering(t *testing.T) {
	assert.True(t, model.RoleOwner.AtLeast(model.RoleAdmin))
	assert.True(t, model.RoleOwner.AtLeast(model.RoleMember))
	assert.True(t, model.RoleAdmin.AtLeast(model.RoleMember))
	assert.False(t, model.RoleAdmin.AtLeast(model.RoleOwner))
	assert.False(t, model.RoleMember.AtLeast(model.RoleAdmin))

	assert.True(t, model.RoleOwner.Valid())
	assert.False(t, model.TeamSpaceRole("superuser").Valid())
}

func TestMembershipPredicates(t *testing.T) {
	owner := uuid.New()
	admin := uuid.New()
	member := uuid.New()
	stranger := uuid.New()

	space := &model.TeamSpace{
		ID:     uuid.New(),
		Name:   "Eng",
		Status: model.TeamSpaceActive,
		Members: []model.TeamSpaceMember{
			{UserID: owner, Role: model.RoleOwner},
			{UserID: admin, Role: model.RoleAdmin},
			{UserID: member, Role: model.RoleMember},
		},
	}

	tests := []struct {
		name     string
		userID   uuid.UUID
		isMember bool
		isAdmin  bool
		isOwner  bool
	}{
		{"owner", owner, true, true, true},
		{"admin", admin, true, true, false},
		{"member", member, true, false, false},
		{"stranger", stranger, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isMember, space.IsMember(tt.userID))
			assert.Equal(t, tt.isAdmin, space.IsAdmin(tt.userID))
			assert.Equal(t, tt.isOwner, space.IsOwner(tt.userID))

			// Owner implies admin implies member.
			if space.IsOwner(tt.userID) {
				assert.True(t, space.IsAdmin(tt.userID))
			}
			if space.IsAdmin(tt.userID) {
				assert.True(t, space.IsMember(tt.userID))
			}
		})
	}
}

func TestAddMemberRejectsDuplicates(t *testing.T) {
	userID := uuid.New()
	space := &model.TeamSpace{
		Members: []model.TeamSpaceMember{
			{UserID: userID, Role: model.RoleOwner},
		},
	}

	err := space.AddMember(model.TeamSpaceMember{UserID: userID, Role: model.RoleMember})
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	assert.Len(t, space.Members, 1)

	err = space.AddMember(model.TeamSpaceMember{UserID: uuid.New(), Role: model.RoleMember})
	assert.NoError(t, err)
	assert.Len(t, space.Members, 2)
}

func TestRemoveMember(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()

	newSpace := func() *model.TeamSpace {
		return &model.TeamSpace{
			Members: []model.TeamSpaceMember{
				{UserID: ownerID, Role: model.RoleOwner},
				{UserID: memberID, Role: model.RoleMember},
			},
		}
	}

	t.Run("owner is protected", func(t *testing.T) {
		space := newSpace()
		err := space.RemoveMember(ownerID)
		assert.ErrorIs(t, err, domain.ErrOwnerProtected)
		assert.Len(t, space.Members, 2)
	})

	t.Run("unknown member", func(t *testing.T) {
		space := newSpace()
		err := space.RemoveMember(uuid.New())
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("removes regular member", func(t *testing.T) {
		space := newSpace()
		err := space.RemoveMember(memberID)
		assert.NoError(t, err)
		assert.Len(t, space.Members, 1)
		assert.False(t, space.IsMember(memberID))
		assert.True(t, space.IsOwner(ownerID))
	})
}

func TestUpdateMemberRole(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()

	newSpace := func() *model.TeamSpace {
		return &model.TeamSpace{
			Members: []model.TeamSpaceMember{
				{UserID: ownerID, Role: model.RoleOwner},
				{UserID: memberID, Role: model.RoleMember},
			},
		}
	}

	t.Run("promotes member to admin", func(t *testing.T) {
		space := newSpace()
		err := space.UpdateMemberRole(memberID, model.RoleAdmin)
		assert.NoError(t, err)
		assert.True(t, space.IsAdmin(memberID))
		assert.False(t, space.IsOwner(memberID))
	})

	t.Run("owner role is immutable", func(t *testing.T) {
		space := newSpace()
		err := space.UpdateMemberRole(ownerID, model.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrOwnerProtected)
		assert.True(t, space.IsOwner(ownerID))
	})

	t.Run("cannot promote to owner", func(t *testing.T) {
		space := newSpace()
		err := space.UpdateMemberRole(memberID, model.RoleOwner)
		assert.ErrorIs(t, err, domain.ErrOwnerProtected)
	})

	t.Run("unknown member", func(t *testing.T) {
		space := newSpace()
		err := space.UpdateMemberRole(uuid.New(), model.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("invalid role", func(t *testing.T) {
		space := newSpace()
		err := space.UpdateMemberRole(memberID, model.TeamSpaceRole("superuser"))
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}
