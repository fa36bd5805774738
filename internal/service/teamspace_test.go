package service_test

import (
	"context"
	"testing"

	"github.com/collabnest/teamspace/internal/config"
	"github.com/collabnest/teamspace/internal/domain"
	"github.com/collabnest/teamspace/internal/mocks"
	"github.com/collabnest/teamspace/internal/model"
	"github.com/collabnest/teamspace/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTeamSpaceService(ctrl *gomock.Controller) (*service.TeamSpaceService, *mocks.MockTeamSpaceRepositoryIface, *mocks.MockTeamSpaceMemberRepositoryIface, *mocks.MockUserRepositoryIface) {
	spaceRepo := mocks.NewMockTeamSpaceRepositoryIface(ctrl)
	memberRepo := mocks.NewMockTeamSpaceMemberRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := service.NewTeamSpaceService(spaceRepo, memberRepo, userRepo, nil, &config.Config{BaseURL: "http://localhost:8080"})
	return svc, spaceRepo, memberRepo, userRepo
}

func TestCreateTeamSpace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	owner := &model.User{ID: ownerID, Email: "alice@example.com", FirstName: "Alice"}

	t.Run("creator becomes the sole owner", func(t *testing.T) {
		svc, spaceRepo, _, userRepo := newTeamSpaceService(ctrl)

		userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(owner, nil)
		spaceRepo.EXPECT().
			ExistsByNameAndStatus(gomock.Any(), "Engineering", model.TeamSpaceActive).
			Return(false, nil)
		spaceRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, space *model.TeamSpace) error {
				space.ID = uuid.New()
				return nil
			})

		space, err := svc.Create(context.Background(), ownerID, service.CreateTeamSpaceInput{
			Name:        "Engineering",
			Description: "Engineering team",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.TeamSpaceActive, space.Status)
		assert.Len(t, space.Members, 1)
		assert.Equal(t, ownerID, space.Members[0].UserID)
		assert.Equal(t, model.RoleOwner, space.Members[0].Role)
	})

	t.Run("name held by an active space", func(t *testing.T) {
		svc, spaceRepo, _, userRepo := newTeamSpaceService(ctrl)

		userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(owner, nil)
		spaceRepo.EXPECT().
			ExistsByNameAndStatus(gomock.Any(), "Engineering", model.TeamSpaceActive).
			Return(true, nil)

		_, err := svc.Create(context.Background(), ownerID, service.CreateTeamSpaceInput{Name: "Engineering"})
		assert.ErrorIs(t, err, domain.ErrTeamSpaceNameTaken)
	})

	t.Run("name freed by an archived space is reusable", func(t *testing.T) {
		svc, spaceRepo, _, userRepo := newTeamSpaceService(ctrl)

		// The uniqueness probe only considers active spaces, so an archived
		// space with the same name does not block creation.
		userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(owner, nil)
		spaceRepo.EXPECT().
			ExistsByNameAndStatus(gomock.Any(), "Engineering", model.TeamSpaceActive).
			Return(false, nil)
		spaceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		space, err := svc.Create(context.Background(), ownerID, service.CreateTeamSpaceInput{Name: "Engineering"})
		assert.NoError(t, err)
		assert.Equal(t, "Engineering", space.Name)
	})

	t.Run("unknown requester", func(t *testing.T) {
		svc, _, _, userRepo := newTeamSpaceService(ctrl)

		userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(nil, domain.ErrUserNotFound)

		_, err := svc.Create(context.Background(), ownerID, service.CreateTeamSpaceInput{Name: "Engineering"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("missing name", func(t *testing.T) {
		svc, _, _, _ := newTeamSpaceService(ctrl)

		_, err := svc.Create(context.Background(), ownerID, service.CreateTeamSpaceInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetTeamSpace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	spaceID := uuid.New()
	space := &model.TeamSpace{
		ID:     spaceID,
		Name:   "Engineering",
		Status: model.TeamSpaceActive,
		Members: []model.TeamSpaceMember{
			{TeamSpaceID: spaceID, UserID: ownerID, Role: model.RoleOwner},
		},
	}

	t.Run("member can read", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)

		got, err := svc.Get(context.Background(), ownerID, spaceID)
		assert.NoError(t, err)
		assert.Equal(t, spaceID, got.ID)
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)

		_, err := svc.Get(context.Background(), uuid.New(), spaceID)
		assert.ErrorIs(t, err, domain.ErrNotMember)
	})
}

func TestDeleteTeamSpace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	adminID := uuid.New()
	spaceID := uuid.New()
	space := &model.TeamSpace{
		ID: spaceID,
		Members: []model.TeamSpaceMember{
			{TeamSpaceID: spaceID, UserID: ownerID, Role: model.RoleOwner},
			{TeamSpaceID: spaceID, UserID: adminID, Role: model.RoleAdmin},
		},
	}

	t.Run("owner can delete", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)
		spaceRepo.EXPECT().Delete(gomock.Any(), spaceID).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), ownerID, spaceID))
	})

	t.Run("admin cannot delete", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)

		err := svc.Delete(context.Background(), adminID, spaceID)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})
}

func TestAddMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	memberID := uuid.New()
	candidateID := uuid.New()
	spaceID := uuid.New()

	space := &model.TeamSpace{
		ID:   spaceID,
		Name: "Engineering",
		Members: []model.TeamSpaceMember{
			{TeamSpaceID: spaceID, UserID: ownerID, Role: model.RoleOwner},
			{TeamSpaceID: spaceID, UserID: memberID, Role: model.RoleMember},
		},
	}
	candidate := &model.User{ID: candidateID, Email: "carol@example.com", FirstName: "Carol"}

	t.Run("owner adds a new member", func(t *testing.T) {
		svc, spaceRepo, memberRepo, userRepo := newTeamSpaceService(ctrl)

		gomock.InOrder(
			spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil),
			userRepo.EXPECT().FindByID(gomock.Any(), candidateID).Return(candidate, nil),
			memberRepo.EXPECT().
				FindByTeamSpaceAndUser(gomock.Any(), spaceID, candidateID).
				Return(nil, domain.ErrMemberNotFound),
			memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		member, err := svc.AddMember(context.Background(), ownerID, service.AddMemberInput{
			TeamSpaceID: spaceID,
			UserID:      candidateID,
			Role:        model.RoleMember,
		})

		assert.NoError(t, err)
		assert.Equal(t, candidateID, member.UserID)
		assert.Equal(t, model.RoleMember, member.Role)
	})

	t.Run("plain member cannot add", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)

		_, err := svc.AddMember(context.Background(), memberID, service.AddMemberInput{
			TeamSpaceID: spaceID,
			UserID:      candidateID,
			Role:        model.RoleMember,
		})
		assert.ErrorIs(t, err, domain.ErrNotAdmin)
	})

	t.Run("candidate already belongs", func(t *testing.T) {
		svc, spaceRepo, memberRepo, userRepo := newTeamSpaceService(ctrl)

		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), candidateID).Return(candidate, nil)
		memberRepo.EXPECT().
			FindByTeamSpaceAndUser(gomock.Any(), spaceID, candidateID).
			Return(&model.TeamSpaceMember{TeamSpaceID: spaceID, UserID: candidateID, Role: model.RoleMember}, nil)

		_, err := svc.AddMember(context.Background(), ownerID, service.AddMemberInput{
			TeamSpaceID: spaceID,
			UserID:      candidateID,
			Role:        model.RoleMember,
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})

	t.Run("candidate does not exist", func(t *testing.T) {
		svc, spaceRepo, _, userRepo := newTeamSpaceService(ctrl)

		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), candidateID).Return(nil, domain.ErrUserNotFound)

		_, err := svc.AddMember(context.Background(), ownerID, service.AddMemberInput{
			TeamSpaceID: spaceID,
			UserID:      candidateID,
			Role:        model.RoleMember,
		})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("cannot grant the owner role", func(t *testing.T) {
		svc, _, _, _ := newTeamSpaceService(ctrl)

		_, err := svc.AddMember(context.Background(), ownerID, service.AddMemberInput{
			TeamSpaceID: spaceID,
			UserID:      candidateID,
			Role:        model.RoleOwner,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestRemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	adminID := uuid.New()
	memberID := uuid.New()
	spaceID := uuid.New()

	newSpace := func() *model.TeamSpace {
		return &model.TeamSpace{
			ID: spaceID,
			Members: []model.TeamSpaceMember{
				{TeamSpaceID: spaceID, UserID: ownerID, Role: model.RoleOwner},
				{TeamSpaceID: spaceID, UserID: adminID, Role: model.RoleAdmin},
				{TeamSpaceID: spaceID, UserID: memberID, Role: model.RoleMember},
			},
		}
	}

	t.Run("admin removes a member", func(t *testing.T) {
		svc, spaceRepo, memberRepo, _ := newTeamSpaceService(ctrl)

		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(newSpace(), nil)
		memberRepo.EXPECT().DeleteByTeamSpaceAndUser(gomock.Any(), spaceID, memberID).Return(nil)

		assert.NoError(t, svc.RemoveMember(context.Background(), adminID, spaceID, memberID))
	})

	t.Run("owner cannot be removed, even by the owner", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(newSpace(), nil)

		err := svc.RemoveMember(context.Background(), ownerID, spaceID, ownerID)
		assert.ErrorIs(t, err, domain.ErrOwnerProtected)
	})

	t.Run("plain member cannot remove", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(newSpace(), nil)

		err := svc.RemoveMember(context.Background(), memberID, spaceID, adminID)
		assert.ErrorIs(t, err, domain.ErrNotAdmin)
	})

	t.Run("target is not a member", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(newSpace(), nil)

		err := svc.RemoveMember(context.Background(), adminID, spaceID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})
}

func TestUpdateMemberRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	adminID := uuid.New()
	memberID := uuid.New()
	spaceID := uuid.New()

	newSpace := func() *model.TeamSpace {
		return &model.TeamSpace{
			ID: spaceID,
			Members: []model.TeamSpaceMember{
				{TeamSpaceID: spaceID, UserID: ownerID, Role: model.RoleOwner},
				{TeamSpaceID: spaceID, UserID: adminID, Role: model.RoleAdmin},
				{TeamSpaceID: spaceID, UserID: memberID, Role: model.RoleMember},
			},
		}
	}

	t.Run("owner promotes a member", func(t *testing.T) {
		svc, spaceRepo, memberRepo, _ := newTeamSpaceService(ctrl)

		updated := &model.TeamSpaceMember{TeamSpaceID: spaceID, UserID: memberID, Role: model.RoleAdmin}
		gomock.InOrder(
			spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(newSpace(), nil),
			memberRepo.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, m *model.TeamSpaceMember) error {
					assert.Equal(t, memberID, m.UserID)
					assert.Equal(t, model.RoleAdmin, m.Role)
					return nil
				}),
			memberRepo.EXPECT().
				FindByTeamSpaceAndUser(gomock.Any(), spaceID, memberID).
				Return(updated, nil),
		)

		got, err := svc.UpdateMemberRole(context.Background(), ownerID, service.UpdateMemberRoleInput{
			TeamSpaceID: spaceID,
			UserID:      memberID,
			NewRole:     model.RoleAdmin,
		})
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, got.Role)
	})

	t.Run("admin cannot change roles", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(newSpace(), nil)

		_, err := svc.UpdateMemberRole(context.Background(), adminID, service.UpdateMemberRoleInput{
			TeamSpaceID: spaceID,
			UserID:      memberID,
			NewRole:     model.RoleAdmin,
		})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("owner role is immutable", func(t *testing.T) {
		svc, spaceRepo, _, _ := newTeamSpaceService(ctrl)
		spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(newSpace(), nil)

		_, err := svc.UpdateMemberRole(context.Background(), ownerID, service.UpdateMemberRoleInput{
			TeamSpaceID: spaceID,
			UserID:      ownerID,
			NewRole:     model.RoleAdmin,
		})
		assert.ErrorIs(t, err, domain.ErrOwnerProtected)
	})

	t.Run("member row vanishes after save", func(t *testing.T) {
		svc, spaceRepo, memberRepo, _ := newTeamSpaceService(ctrl)

		gomock.InOrder(
			spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(newSpace(), nil),
			memberRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
			memberRepo.EXPECT().
				FindByTeamSpaceAndUser(gomock.Any(), spaceID, memberID).
				Return(nil, domain.ErrMemberNotFound),
		)

		_, err := svc.UpdateMemberRole(context.Background(), ownerID, service.UpdateMemberRoleInput{
			TeamSpaceID: spaceID,
			UserID:      memberID,
			NewRole:     model.RoleAdmin,
		})
		assert.ErrorIs(t, err, domain.ErrMemberVanished)
	})
}

// Walks a space through its lifecycle: the founder invites a member, promotes
// them to admin, and the new admin brings in a third user but still cannot
// touch the owner.
func TestTeamSpaceLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aliceID := uuid.New()
	bobID := uuid.New()
	carolID := uuid.New()
	spaceID := uuid.New()

	alice := &model.User{ID: aliceID, Email: "alice@example.com", FirstName: "Alice"}
	bob := &model.User{ID: bobID, Email: "bob@example.com", FirstName: "Bob"}
	carol := &model.User{ID: carolID, Email: "carol@example.com", FirstName: "Carol"}

	svc, spaceRepo, memberRepo, userRepo := newTeamSpaceService(ctrl)
	ctx := context.Background()

	// Alice founds the space.
	userRepo.EXPECT().FindByID(gomock.Any(), aliceID).Return(alice, nil)
	spaceRepo.EXPECT().
		ExistsByNameAndStatus(gomock.Any(), "Eng", model.TeamSpaceActive).
		Return(false, nil)
	spaceRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, space *model.TeamSpace) error {
			space.ID = spaceID
			return nil
		})

	space, err := svc.Create(ctx, aliceID, service.CreateTeamSpaceInput{Name: "Eng"})
	assert.NoError(t, err)

	// Alice invites Bob as a plain member.
	spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), bobID).Return(bob, nil)
	memberRepo.EXPECT().
		FindByTeamSpaceAndUser(gomock.Any(), spaceID, bobID).
		Return(nil, domain.ErrMemberNotFound)
	memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	bobMember, err := svc.AddMember(ctx, aliceID, service.AddMemberInput{
		TeamSpaceID: spaceID, UserID: bobID, Role: model.RoleMember,
	})
	assert.NoError(t, err)
	assert.NoError(t, space.AddMember(*bobMember))

	// Bob cannot invite Carol yet.
	spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)
	_, err = svc.AddMember(ctx, bobID, service.AddMemberInput{
		TeamSpaceID: spaceID, UserID: carolID, Role: model.RoleMember,
	})
	assert.ErrorIs(t, err, domain.ErrNotAdmin)

	// Alice promotes Bob to admin.
	spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)
	memberRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	memberRepo.EXPECT().
		FindByTeamSpaceAndUser(gomock.Any(), spaceID, bobID).
		Return(&model.TeamSpaceMember{TeamSpaceID: spaceID, UserID: bobID, Role: model.RoleAdmin}, nil)

	promoted, err := svc.UpdateMemberRole(ctx, aliceID, service.UpdateMemberRoleInput{
		TeamSpaceID: spaceID, UserID: bobID, NewRole: model.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, promoted.Role)

	// Now Bob can bring Carol in.
	spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), carolID).Return(carol, nil)
	memberRepo.EXPECT().
		FindByTeamSpaceAndUser(gomock.Any(), spaceID, carolID).
		Return(nil, domain.ErrMemberNotFound)
	memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err = svc.AddMember(ctx, bobID, service.AddMemberInput{
		TeamSpaceID: spaceID, UserID: carolID, Role: model.RoleMember,
	})
	assert.NoError(t, err)

	// But Bob still cannot remove Alice.
	spaceRepo.EXPECT().FindByID(gomock.Any(), spaceID).Return(space, nil)
	err = svc.RemoveMember(ctx, bobID, spaceID, aliceID)
	assert.ErrorIs(t, err, domain.ErrOwnerProtected)
}
