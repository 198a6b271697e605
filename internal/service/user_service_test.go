package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/service"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

func TestUserService_UpdateProfileHashesPassword(t *testing.T) {
	st := store.New()
	users := service.NewUserService(st)
	ctx := context.Background()

	created, err := st.CreateUser(store.CreateUser{Name: "Asha", Email: "asha@example.com", PasswordHash: "old"})
	require.NoError(t, err)

	newPassword := "freshsecret"
	updated, err := users.UpdateUserProfile(ctx, created.ID, service.UpdateProfileDTO{Password: &newPassword})
	require.NoError(t, err)
	require.NotEqual(t, "old", updated.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(newPassword)))
}

func TestUserService_UpdateLearningInterests(t *testing.T) {
	st := store.New()
	users := service.NewUserService(st)
	ctx := context.Background()

	created, err := st.CreateUser(store.CreateUser{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"})
	require.NoError(t, err)

	updated, err := users.UpdateUserProfile(ctx, created.ID, service.UpdateProfileDTO{
		LearningInterests: []model.Skill{{Title: "Hindi", Tags: []string{"Hindi"}}},
		Availability:      []model.Availability{{Day: "Monday", StartTime: "18:00", EndTime: "20:00"}},
	})
	require.NoError(t, err)
	require.Len(t, updated.LearningInterests, 1)
	require.Len(t, updated.Availability, 1)
	require.Equal(t, created.ID, updated.Availability[0].UserID)

	_, err = users.UpdateUserProfile(ctx, "user_ghost", service.UpdateProfileDTO{})
	require.ErrorIs(t, err, store.ErrNotFound)
}
