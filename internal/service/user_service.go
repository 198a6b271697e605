package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

type UpdateProfileDTO struct {
	Name              *string
	Password          *string
	AvatarURL         *string
	Bio               *string
	Location          *string
	LearningInterests []model.Skill
	Availability      []model.Availability
}

type UserService interface {
	UpdateUserProfile(ctx context.Context, userID string, dto UpdateProfileDTO) (*model.User, error)
	GetUserProfileByID(ctx context.Context, userID string) (*model.User, error)
}

type userService struct {
	store *store.Store
}

func NewUserService(st *store.Store) UserService {
	return &userService{store: st}
}

func (s *userService) UpdateUserProfile(ctx context.Context, userID string, dto UpdateProfileDTO) (*model.User, error) {
	upd := store.UserUpdate{
		Name:              dto.Name,
		AvatarURL:         dto.AvatarURL,
		Bio:               dto.Bio,
		Location:          dto.Location,
		LearningInterests: dto.LearningInterests,
		Availability:      dto.Availability,
	}

	if dto.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash := string(hashed)
		upd.PasswordHash = &hash
	}

	return s.store.UpdateUser(userID, upd)
}

func (s *userService) GetUserProfileByID(ctx context.Context, userID string) (*model.User, error) {
	return s.store.UserByID(userID)
}
