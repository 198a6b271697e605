package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/VinaySai005/SkillSwap-dt/internal/jwt"
	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Bio      *string
	Location *string
}

type AuthService interface {
	RegisterUser(ctx context.Context, in RegisterInput) (*model.User, error)
	LoginUser(ctx context.Context, email, password string) (accessToken string, refreshToken string, err error)
	GetUserProfile(ctx context.Context, userID string) (*model.User, error)
	RefreshToken(ctx context.Context, refreshTokenString string) (newAccessToken string, err error)
	LogoutUser(ctx context.Context, refreshTokenString string) error
}

type authService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) AuthService {
	return &authService{store: st}
}

func (s *authService) RegisterUser(ctx context.Context, in RegisterInput) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	return s.store.CreateUser(store.CreateUser{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		Bio:          in.Bio,
		Location:     in.Location,
	})
}

func (s *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.store.UserByEmail(email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := jwt.GenerateTokens(user)
	if err != nil {
		return "", "", err
	}

	s.store.SaveRefreshToken(model.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(time.Hour * 24 * 30),
	})

	return accessToken, refreshToken, nil
}

func (s *authService) GetUserProfile(ctx context.Context, userID string) (*model.User, error) {
	return s.store.UserByID(userID)
}

func (s *authService) RefreshToken(ctx context.Context, refreshTokenString string) (string, error) {
	claims, err := jwt.ValidateToken(refreshTokenString)

	if err != nil {
		return "", ErrTokenInvalid
	}

	if _, err := s.store.RefreshTokenByHash(hashToken(refreshTokenString)); err != nil {
		return "", ErrTokenInvalid
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return "", ErrTokenInvalid
	}

	user, err := s.store.UserByID(userID)
	if err != nil {
		return "", ErrTokenInvalid
	}

	newAccessToken, _, err := jwt.GenerateTokens(user)

	if err != nil {
		return "", err
	}

	return newAccessToken, nil
}

func (s *authService) LogoutUser(ctx context.Context, refreshTokenString string) error {
	s.store.DeleteRefreshToken(hashToken(refreshTokenString))
	return nil
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
