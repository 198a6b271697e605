package service

import (
	"context"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

type ReviewService interface {
	CreateReview(ctx context.Context, in store.CreateReview) (*model.Review, error)
	ListReviewsForUser(ctx context.Context, userID string) []model.Review
}

type reviewService struct {
	store *store.Store
}

func NewReviewService(st *store.Store) ReviewService {
	return &reviewService{store: st}
}

func (s *reviewService) CreateReview(ctx context.Context, in store.CreateReview) (*model.Review, error) {
	return s.store.CreateReview(in)
}

func (s *reviewService) ListReviewsForUser(ctx context.Context, userID string) []model.Review {
	return s.store.ReviewsByUser(userID)
}
