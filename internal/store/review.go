package store

import (
	"fmt"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

type CreateReview struct {
	FromUserID string
	ToUserID   string
	SkillID    string
	Rating     int
	Comment    string
}

// CreateReview appends the review and, when the target user exists,
// updates their received-reviews mirror and recomputes their rating inside
// the same critical section. The rating is always the mean over the full
// review history rather than an incremental adjustment, so repeated writes
// cannot accumulate floating-point drift. A target id matching no user
// skips the mirror and rating step but keeps the review.
func (s *Store) CreateReview(in CreateReview) (*model.Review, error) {
	if in.FromUserID == "" || in.ToUserID == "" {
		return nil, fmt.Errorf("%w: reviewer and target ids are required", ErrValidation)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	review := &model.Review{
		ID:         newID("review"),
		FromUserID: in.FromUserID,
		ToUserID:   in.ToUserID,
		SkillID:    in.SkillID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  now(),
	}
	s.reviews = append(s.reviews, review)

	if target, ok := s.usersByID[in.ToUserID]; ok {
		target.Reviews = append(target.Reviews, *review)

		total := 0
		count := 0
		for _, r := range s.reviews {
			if r.ToUserID == in.ToUserID {
				total += r.Rating
				count++
			}
		}
		target.Rating = float64(total) / float64(count)
	}

	out := *review
	return &out, nil
}

// ReviewsByUser returns the reviews a user has received, in creation order.
func (s *Store) ReviewsByUser(userID string) []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Review
	for _, review := range s.reviews {
		if review.ToUserID == userID {
			out = append(out, *review)
		}
	}
	return out
}
