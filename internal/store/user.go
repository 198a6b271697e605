package store

import (
	"fmt"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

type CreateUser struct {
	Name         string
	Email        string
	PasswordHash string
	AvatarURL    *string
	Bio          *string
	Location     *string
}

// UserUpdate carries a partial profile update. Nil fields are left
// untouched; non-nil slices replace the previous list wholesale. The id,
// email, timestamps and mirror bookkeeping are not updatable through here.
type UserUpdate struct {
	Name              *string
	PasswordHash      *string
	AvatarURL         *string
	Bio               *string
	Location          *string
	LearningInterests []model.Skill
	Availability      []model.Availability
}

func (s *Store) CreateUser(in CreateUser) (*model.User, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if in.PasswordHash == "" {
		return nil, fmt.Errorf("%w: credential is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Exact-match uniqueness on the stored value; no normalization.
	if _, exists := s.usersByEmail[in.Email]; exists {
		return nil, ErrConflict
	}

	ts := now()
	user := &model.User{
		ID:                newID("user"),
		Name:              in.Name,
		Email:             in.Email,
		PasswordHash:      in.PasswordHash,
		AvatarURL:         cloneStringPtr(in.AvatarURL),
		Bio:               cloneStringPtr(in.Bio),
		Location:          cloneStringPtr(in.Location),
		Skills:            []model.Skill{},
		LearningInterests: []model.Skill{},
		Availability:      []model.Availability{},
		Reviews:           []model.Review{},
		Rating:            0,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}

	s.users = append(s.users, user)
	s.usersByID[user.ID] = user
	s.usersByEmail[user.Email] = user

	return cloneUser(user), nil
}

func (s *Store) UserByID(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(user), nil
}

func (s *Store) UserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(user), nil
}

func (s *Store) UpdateUser(id string, upd UserUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.PasswordHash != nil {
		user.PasswordHash = *upd.PasswordHash
	}
	if upd.AvatarURL != nil {
		user.AvatarURL = cloneStringPtr(upd.AvatarURL)
	}
	if upd.Bio != nil {
		user.Bio = cloneStringPtr(upd.Bio)
	}
	if upd.Location != nil {
		user.Location = cloneStringPtr(upd.Location)
	}
	if upd.LearningInterests != nil {
		interests := cloneSkills(upd.LearningInterests)
		ts := now()
		for i := range interests {
			if interests[i].ID == "" {
				interests[i].ID = newID("skill")
				interests[i].CreatedAt = ts
			}
			interests[i].OwnerID = user.ID
			interests[i].UpdatedAt = ts
		}
		user.LearningInterests = interests
	}
	if upd.Availability != nil {
		slots := append([]model.Availability(nil), upd.Availability...)
		for i := range slots {
			if slots[i].ID == "" {
				slots[i].ID = newID("availability")
			}
			slots[i].UserID = user.ID
		}
		user.Availability = slots
	}
	user.UpdatedAt = now()

	return cloneUser(user), nil
}

// AllUsers returns a deep copy of every user, in insertion order, taken
// under one read lock so the result is a consistent snapshot.
func (s *Store) AllUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *cloneUser(u))
	}
	return out
}
