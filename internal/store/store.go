package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("email already registered")
	ErrValidation = errors.New("invalid input")
)

// Store is the authoritative in-memory home of all five entity collections
// and the per-user mirrors. A single RWMutex guards everything so that
// multi-step writes (skill create + owner mirror, review create + rating
// recompute) are atomic to readers. Every read hands out deep copies;
// callers never share memory with the collections.
//
// Collections keep insertion order, which is also the discovery order the
// match engine ranks ties by.
type Store struct {
	mu sync.RWMutex

	users        []*model.User
	usersByID    map[string]*model.User
	usersByEmail map[string]*model.User

	skills     []*model.Skill
	skillsByID map[string]*model.Skill

	sessions     []*model.Session
	sessionsByID map[string]*model.Session

	messages []*model.Message
	reviews  []*model.Review

	tokensByHash map[string]*model.RefreshToken
}

func New() *Store {
	return &Store{
		usersByID:    make(map[string]*model.User),
		usersByEmail: make(map[string]*model.User),
		skillsByID:   make(map[string]*model.Skill),
		sessionsByID: make(map[string]*model.Session),
		tokensByHash: make(map[string]*model.RefreshToken),
	}
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringPtr(in *string) *string {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneSkill(s *model.Skill) model.Skill {
	out := *s
	out.Tags = cloneStrings(s.Tags)
	out.Location = cloneStringPtr(s.Location)
	return out
}

func cloneSkills(in []model.Skill) []model.Skill {
	out := make([]model.Skill, len(in))
	for i := range in {
		out[i] = cloneSkill(&in[i])
	}
	return out
}

func cloneUser(u *model.User) *model.User {
	out := *u
	out.AvatarURL = cloneStringPtr(u.AvatarURL)
	out.Bio = cloneStringPtr(u.Bio)
	out.Location = cloneStringPtr(u.Location)
	out.Skills = cloneSkills(u.Skills)
	out.LearningInterests = cloneSkills(u.LearningInterests)
	out.Availability = make([]model.Availability, len(u.Availability))
	copy(out.Availability, u.Availability)
	out.Reviews = make([]model.Review, len(u.Reviews))
	copy(out.Reviews, u.Reviews)
	return &out
}
