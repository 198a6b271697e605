package match

import (
	"sort"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

const (
	overlapPoints = 10
	locationBonus = 5
	maxScore      = 100
)

type Match struct {
	User  model.User `json:"user"`
	Score int        `json:"score"`
}

// UserSource supplies a consistent snapshot of every user together with
// their skill and interest mirrors.
type UserSource interface {
	AllUsers() []model.User
}

type Engine struct {
	users UserSource
}

func NewEngine(users UserSource) *Engine {
	return &Engine{users: users}
}

// MatchesFor scores every other user against the seeker and returns the
// candidates with a positive score, best first.
//
// Each of the seeker's learning interests that overlaps any candidate
// teaching skill by tag adds 10 points, once per interest no matter how
// many skills overlap. The mirror-image check over the seeker's teaching
// skills against the candidate's interests adds 10 the same way. A shared,
// non-empty location adds a flat 5. Scores clamp at 100.
//
// The scan walks the snapshot in account-creation order and the final sort
// is stable, so equal scores rank by account creation order. Same store
// state, same result.
func (e *Engine) MatchesFor(userID string) ([]Match, error) {
	users := e.users.AllUsers()

	var seeker *model.User
	for i := range users {
		if users[i].ID == userID {
			seeker = &users[i]
			break
		}
	}
	if seeker == nil {
		return nil, store.ErrNotFound
	}

	var matches []Match
	for i := range users {
		candidate := &users[i]
		if candidate.ID == seeker.ID {
			continue
		}

		score := 0
		for _, interest := range seeker.LearningInterests {
			if anySkillOverlaps(candidate.Skills, interest.Tags) {
				score += overlapPoints
			}
		}
		for _, skill := range seeker.Skills {
			if anySkillOverlaps(candidate.LearningInterests, skill.Tags) {
				score += overlapPoints
			}
		}
		if sameLocation(seeker.Location, candidate.Location) {
			score += locationBonus
		}

		if score > maxScore {
			score = maxScore
		}
		if score > 0 {
			matches = append(matches, Match{User: *candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}

func anySkillOverlaps(skills []model.Skill, tags []string) bool {
	for _, skill := range skills {
		if tagsIntersect(skill.Tags, tags) {
			return true
		}
	}
	return false
}

func tagsIntersect(a, b []string) bool {
	for _, ta := range a {
		for _, tb := range b {
			if ta == tb {
				return true
			}
		}
	}
	return false
}

func sameLocation(a, b *string) bool {
	return a != nil && b != nil && *a != "" && *a == *b
}
