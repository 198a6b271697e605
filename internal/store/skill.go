package store

import (
	"fmt"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

type CreateSkill struct {
	OwnerID     string
	Title       string
	Description string
	Level       model.SkillLevel
	IsOnline    bool
	Location    *string
	Tags        []string
}

type SkillUpdate struct {
	Title       *string
	Description *string
	Level       *model.SkillLevel
	IsOnline    *bool
	Location    *string
	Tags        []string
}

func validLevel(l model.SkillLevel) bool {
	switch l {
	case model.LevelBeginner, model.LevelIntermediate, model.LevelExpert:
		return true
	}
	return false
}

// CreateSkill stores the skill and appends it to the owner's teaching
// mirror in the same critical section. An owner id that matches no user is
// accepted: the skill is kept but no mirror is touched, matching the
// original marketplace behavior of tolerating orphaned records.
func (s *Store) CreateSkill(in CreateSkill) (*model.Skill, error) {
	if in.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrValidation)
	}
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if !validLevel(in.Level) {
		return nil, fmt.Errorf("%w: level must be Beginner, Intermediate or Expert", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	skill := &model.Skill{
		ID:          newID("skill"),
		OwnerID:     in.OwnerID,
		Title:       in.Title,
		Description: in.Description,
		Level:       in.Level,
		IsOnline:    in.IsOnline,
		Location:    cloneStringPtr(in.Location),
		Tags:        cloneStrings(in.Tags),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if skill.Tags == nil {
		skill.Tags = []string{}
	}

	s.skills = append(s.skills, skill)
	s.skillsByID[skill.ID] = skill

	if owner, ok := s.usersByID[skill.OwnerID]; ok {
		owner.Skills = append(owner.Skills, cloneSkill(skill))
	}

	out := cloneSkill(skill)
	return &out, nil
}

func (s *Store) SkillByID(id string) (*model.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	skill, ok := s.skillsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneSkill(skill)
	return &out, nil
}

func (s *Store) AllSkills() []model.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Skill, 0, len(s.skills))
	for _, skill := range s.skills {
		out = append(out, cloneSkill(skill))
	}
	return out
}

// SkillsByOwner filters the authoritative collection rather than the
// mirror, so skills whose owner id matches no user are still returned.
func (s *Store) SkillsByOwner(ownerID string) []model.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Skill
	for _, skill := range s.skills {
		if skill.OwnerID == ownerID {
			out = append(out, cloneSkill(skill))
		}
	}
	return out
}

func (s *Store) UpdateSkill(id string, upd SkillUpdate) (*model.Skill, error) {
	if upd.Level != nil && !validLevel(*upd.Level) {
		return nil, fmt.Errorf("%w: level must be Beginner, Intermediate or Expert", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	skill, ok := s.skillsByID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Title != nil {
		skill.Title = *upd.Title
	}
	if upd.Description != nil {
		skill.Description = *upd.Description
	}
	if upd.Level != nil {
		skill.Level = *upd.Level
	}
	if upd.IsOnline != nil {
		skill.IsOnline = *upd.IsOnline
	}
	if upd.Location != nil {
		skill.Location = cloneStringPtr(upd.Location)
	}
	if upd.Tags != nil {
		skill.Tags = cloneStrings(upd.Tags)
	}
	skill.UpdatedAt = now()

	// The mirror holds full records, so the owner's copy is refreshed too.
	if owner, ok := s.usersByID[skill.OwnerID]; ok {
		for i := range owner.Skills {
			if owner.Skills[i].ID == skill.ID {
				owner.Skills[i] = cloneSkill(skill)
				break
			}
		}
	}

	out := cloneSkill(skill)
	return &out, nil
}

func (s *Store) DeleteSkill(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	skill, ok := s.skillsByID[id]
	if !ok {
		return ErrNotFound
	}

	delete(s.skillsByID, id)
	for i, candidate := range s.skills {
		if candidate.ID == id {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			break
		}
	}

	if owner, ok := s.usersByID[skill.OwnerID]; ok {
		kept := owner.Skills[:0]
		for _, mirrored := range owner.Skills {
			if mirrored.ID != id {
				kept = append(kept, mirrored)
			}
		}
		owner.Skills = kept
	}

	return nil
}
