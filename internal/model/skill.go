package model

import "time"

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelExpert       SkillLevel = "Expert"
)

// Skill is a teachable offering owned by a user. Learning interests are
// stored in the same shape, living only in the owner's mirror list.
type Skill struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Level       SkillLevel `json:"level"`
	IsOnline    bool       `json:"is_online"`
	Location    *string    `json:"location,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
