package model

import "time"

type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Location     *string `json:"location,omitempty"`

	// Denormalized mirrors of the skill and review collections, kept in
	// sync by the store on every create/update/delete.
	Skills            []Skill        `json:"skills"`
	LearningInterests []Skill        `json:"learning_interests"`
	Availability      []Availability `json:"availability"`
	Reviews           []Review       `json:"reviews"`

	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Availability struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
