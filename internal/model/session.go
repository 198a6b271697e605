package model

import "time"

type SessionStatus string

const (
	StatusPending   SessionStatus = "Pending"
	StatusConfirmed SessionStatus = "Confirmed"
	StatusCompleted SessionStatus = "Completed"
	StatusCancelled SessionStatus = "Cancelled"
)

type Session struct {
	ID        string        `json:"id"`
	TeacherID string        `json:"teacher_id"`
	StudentID string        `json:"student_id"`
	SkillID   string        `json:"skill_id"`
	Date      time.Time     `json:"date"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	Status    SessionStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
