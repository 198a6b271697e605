package store

import (
	"fmt"
	"time"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

type CreateSession struct {
	TeacherID string
	StudentID string
	SkillID   string
	Date      time.Time
	StartTime string
	EndTime   string
	Status    model.SessionStatus
}

type SessionUpdate struct {
	Date      *time.Time
	StartTime *string
	EndTime   *string
	Status    *model.SessionStatus
}

func validStatus(st model.SessionStatus) bool {
	switch st {
	case model.StatusPending, model.StatusConfirmed, model.StatusCompleted, model.StatusCancelled:
		return true
	}
	return false
}

func (s *Store) CreateSession(in CreateSession) (*model.Session, error) {
	if in.TeacherID == "" || in.StudentID == "" {
		return nil, fmt.Errorf("%w: teacher and student ids are required", ErrValidation)
	}
	if in.TeacherID == in.StudentID {
		return nil, fmt.Errorf("%w: teacher and student must be different users", ErrValidation)
	}
	if in.SkillID == "" {
		return nil, fmt.Errorf("%w: skill id is required", ErrValidation)
	}
	if in.Status == "" {
		in.Status = model.StatusPending
	}
	if !validStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown session status %q", ErrValidation, in.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	session := &model.Session{
		ID:        newID("session"),
		TeacherID: in.TeacherID,
		StudentID: in.StudentID,
		SkillID:   in.SkillID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Status:    in.Status,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	s.sessions = append(s.sessions, session)
	s.sessionsByID[session.ID] = session

	out := *session
	return &out, nil
}

func (s *Store) SessionByID(id string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessionsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *session
	return &out, nil
}

// SessionsByUser returns every session the user takes part in, as teacher
// or as student, in creation order.
func (s *Store) SessionsByUser(userID string) []model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Session
	for _, session := range s.sessions {
		if session.TeacherID == userID || session.StudentID == userID {
			out = append(out, *session)
		}
	}
	return out
}

func (s *Store) UpdateSession(id string, upd SessionUpdate) (*model.Session, error) {
	if upd.Status != nil && !validStatus(*upd.Status) {
		return nil, fmt.Errorf("%w: unknown session status %q", ErrValidation, *upd.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessionsByID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Date != nil {
		session.Date = *upd.Date
	}
	if upd.StartTime != nil {
		session.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		session.EndTime = *upd.EndTime
	}
	if upd.Status != nil {
		session.Status = *upd.Status
	}
	session.UpdatedAt = now()

	out := *session
	return &out, nil
}
