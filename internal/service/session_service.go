package service

import (
	"context"

	"github.com/VinaySai005/SkillSwap-dt/internal/events"
	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

type SessionService interface {
	BookSession(ctx context.Context, in store.CreateSession) (*model.Session, error)
	GetSessionByID(ctx context.Context, id string) (*model.Session, error)
	ListSessionsForUser(ctx context.Context, userID string) []model.Session
	UpdateSession(ctx context.Context, id string, upd store.SessionUpdate) (*model.Session, error)
}

type sessionService struct {
	store     *store.Store
	publisher events.EventPublisher
}

func NewSessionService(st *store.Store, pub events.EventPublisher) SessionService {
	return &sessionService{store: st, publisher: pub}
}

func (s *sessionService) BookSession(ctx context.Context, in store.CreateSession) (*model.Session, error) {
	session, err := s.store.CreateSession(in)

	if err != nil {
		return nil, err
	}

	go s.publisher.PublishSessionBooked(session)

	return session, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, id string) (*model.Session, error) {
	return s.store.SessionByID(id)
}

func (s *sessionService) ListSessionsForUser(ctx context.Context, userID string) []model.Session {
	return s.store.SessionsByUser(userID)
}

func (s *sessionService) UpdateSession(ctx context.Context, id string, upd store.SessionUpdate) (*model.Session, error) {
	return s.store.UpdateSession(id, upd)
}
