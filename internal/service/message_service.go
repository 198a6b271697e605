package service

import (
	"context"

	"github.com/VinaySai005/SkillSwap-dt/internal/events"
	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

type MessageService interface {
	SendMessage(ctx context.Context, in store.CreateMessage) (*model.Message, error)
	GetThread(ctx context.Context, userA, userB string) []model.Message
	MarkThreadRead(ctx context.Context, fromUserID, toUserID string) int
}

type messageService struct {
	store     *store.Store
	publisher events.EventPublisher
}

func NewMessageService(st *store.Store, pub events.EventPublisher) MessageService {
	return &messageService{store: st, publisher: pub}
}

func (s *messageService) SendMessage(ctx context.Context, in store.CreateMessage) (*model.Message, error) {
	msg, err := s.store.CreateMessage(in)

	if err != nil {
		return nil, err
	}

	go s.publisher.PublishMessageSent(msg)

	return msg, nil
}

func (s *messageService) GetThread(ctx context.Context, userA, userB string) []model.Message {
	return s.store.MessagesBetween(userA, userB)
}

func (s *messageService) MarkThreadRead(ctx context.Context, fromUserID, toUserID string) int {
	return s.store.MarkMessagesRead(fromUserID, toUserID)
}
