package store

import (
	"fmt"
	"sort"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

type CreateMessage struct {
	FromUserID string
	ToUserID   string
	Text       string
}

func (s *Store) CreateMessage(in CreateMessage) (*model.Message, error) {
	if in.FromUserID == "" || in.ToUserID == "" {
		return nil, fmt.Errorf("%w: sender and recipient ids are required", ErrValidation)
	}
	if in.Text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &model.Message{
		ID:         newID("message"),
		FromUserID: in.FromUserID,
		ToUserID:   in.ToUserID,
		Text:       in.Text,
		IsRead:     false,
		CreatedAt:  now(),
	}
	s.messages = append(s.messages, msg)

	out := *msg
	return &out, nil
}

// MessagesBetween returns the thread between two users regardless of
// argument order, ascending by creation time. The sort is stable, so
// messages written in the same instant keep their insertion order.
func (s *Store) MessagesBetween(userA, userB string) []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Message
	for _, msg := range s.messages {
		if (msg.FromUserID == userA && msg.ToUserID == userB) ||
			(msg.FromUserID == userB && msg.ToUserID == userA) {
			out = append(out, *msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// MarkMessagesRead flips every unread message sent from fromUserID to
// toUserID and reports how many were flipped. Calling it again when
// nothing is unread is a no-op.
func (s *Store) MarkMessagesRead(fromUserID, toUserID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := 0
	for _, msg := range s.messages {
		if msg.FromUserID == fromUserID && msg.ToUserID == toUserID && !msg.IsRead {
			msg.IsRead = true
			marked++
		}
	}
	return marked
}
