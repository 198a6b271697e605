package events

import (
	"log"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

// noopPublisher stands in when no NATS URL is configured; events are
// logged and dropped.
type noopPublisher struct{}

func NewNoopPublisher() EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishSessionBooked(session *model.Session) error {
	log.Printf("NATS disabled, dropping session.booked event for session '%s'", session.ID)
	return nil
}

func (noopPublisher) PublishMessageSent(msg *model.Message) error {
	log.Printf("NATS disabled, dropping message.sent event for message '%s'", msg.ID)
	return nil
}
