package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

type EventPublisher interface {
	PublishSessionBooked(session *model.Session) error
	PublishMessageSent(msg *model.Message) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type SessionBookedEvent struct {
	EventType string    `json:"event_type"`
	SessionID string    `json:"session_id"`
	TeacherID string    `json:"teacher_id"`
	StudentID string    `json:"student_id"`
	SkillID   string    `json:"skill_id"`
	Date      time.Time `json:"date"`
}

type MessageSentEvent struct {
	EventType  string    `json:"event_type"`
	MessageID  string    `json:"message_id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	SentAt     time.Time `json:"sent_at"`
}

func (p *NatsPublisher) PublishSessionBooked(session *model.Session) error {
	event := SessionBookedEvent{
		EventType: "session.booked",
		SessionID: session.ID,
		TeacherID: session.TeacherID,
		StudentID: session.StudentID,
		SkillID:   session.SkillID,
		Date:      session.Date,
	}

	eventJSON, err := json.Marshal(event)

	if err != nil {
		log.Printf("Error marshalling event JSON: %v", err)
		return err
	}

	subject := "session.booked"
	err = p.conn.Publish(subject, eventJSON)

	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	log.Printf("Published event to NATS on subject '%s'", subject)

	return nil
}

func (p *NatsPublisher) PublishMessageSent(msg *model.Message) error {
	event := MessageSentEvent{
		EventType:  "message.sent",
		MessageID:  msg.ID,
		FromUserID: msg.FromUserID,
		ToUserID:   msg.ToUserID,
		SentAt:     msg.CreatedAt,
	}

	eventJSON, err := json.Marshal(event)

	if err != nil {
		return err
	}

	subject := "message.sent"
	err = p.conn.Publish(subject, eventJSON)

	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)

		return err
	}

	log.Printf("Published event to NATS on subject '%s' for recipient '%s'", subject, msg.ToUserID)

	return nil
}
