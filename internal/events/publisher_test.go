package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/VinaySai005/SkillSwap-dt/internal/events"
	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

func TestSessionBookedEvent_Marshal(t *testing.T) {
	s := &model.Session{ID: "session_1", TeacherID: "user_t", StudentID: "user_s", SkillID: "skill_x", Date: time.Now()}
	ev := events.SessionBookedEvent{
		EventType: "session.booked",
		SessionID: s.ID,
		TeacherID: s.TeacherID,
		StudentID: s.StudentID,
		SkillID:   s.SkillID,
		Date:      s.Date,
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "session.booked", decoded["event_type"])
	require.Equal(t, "user_t", decoded["teacher_id"])
}

func TestMessageSentEvent_Marshal(t *testing.T) {
	ev := events.MessageSentEvent{
		EventType:  "message.sent",
		MessageID:  "message_1",
		FromUserID: "user_a",
		ToUserID:   "user_b",
		SentAt:     time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "message.sent", decoded["event_type"])
	require.Equal(t, "user_b", decoded["to_user_id"])
}
