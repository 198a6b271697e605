package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

func TestMessagesBetween_SymmetricAndOrdered(t *testing.T) {
	st := store.New()

	_, err := st.CreateMessage(store.CreateMessage{FromUserID: "user_a", ToUserID: "user_b", Text: "hi"})
	require.NoError(t, err)
	_, err = st.CreateMessage(store.CreateMessage{FromUserID: "user_b", ToUserID: "user_a", Text: "hello"})
	require.NoError(t, err)
	_, err = st.CreateMessage(store.CreateMessage{FromUserID: "user_a", ToUserID: "user_c", Text: "other thread"})
	require.NoError(t, err)
	_, err = st.CreateMessage(store.CreateMessage{FromUserID: "user_a", ToUserID: "user_b", Text: "how are you"})
	require.NoError(t, err)

	forward := st.MessagesBetween("user_a", "user_b")
	reverse := st.MessagesBetween("user_b", "user_a")
	require.Equal(t, forward, reverse)

	require.Len(t, forward, 3)
	require.Equal(t, "hi", forward[0].Text)
	require.Equal(t, "hello", forward[1].Text)
	require.Equal(t, "how are you", forward[2].Text)
	for i := 1; i < len(forward); i++ {
		require.False(t, forward[i].CreatedAt.Before(forward[i-1].CreatedAt))
	}
}

func TestMessagesBetween_EmptyThread(t *testing.T) {
	st := store.New()
	require.Empty(t, st.MessagesBetween("user_a", "user_b"))
}

func TestMarkMessagesRead_DirectedAndIdempotent(t *testing.T) {
	st := store.New()

	_, err := st.CreateMessage(store.CreateMessage{FromUserID: "user_a", ToUserID: "user_b", Text: "one"})
	require.NoError(t, err)
	_, err = st.CreateMessage(store.CreateMessage{FromUserID: "user_a", ToUserID: "user_b", Text: "two"})
	require.NoError(t, err)
	_, err = st.CreateMessage(store.CreateMessage{FromUserID: "user_b", ToUserID: "user_a", Text: "reply"})
	require.NoError(t, err)

	// Only the a->b direction flips.
	require.Equal(t, 2, st.MarkMessagesRead("user_a", "user_b"))

	thread := st.MessagesBetween("user_a", "user_b")
	for _, msg := range thread {
		if msg.FromUserID == "user_a" {
			require.True(t, msg.IsRead)
		} else {
			require.False(t, msg.IsRead)
		}
	}

	// Second call finds nothing unread and is still fine.
	require.Equal(t, 0, st.MarkMessagesRead("user_a", "user_b"))
}

func TestCreateMessage_Validation(t *testing.T) {
	st := store.New()

	_, err := st.CreateMessage(store.CreateMessage{FromUserID: "user_a", ToUserID: "user_b"})
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = st.CreateMessage(store.CreateMessage{FromUserID: "user_a", Text: "hi"})
	require.ErrorIs(t, err, store.ErrValidation)
}
