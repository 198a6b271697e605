package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

func TestCreateSession(t *testing.T) {
	st := store.New()

	session, err := st.CreateSession(store.CreateSession{
		TeacherID: "user_a",
		StudentID: "user_b",
		SkillID:   "skill_x",
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)
	require.Contains(t, session.ID, "session_")
	require.Equal(t, model.StatusPending, session.Status)
}

func TestCreateSession_TeacherEqualsStudent(t *testing.T) {
	st := store.New()

	_, err := st.CreateSession(store.CreateSession{
		TeacherID: "user_a",
		StudentID: "user_a",
		SkillID:   "skill_x",
	})
	require.ErrorIs(t, err, store.ErrValidation)
}

func TestSessionsByUser_MatchesEitherRole(t *testing.T) {
	st := store.New()

	mk := func(teacher, student string) {
		_, err := st.CreateSession(store.CreateSession{TeacherID: teacher, StudentID: student, SkillID: "skill_x"})
		require.NoError(t, err)
	}
	mk("user_a", "user_b")
	mk("user_c", "user_a")
	mk("user_b", "user_c")

	sessions := st.SessionsByUser("user_a")
	require.Len(t, sessions, 2)
	require.Empty(t, st.SessionsByUser("user_ghost"))
}

func TestUpdateSession_Status(t *testing.T) {
	st := store.New()

	session, err := st.CreateSession(store.CreateSession{TeacherID: "user_a", StudentID: "user_b", SkillID: "skill_x"})
	require.NoError(t, err)

	confirmed := model.StatusConfirmed
	updated, err := st.UpdateSession(session.ID, store.SessionUpdate{Status: &confirmed})
	require.NoError(t, err)
	require.Equal(t, model.StatusConfirmed, updated.Status)
	require.Equal(t, session.CreatedAt, updated.CreatedAt)

	bogus := model.SessionStatus("Postponed")
	_, err = st.UpdateSession(session.ID, store.SessionUpdate{Status: &bogus})
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = st.UpdateSession("session_missing", store.SessionUpdate{Status: &confirmed})
	require.ErrorIs(t, err, store.ErrNotFound)
}
