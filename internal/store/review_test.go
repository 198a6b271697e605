package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

func TestCreateReview_RecomputesRating(t *testing.T) {
	st := store.New()
	asha := newUser(t, st, "Asha", "asha@example.com")
	ben := newUser(t, st, "Ben", "ben@example.com")

	_, err := st.CreateReview(store.CreateReview{FromUserID: ben.ID, ToUserID: asha.ID, SkillID: "skill_x", Rating: 5})
	require.NoError(t, err)
	_, err = st.CreateReview(store.CreateReview{FromUserID: ben.ID, ToUserID: asha.ID, SkillID: "skill_x", Rating: 3})
	require.NoError(t, err)

	fetched, err := st.UserByID(asha.ID)
	require.NoError(t, err)
	require.Equal(t, 4.0, fetched.Rating)
	require.Len(t, fetched.Reviews, 2)
}

func TestCreateReview_RatingIsFullHistoryMean(t *testing.T) {
	st := store.New()
	asha := newUser(t, st, "Asha", "asha@example.com")
	ben := newUser(t, st, "Ben", "ben@example.com")

	ratings := []int{5, 3, 4, 1, 2, 5, 5}
	total := 0
	for _, r := range ratings {
		total += r
		_, err := st.CreateReview(store.CreateReview{FromUserID: ben.ID, ToUserID: asha.ID, SkillID: "skill_x", Rating: r})
		require.NoError(t, err)

		fetched, err := st.UserByID(asha.ID)
		require.NoError(t, err)
		require.Equal(t, float64(total)/float64(len(fetched.Reviews)), fetched.Rating)
	}
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	st := store.New()

	for _, rating := range []int{0, 6, -1} {
		_, err := st.CreateReview(store.CreateReview{FromUserID: "user_a", ToUserID: "user_b", SkillID: "skill_x", Rating: rating})
		require.ErrorIs(t, err, store.ErrValidation)
	}

	// A rejected write leaves the collection untouched.
	require.Empty(t, st.ReviewsByUser("user_b"))
}

func TestCreateReview_MissingTargetUser(t *testing.T) {
	st := store.New()
	ben := newUser(t, st, "Ben", "ben@example.com")

	review, err := st.CreateReview(store.CreateReview{FromUserID: ben.ID, ToUserID: "user_ghost", SkillID: "skill_x", Rating: 5})
	require.NoError(t, err)

	// The review persists and is listable even though no mirror was updated.
	reviews := st.ReviewsByUser("user_ghost")
	require.Len(t, reviews, 1)
	require.Equal(t, review.ID, reviews[0].ID)
}

func TestReviewsByUser_OnlyReceived(t *testing.T) {
	st := store.New()
	asha := newUser(t, st, "Asha", "asha@example.com")
	ben := newUser(t, st, "Ben", "ben@example.com")

	_, err := st.CreateReview(store.CreateReview{FromUserID: ben.ID, ToUserID: asha.ID, SkillID: "skill_x", Rating: 4})
	require.NoError(t, err)
	_, err = st.CreateReview(store.CreateReview{FromUserID: asha.ID, ToUserID: ben.ID, SkillID: "skill_x", Rating: 2})
	require.NoError(t, err)

	received := st.ReviewsByUser(asha.ID)
	require.Len(t, received, 1)
	require.Equal(t, 4, received[0].Rating)
}
