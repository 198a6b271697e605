package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VinaySai005/SkillSwap-dt/internal/match"
	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

func strPtr(s string) *string { return &s }

func setupUser(t *testing.T, st *store.Store, name, email string, location *string) *model.User {
	t.Helper()
	user, err := st.CreateUser(store.CreateUser{Name: name, Email: email, PasswordHash: "hash", Location: location})
	require.NoError(t, err)
	return user
}

func addInterests(t *testing.T, st *store.Store, userID string, tagSets ...[]string) {
	t.Helper()
	interests := make([]model.Skill, 0, len(tagSets))
	for i, tags := range tagSets {
		interests = append(interests, model.Skill{Title: fmt.Sprintf("interest-%d", i), Tags: tags})
	}
	_, err := st.UpdateUser(userID, store.UserUpdate{LearningInterests: interests})
	require.NoError(t, err)
}

func addSkill(t *testing.T, st *store.Store, ownerID string, tags []string) {
	t.Helper()
	_, err := st.CreateSkill(store.CreateSkill{
		OwnerID:     ownerID,
		Title:       "skill",
		Description: "desc",
		Level:       model.LevelExpert,
		Tags:        tags,
	})
	require.NoError(t, err)
}

func TestMatchesFor_InterestPlusLocation(t *testing.T) {
	st := store.New()
	engine := match.NewEngine(st)

	a := setupUser(t, st, "A", "a@example.com", strPtr("Remote"))
	b := setupUser(t, st, "B", "b@example.com", strPtr("Remote"))

	addInterests(t, st, a.ID, []string{"Hindi"})
	addSkill(t, st, b.ID, []string{"Hindi", "Conversation"})

	matches, err := engine.MatchesFor(a.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, b.ID, matches[0].User.ID)
	require.Equal(t, 15, matches[0].Score)
}

func TestMatchesFor_ReciprocalAddsTen(t *testing.T) {
	st := store.New()
	engine := match.NewEngine(st)

	a := setupUser(t, st, "A", "a@example.com", strPtr("Remote"))
	b := setupUser(t, st, "B", "b@example.com", strPtr("Remote"))

	addInterests(t, st, a.ID, []string{"Hindi"})
	addSkill(t, st, b.ID, []string{"Hindi", "Conversation"})

	// B also wants to learn something A teaches.
	addSkill(t, st, a.ID, []string{"Go"})
	addInterests(t, st, b.ID, []string{"Go", "Backend"})

	matches, err := engine.MatchesFor(a.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, 25, matches[0].Score)
}

func TestMatchesFor_OncePerInterest(t *testing.T) {
	st := store.New()
	engine := match.NewEngine(st)

	a := setupUser(t, st, "A", "a@example.com", nil)
	b := setupUser(t, st, "B", "b@example.com", nil)

	// One interest overlapping two of B's skills still scores once.
	addInterests(t, st, a.ID, []string{"Hindi"})
	addSkill(t, st, b.ID, []string{"Hindi"})
	addSkill(t, st, b.ID, []string{"Hindi", "Conversation"})

	matches, err := engine.MatchesFor(a.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, 10, matches[0].Score)
}

func TestMatchesFor_ScoreClampsAtHundred(t *testing.T) {
	st := store.New()
	engine := match.NewEngine(st)

	a := setupUser(t, st, "A", "a@example.com", strPtr("Remote"))
	b := setupUser(t, st, "B", "b@example.com", strPtr("Remote"))

	tagSets := make([][]string, 0, 12)
	for i := 0; i < 12; i++ {
		tag := fmt.Sprintf("topic-%d", i)
		tagSets = append(tagSets, []string{tag})
		addSkill(t, st, b.ID, []string{tag})
	}
	addInterests(t, st, a.ID, tagSets...)

	matches, err := engine.MatchesFor(a.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, 100, matches[0].Score)
}

func TestMatchesFor_ZeroScoreExcluded(t *testing.T) {
	st := store.New()
	engine := match.NewEngine(st)

	a := setupUser(t, st, "A", "a@example.com", strPtr("Berlin"))
	setupUser(t, st, "B", "b@example.com", strPtr("Lisbon"))

	addInterests(t, st, a.ID, []string{"Hindi"})

	matches, err := engine.MatchesFor(a.ID)
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestMatchesFor_NeverMatchesSelf(t *testing.T) {
	st := store.New()
	engine := match.NewEngine(st)

	a := setupUser(t, st, "A", "a@example.com", strPtr("Remote"))
	// A teaches exactly what A wants to learn.
	addInterests(t, st, a.ID, []string{"Hindi"})
	addSkill(t, st, a.ID, []string{"Hindi"})

	matches, err := engine.MatchesFor(a.ID)
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestMatchesFor_EmptyLocationNoBonus(t *testing.T) {
	st := store.New()
	engine := match.NewEngine(st)

	a := setupUser(t, st, "A", "a@example.com", strPtr(""))
	b := setupUser(t, st, "B", "b@example.com", strPtr(""))
	addInterests(t, st, a.ID, []string{"Hindi"})
	addSkill(t, st, b.ID, []string{"Hindi"})

	matches, err := engine.MatchesFor(a.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, 10, matches[0].Score)
}

func TestMatchesFor_SortedDescTiesByCreationOrder(t *testing.T) {
	st := store.New()
	engine := match.NewEngine(st)

	a := setupUser(t, st, "A", "a@example.com", nil)
	addInterests(t, st, a.ID, []string{"Hindi"}, []string{"Go"})

	weak := setupUser(t, st, "Weak", "weak@example.com", nil)
	addSkill(t, st, weak.ID, []string{"Hindi"})

	strong := setupUser(t, st, "Strong", "strong@example.com", nil)
	addSkill(t, st, strong.ID, []string{"Hindi"})
	addSkill(t, st, strong.ID, []string{"Go"})

	tied := setupUser(t, st, "Tied", "tied@example.com", nil)
	addSkill(t, st, tied.ID, []string{"Go"})

	matches, err := engine.MatchesFor(a.ID)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	require.Equal(t, strong.ID, matches[0].User.ID)
	require.Equal(t, 20, matches[0].Score)
	// Weak and Tied both score 10; creation order breaks the tie.
	require.Equal(t, weak.ID, matches[1].User.ID)
	require.Equal(t, tied.ID, matches[2].User.ID)

	// Same state, same result.
	again, err := engine.MatchesFor(a.ID)
	require.NoError(t, err)
	require.Equal(t, matches, again)
}

func TestMatchesFor_UnknownSeeker(t *testing.T) {
	st := store.New()
	engine := match.NewEngine(st)

	_, err := engine.MatchesFor("user_ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}
