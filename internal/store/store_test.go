package store_test

import (
	"errors"
	"testing"

	"github.com/feedback-dev/feedback/internal/models"
	"github.com/feedback-dev/feedback/internal/store"
	"github.com/feedback-dev/feedback/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateUserDuplicateUsername(t *testing.T) {
	testutil.SetupTestDB(t)
	testutil.CreateTestUser(t, "alice", "alice@example.com")

	dup, err := models.Register("alice", "otherpass", "other@example.com", "Other", "Person")
	require.NoError(t, err)

	err = store.CreateUser(&dup)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "expected a uniqueness conflict, got %v", err)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	testutil.SetupTestDB(t)
	testutil.CreateTestUser(t, "alice", "alice@example.com")

	dup, err := models.Register("someone", "otherpass", "alice@example.com", "Other", "Person")
	require.NoError(t, err)

	err = store.CreateUser(&dup)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "expected a uniqueness conflict, got %v", err)
}

func TestAuthenticate(t *testing.T) {
	testutil.SetupTestDB(t)
	testutil.CreateTestUser(t, "alice", "alice@example.com")

	user := store.Authenticate("alice", testutil.TestPassword)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	// Wrong password and unknown username are indistinguishable.
	assert.Nil(t, store.Authenticate("alice", "wrongpass"))
	assert.Nil(t, store.Authenticate("nobody", testutil.TestPassword))
}

func TestFeedbackRoundTrip(t *testing.T) {
	testutil.SetupTestDB(t)
	testutil.CreateTestUser(t, "alice", "alice@example.com")

	feedback := models.Feedback{Title: "Hi", Content: "Hello", Username: "alice"}
	require.NoError(t, store.CreateFeedback(&feedback))
	require.NotZero(t, feedback.ID)

	require.NoError(t, store.UpdateFeedback(feedback.ID, "Updated", "New content"))

	got, err := store.GetFeedback(feedback.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Title)
	assert.Equal(t, "New content", got.Content)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, store.DeleteFeedback(feedback.ID))

	_, err = store.GetFeedback(feedback.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListFeedbackByUsername(t *testing.T) {
	testutil.SetupTestDB(t)
	testutil.CreateTestUser(t, "alice", "alice@example.com")
	testutil.CreateTestUser(t, "bob", "bob@example.com")

	testutil.CreateTestFeedback(t, "alice", "First", "one")
	testutil.CreateTestFeedback(t, "alice", "Second", "two")
	testutil.CreateTestFeedback(t, "bob", "Bobs", "three")

	list, err := store.ListFeedbackByUsername("alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Title)
	assert.Equal(t, "Second", list[1].Title)
}

func TestDeleteUserCascadesFeedback(t *testing.T) {
	testutil.SetupTestDB(t)
	testutil.CreateTestUser(t, "alice", "alice@example.com")
	testutil.CreateTestFeedback(t, "alice", "Hi", "Hello")
	testutil.CreateTestFeedback(t, "alice", "Bye", "Goodbye")

	require.NoError(t, store.DeleteUser("alice"))

	_, err := store.GetUser("alice")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	list, err := store.ListFeedbackByUsername("alice")
	require.NoError(t, err)
	assert.Empty(t, list, "cascade delete must remove owned feedback")
}
