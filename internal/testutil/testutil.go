// Package testutil wires an in-memory database and session helpers for
// handler and store tests.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/feedback-dev/feedback/db"
	"github.com/feedback-dev/feedback/internal/auth"
	"github.com/feedback-dev/feedback/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("SESSION_SECRET", "test-session-secret")
	if err := auth.InitSessionSecret(); err != nil {
		panic(err)
	}
}

// SetupTestDB points the global handle at a fresh in-memory SQLite database
// with foreign keys on, so cascade deletes behave like the real store.
func SetupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	db.DB = gdb

	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// TestPassword is the password every test user is created with.
const TestPassword = "secret123"

// CreateTestUser registers and persists a user.
func CreateTestUser(t *testing.T, username, email string) *models.User {
	t.Helper()

	user, err := models.Register(username, TestPassword, email, "Test", "User")
	if err != nil {
		t.Fatalf("Failed to register test user: %v", err)
	}

	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return &user
}

// CreateTestFeedback persists a feedback record owned by username.
func CreateTestFeedback(t *testing.T, username, title, content string) *models.Feedback {
	t.Helper()

	feedback := models.Feedback{
		Title:    title,
		Content:  content,
		Username: username,
	}

	if err := db.DB.Create(&feedback).Error; err != nil {
		t.Fatalf("Failed to create test feedback: %v", err)
	}

	return &feedback
}

// SessionCookie returns a signed session cookie for username.
func SessionCookie(t *testing.T, username string) *http.Cookie {
	t.Helper()

	token, err := auth.GenerateSessionToken(username)
	if err != nil {
		t.Fatalf("Failed to sign session token: %v", err)
	}

	return &http.Cookie{Name: auth.CookieName, Value: token}
}

// GetRequest builds a GET request carrying the given cookies.
func GetRequest(path string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// PostForm builds a form-encoded POST request carrying the given cookies.
func PostForm(path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}
