package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/feedback-dev/feedback/internal/auth"
	"github.com/feedback-dev/feedback/internal/store"
	"github.com/feedback-dev/feedback/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrOwnerNotFound is returned by a resolver when the resource a request
// targets does not exist.
var ErrOwnerNotFound = errors.New("resource owner not found")

// OwnerResolver names the username that owns the resource a request targets.
type OwnerResolver func(ctx *gin.Context) (string, error)

// CurrentUser verifies the session cookie and, when it names a user that
// still exists, records that username in the request context. It never
// aborts; handlers and guards decide what an absent identity means.
func CurrentUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, err := ctx.Cookie(auth.CookieName)

		if err != nil || cookie == "" {
			ctx.Next()
			return
		}

		username, err := auth.VerifySessionToken(cookie)

		if err != nil {
			ctx.Next()
			return
		}

		// A stale cookie can outlive its account.
		if _, err := store.GetUser(username); err != nil {
			ctx.Next()
			return
		}

		ctx.Set(types.ContextUserKey, username)
		ctx.Next()
	}
}

// RequireOwner aborts with 401 unless the session's username equals the
// username the resolver reports for the targeted resource. A resource the
// resolver cannot find aborts with 404.
func RequireOwner(resolve OwnerResolver) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		current, exists := SessionUsername(ctx)

		if !exists {
			ctx.String(http.StatusUnauthorized, "Unauthorized")
			ctx.Abort()
			return
		}

		owner, err := resolve(ctx)

		if err != nil {
			if errors.Is(err, ErrOwnerNotFound) {
				ctx.String(http.StatusNotFound, "Not Found")
			} else {
				ctx.String(http.StatusInternalServerError, "Internal Server Error")
			}
			ctx.Abort()
			return
		}

		if owner != current {
			ctx.String(http.StatusUnauthorized, "Unauthorized")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

// SessionUsername reads the identity placed by CurrentUser, if any.
func SessionUsername(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return "", false
	}

	username, ok := value.(string)

	if !ok || username == "" {
		return "", false
	}

	return username, true
}

// PathUsername resolves the owner from a path parameter, for routes of the
// /users/:username family.
func PathUsername(param string) OwnerResolver {
	return func(ctx *gin.Context) (string, error) {
		username := ctx.Param(param)

		if username == "" {
			return "", ErrOwnerNotFound
		}

		return username, nil
	}
}

// FeedbackOwner loads the feedback named by the :id path parameter and
// resolves to its owning username. The loaded record is stashed in the
// request context so the handler does not query it twice.
func FeedbackOwner() OwnerResolver {
	return func(ctx *gin.Context) (string, error) {
		id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

		if err != nil {
			return "", ErrOwnerNotFound
		}

		feedback, err := store.GetFeedback(uint(id))

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrOwnerNotFound
			}
			return "", err
		}

		ctx.Set(types.ContextFeedbackKey, feedback)

		return feedback.Username, nil
	}
}
