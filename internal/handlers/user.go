package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/feedback-dev/feedback/internal/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ShowUser renders the profile and every feedback record the user owns. The
// ownership guard has already matched the session to the path username.
func ShowUser(ctx *gin.Context) {
	username := ctx.Param("username")

	user, err := store.GetUser(username)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, "Not Found")
		} else {
			log.Printf("Failed to fetch user: %v", err)
			ctx.String(http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	feedback, err := store.ListFeedbackByUsername(username)

	if err != nil {
		log.Printf("Failed to list feedback: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.HTML(http.StatusOK, "user.html", gin.H{
		"User":     user,
		"Feedback": feedback,
	})
}

// DeleteUser removes the account; owned feedback goes with it via the
// store's cascade.
func DeleteUser(ctx *gin.Context) {
	username := ctx.Param("username")

	if err := store.DeleteUser(username); err != nil {
		log.Printf("Failed to delete user: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	clearSessionCookie(ctx)
	ctx.Redirect(http.StatusFound, "/")
}
