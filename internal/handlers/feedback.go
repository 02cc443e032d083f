package handlers

import (
	"log"
	"net/http"

	"github.com/feedback-dev/feedback/internal/forms"
	"github.com/feedback-dev/feedback/internal/models"
	"github.com/feedback-dev/feedback/internal/store"
	"github.com/feedback-dev/feedback/internal/types"
	"github.com/gin-gonic/gin"
)

// resolvedFeedback reads the record the ownership guard loaded and stashed
// for this request.
func resolvedFeedback(ctx *gin.Context) (*models.Feedback, bool) {
	value, exists := ctx.Get(types.ContextFeedbackKey)

	if !exists {
		return nil, false
	}

	feedback, ok := value.(*models.Feedback)

	return feedback, ok
}

func renderAddFeedback(ctx *gin.Context, form forms.FeedbackForm, errs forms.Errors) {
	ctx.HTML(http.StatusOK, "feedback_add.html", gin.H{
		"Username": ctx.Param("username"),
		"Form":     form,
		"Errors":   errs,
	})
}

func ShowAddFeedback(ctx *gin.Context) {
	renderAddFeedback(ctx, forms.FeedbackForm{}, forms.Errors{})
}

func HandleAddFeedback(ctx *gin.Context) {
	var form forms.FeedbackForm

	if err := ctx.ShouldBind(&form); err != nil {
		log.Printf("Failed to bind feedback form: %v", err)
		ctx.String(http.StatusBadRequest, "Invalid request")
		return
	}

	errs := forms.Validate(form)

	if errs.Any() {
		renderAddFeedback(ctx, form, errs)
		return
	}

	username := ctx.Param("username")

	feedback := models.Feedback{
		Title:    form.Title,
		Content:  form.Content,
		Username: username,
	}

	if err := store.CreateFeedback(&feedback); err != nil {
		log.Printf("Failed to create feedback: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Redirect(http.StatusFound, "/users/"+username)
}

func renderUpdateFeedback(ctx *gin.Context, feedback *models.Feedback, form forms.FeedbackForm, errs forms.Errors) {
	ctx.HTML(http.StatusOK, "feedback_update.html", gin.H{
		"ID":       feedback.ID,
		"Username": feedback.Username,
		"Form":     form,
		"Errors":   errs,
	})
}

func ShowUpdateFeedback(ctx *gin.Context) {
	feedback, ok := resolvedFeedback(ctx)

	if !ok {
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	form := forms.FeedbackForm{
		Title:   feedback.Title,
		Content: feedback.Content,
	}

	renderUpdateFeedback(ctx, feedback, form, forms.Errors{})
}

func HandleUpdateFeedback(ctx *gin.Context) {
	feedback, ok := resolvedFeedback(ctx)

	if !ok {
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var form forms.FeedbackForm

	if err := ctx.ShouldBind(&form); err != nil {
		log.Printf("Failed to bind feedback form: %v", err)
		ctx.String(http.StatusBadRequest, "Invalid request")
		return
	}

	errs := forms.Validate(form)

	if errs.Any() {
		renderUpdateFeedback(ctx, feedback, form, errs)
		return
	}

	if err := store.UpdateFeedback(feedback.ID, form.Title, form.Content); err != nil {
		log.Printf("Failed to update feedback: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Redirect(http.StatusFound, "/users/"+feedback.Username)
}

func HandleDeleteFeedback(ctx *gin.Context) {
	feedback, ok := resolvedFeedback(ctx)

	if !ok {
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := store.DeleteFeedback(feedback.ID); err != nil {
		log.Printf("Failed to delete feedback: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Redirect(http.StatusFound, "/users/"+feedback.Username)
}
