package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/feedback-dev/feedback/internal/auth"
	"github.com/feedback-dev/feedback/internal/forms"
	"github.com/feedback-dev/feedback/internal/models"
	"github.com/feedback-dev/feedback/internal/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	Domain = os.Getenv("DOMAIN")
)

func setSessionCookie(ctx *gin.Context, username string) error {
	token, err := auth.GenerateSessionToken(username)

	if err != nil {
		return err
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   int(auth.MaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func clearSessionCookie(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   Domain,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func Home(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, "/register")
}

func renderRegister(ctx *gin.Context, form forms.RegisterForm, errs forms.Errors) {
	ctx.HTML(http.StatusOK, "register.html", gin.H{
		"Form":   form,
		"Errors": errs,
	})
}

func ShowRegister(ctx *gin.Context) {
	renderRegister(ctx, forms.RegisterForm{}, forms.Errors{})
}

func HandleRegister(ctx *gin.Context) {
	var form forms.RegisterForm

	if err := ctx.ShouldBind(&form); err != nil {
		log.Printf("Failed to bind register form: %v", err)
		ctx.String(http.StatusBadRequest, "Invalid request")
		return
	}

	errs := forms.Validate(form)

	if errs.Any() {
		renderRegister(ctx, form, errs)
		return
	}

	user, err := models.Register(form.Username, form.Password, form.Email, form.FirstName, form.LastName)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := store.CreateUser(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			errs.Add("username", "Username taken, please pick another one.")
			renderRegister(ctx, form, errs)
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := setSessionCookie(ctx, user.Username); err != nil {
		log.Printf("Failed to sign session token: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Redirect(http.StatusFound, "/users/"+user.Username)
}

func renderLogin(ctx *gin.Context, form forms.LoginForm, errs forms.Errors) {
	ctx.HTML(http.StatusOK, "login.html", gin.H{
		"Form":   form,
		"Errors": errs,
	})
}

func ShowLogin(ctx *gin.Context) {
	renderLogin(ctx, forms.LoginForm{}, forms.Errors{})
}

func HandleLogin(ctx *gin.Context) {
	var form forms.LoginForm

	if err := ctx.ShouldBind(&form); err != nil {
		log.Printf("Failed to bind login form: %v", err)
		ctx.String(http.StatusBadRequest, "Invalid request")
		return
	}

	errs := forms.Validate(form)

	if errs.Any() {
		renderLogin(ctx, form, errs)
		return
	}

	// One generic message for unknown username and wrong password alike.
	user := store.Authenticate(form.Username, form.Password)

	if user == nil {
		errs.Add("username", "Invalid username or password.")
		renderLogin(ctx, form, errs)
		return
	}

	if err := setSessionCookie(ctx, user.Username); err != nil {
		log.Printf("Failed to sign session token: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Redirect(http.StatusFound, "/users/"+user.Username)
}

func Logout(ctx *gin.Context) {
	clearSessionCookie(ctx)
	ctx.Redirect(http.StatusFound, "/")
}
