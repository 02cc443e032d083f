// Package forms binds and validates form submissions explicitly. Every
// handler gets the same shape back: the typed form plus an Errors map keyed
// by field name, which templates render inline next to each input.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type RegisterForm struct {
	Username  string `form:"username" validate:"required,max=20"`
	Password  string `form:"password" validate:"required,min=8"`
	Email     string `form:"email" validate:"required,email,max=50"`
	FirstName string `form:"first_name" validate:"required,max=30"`
	LastName  string `form:"last_name" validate:"required,max=50"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required,min=8"`
}

type FeedbackForm struct {
	Title   string `form:"title" validate:"required,max=100"`
	Content string `form:"content" validate:"required"`
}

// Errors maps a field name to its validation messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return v
}

// Validate runs the struct's validate tags and returns field-keyed messages.
// An empty map means the form is valid.
func Validate(form interface{}) Errors {
	errs := Errors{}

	err := validate.Struct(form)

	if err == nil {
		return errs
	}

	validationErrors, ok := err.(validator.ValidationErrors)

	if !ok {
		errs.Add("form", "Invalid submission.")
		return errs
	}

	for _, fieldErr := range validationErrors {
		errs.Add(fieldErr.Field(), message(fieldErr))
	}

	return errs
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "min":
		return fmt.Sprintf("Field must be at least %s characters long.", err.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", err.Param())
	default:
		return "Invalid value."
	}
}
