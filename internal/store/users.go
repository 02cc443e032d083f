// Package store holds the plain persistence operations for users and
// feedback. It performs no authorization; ownership is enforced by the
// middleware guard before a handler ever calls in here.
package store

import (
	"github.com/feedback-dev/feedback/db"
	"github.com/feedback-dev/feedback/internal/models"
)

func CreateUser(user *models.User) error {
	return db.DB.Create(user).Error
}

func GetUser(username string) (*models.User, error) {
	var user models.User

	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteUser removes the user row; owned feedback goes with it via the
// store-level cascade, not an application transaction.
func DeleteUser(username string) error {
	return db.DB.Where("username = ?", username).Delete(&models.User{}).Error
}

// Authenticate returns the user when the username exists and the password
// matches, nil otherwise. Callers cannot tell an unknown username from a
// wrong password.
func Authenticate(username, password string) *models.User {
	user, err := GetUser(username)

	if err != nil {
		return nil
	}

	if !user.CheckPassword(password) {
		return nil
	}

	return user
}
