package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Username  string `gorm:"primaryKey;size:20"`
	Password  string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;size:50;not null"`
	FirstName string `gorm:"size:30;not null"`
	LastName  string `gorm:"size:50;not null"`

	// Relationships
	Feedback []Feedback `gorm:"foreignKey:Username;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Register hashes the password and returns an unpersisted User.
// Persisting it and handling uniqueness conflicts are the caller's job.
func Register(username, password, email, firstName, lastName string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return User{}, err
	}

	return User{
		Username:  username,
		Password:  string(hash),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// CheckPassword reports whether the supplied password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
