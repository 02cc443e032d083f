package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie; it carries a signed token with a single
// username claim.
const CookieName = "session"

// MaxAge bounds both the cookie and the token expiry.
const MaxAge = 7 * 24 * time.Hour

var sessionSecret string

func InitSessionSecret() error {
	sessionSecret = os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET environment variable is not set")
	}
	return nil
}

func GenerateSessionToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(MaxAge).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionSecret))
}

// VerifySessionToken returns the username carried by a valid token.
func VerifySessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(sessionSecret), nil
	})

	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return "", fmt.Errorf("invalid session claims")
	}

	username, ok := claims["username"].(string)

	if !ok || username == "" {
		return "", fmt.Errorf("no username in session claims")
	}

	return username, nil
}
