package services

import (
	"strings"

	"github.com/frabiasco/assenze/internal/models"
)

// NormalizeEmail canonicalizes an email for matching: user identity is
// case- and whitespace-insensitive everywhere in the app.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizePassword(password string) string {
	return strings.TrimSpace(password)
}

// FindUserByEmail resolves an identity by normalized email.
func FindUserByEmail(users []models.User, email string) (models.User, bool) {
	normalized := NormalizeEmail(email)
	for _, user := range users {
		if NormalizeEmail(user.Email) == normalized {
			return user, true
		}
	}
	return models.User{}, false
}

// CheckCredentials matches normalized email plus trimmed plaintext password
// against the stored users.
func CheckCredentials(users []models.User, email string, password string) (models.User, bool) {
	normalizedEmail := NormalizeEmail(email)
	normalizedPassword := NormalizePassword(password)
	for _, user := range users {
		if NormalizeEmail(user.Email) == normalizedEmail && NormalizePassword(user.Password) == normalizedPassword {
			return user, true
		}
	}
	return models.User{}, false
}
