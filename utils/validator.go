// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"peer-review-api/models"
)

// FieldError mirrors the itemized validation envelope returned to clients.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidateRegistration checks the account fields and returns every failed
// field. Reviewers must declare at least one expertise tag.
func ValidateRegistration(firstName, lastName, email, password, userType, institution string, expertise []string) []FieldError {
	var fieldErrors []FieldError

	if len(strings.TrimSpace(firstName)) < 2 {
		fieldErrors = append(fieldErrors, FieldError{"first_name", "First name must be at least 2 characters long"})
	}
	if len(strings.TrimSpace(lastName)) < 2 {
		fieldErrors = append(fieldErrors, FieldError{"last_name", "Last name must be at least 2 characters long"})
	}
	if !ValidateEmail(email) {
		fieldErrors = append(fieldErrors, FieldError{"email", "Please enter a valid email"})
	}
	if len(password) < 8 {
		fieldErrors = append(fieldErrors, FieldError{"password", "Password must be at least 8 characters long"})
	}

	switch userType {
	case models.UserTypeAuthor, models.UserTypeReviewer, models.UserTypeEditor:
	default:
		fieldErrors = append(fieldErrors, FieldError{"user_type", "Invalid user type"})
	}

	if strings.TrimSpace(institution) == "" {
		fieldErrors = append(fieldErrors, FieldError{"institution", "Institution is required"})
	}

	if userType == models.UserTypeReviewer {
		tags := 0
		for _, tag := range expertise {
			if strings.TrimSpace(tag) != "" {
				tags++
			}
		}
		if tags == 0 {
			fieldErrors = append(fieldErrors, FieldError{"expertise", "At least one area of expertise is required for reviewers"})
		}
	}

	return fieldErrors
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
