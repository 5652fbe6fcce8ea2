package helpers

import (
	"regexp"

	"github.com/joshua-takyi/cnnct/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func SuccessResponse(data interface{}, message string) models.ApiResponse {
	return models.SuccessResponse(data, message)
}

func ErrorResponse(err string) models.ApiResponse {
	return models.ErrorResponse(err)
}

func CountedResponse(data interface{}, count int) models.ApiResponse {
	return models.CountedResponse(data, count)
}

func TokenResponse(token, message string) models.ApiResponse {
	return models.TokenResponse(token, message)
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	return hasLower && hasUpper && hasNumber
}
