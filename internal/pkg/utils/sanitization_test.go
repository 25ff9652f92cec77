package utils

import (
	"testing"
	"vitaliv-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "  TEST@EXAMPLE.COM  ",
			Username: "tester1",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "test@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Password Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:          "test@example.com",
			Username:       "  tester1  ",
			Password:       "  Secret#123  ",
			RetypePassword: "  Secret#123  ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "tester1", request.Username, "username should be trimmed")
		assert.Equal(t, "Secret#123", request.Password, "password should be trimmed")
		assert.Equal(t, "Secret#123", request.RetypePassword, "retype password should be trimmed")
	})
}

func TestSanitizeCreateLinkRequest(t *testing.T) {
	request := &requests.CreateLink{
		Title: "  Liver Diet Guide  ",
		URL:   "  https://example.org/guide  ",
	}

	SanitizeCreateLinkRequest(request)

	assert.Equal(t, "Liver Diet Guide", request.Title, "title should be trimmed")
	assert.Equal(t, "https://example.org/guide", request.URL, "url should be trimmed")
}
