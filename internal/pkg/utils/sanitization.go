package utils

import (
	"strings"
	"vitaliv-service/internal/pkg/dto/requests"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
	input.RetypePassword = strings.TrimSpace(input.RetypePassword)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Fullname = strings.TrimSpace(input.Fullname)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeCreateChecklistItemRequest(input *requests.CreateChecklistItem) {
	input.Title = strings.TrimSpace(input.Title)
}

func SanitizeCreateLinkRequest(input *requests.CreateLink) {
	input.Title = strings.TrimSpace(input.Title)
	input.URL = strings.TrimSpace(input.URL)
}

func SanitizeUpdateLinkRequest(input *requests.UpdateLink) {
	input.Title = strings.TrimSpace(input.Title)
	input.URL = strings.TrimSpace(input.URL)
}
