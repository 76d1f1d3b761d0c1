package auth

import "github.com/heartmarshall/calorie-backend/internal/domain"

// AuthResult is returned by the login operations and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
	// Created is true when the login registered a new user.
	Created bool
}
