package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Auth errors
	ErrNoAccessToken = errors.New("login response carried no access token")
)
