package domain

import "time"

// User represents a dashboard operator account.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GoogleUserInfo holds the profile fields returned by Google's userinfo
// endpoint during sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
