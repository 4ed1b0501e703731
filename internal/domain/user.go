package domain

import (
	"context"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     *string   `json:"full_name"`
	Role         string    `json:"role"`
	Language     string    `json:"language"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterInput is the typed registration payload. The cleartext
// password never reaches a repository; the usecase hashes it first.
type RegisterInput struct {
	Username string  `json:"username" binding:"required" validate:"required,min=3,max=50"`
	Email    string  `json:"email" binding:"required,email" validate:"required,email"`
	Password string  `json:"password" binding:"required" validate:"required,min=6"`
	FullName *string `json:"full_name"`
	Language string  `json:"language"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context, page Page) ([]User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	// VerifyCredentials returns the user iff the password matches. On
	// any mismatch it fails identically for unknown usernames and wrong
	// passwords.
	VerifyCredentials(ctx context.Context, in LoginInput) (*User, error)
	GetProfile(ctx context.Context, id int64) (*User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]User, error)
}
