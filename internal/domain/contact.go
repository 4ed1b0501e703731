package domain

import (
	"context"
	"time"
)

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	Phone       *string   `json:"phone"`
	Company     *string   `json:"company"`
	ServiceType *string   `json:"service_type"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactInput is the typed payload for a contact form submission.
type ContactInput struct {
	Name        string  `json:"name" binding:"required" validate:"required,valid_name"`
	Email       string  `json:"email" binding:"required,email" validate:"required,email"`
	Message     string  `json:"message" binding:"required" validate:"required"`
	Phone       *string `json:"phone" validate:"omitempty,valid_phone"`
	Company     *string `json:"company"`
	ServiceType *string `json:"service_type"`
	Language    string  `json:"language"`
}

type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	GetByID(ctx context.Context, id int64) (*ContactMessage, error)
	GetByEmail(ctx context.Context, email string) (*ContactMessage, error)
	Fetch(ctx context.Context, page Page) ([]ContactMessage, error)
}

type ContactUsecase interface {
	Submit(ctx context.Context, in ContactInput) (*ContactMessage, error)
	GetMessage(ctx context.Context, id int64) (*ContactMessage, error)
	LatestMessageFrom(ctx context.Context, email string) (*ContactMessage, error)
	ListMessages(ctx context.Context, limit, offset int) ([]ContactMessage, error)
}
