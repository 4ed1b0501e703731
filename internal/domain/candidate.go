package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	ResumeURL       *string   `json:"resume_url"`
	Skills          []string  `json:"skills"`
	ExperienceYears *int      `json:"experience_years"`
	CurrentPosition *string   `json:"current_position"`
	DesiredPosition *string   `json:"desired_position"`
	DesiredSalary   *int      `json:"desired_salary"`
	Location        *string   `json:"location"`
	Language        string    `json:"language"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CandidateInput struct {
	FullName        string   `json:"full_name" binding:"required" validate:"required,valid_name"`
	Email           string   `json:"email" binding:"required,email" validate:"required,email"`
	Phone           *string  `json:"phone" validate:"omitempty,valid_phone"`
	ResumeURL       *string  `json:"resume_url" validate:"omitempty,url"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0"`
	CurrentPosition *string  `json:"current_position"`
	DesiredPosition *string  `json:"desired_position"`
	DesiredSalary   *int     `json:"desired_salary" validate:"omitempty,gte=0"`
	Location        *string  `json:"location"`
	Language        string   `json:"language"`
}

// CandidateFilter narrows a candidate listing. Clause order in the
// store layer is fixed: availability, then skills overlap, then the
// experience threshold.
type CandidateFilter struct {
	AvailableOnly bool
	Skills        []string
	ExperienceMin *int
}

type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	Fetch(ctx context.Context, filter CandidateFilter, page Page) ([]Candidate, error)
}

type CandidateUsecase interface {
	CreateCandidate(ctx context.Context, in CandidateInput) (*Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*Candidate, error)
	FindCandidateByEmail(ctx context.Context, email string) (*Candidate, error)
	ListCandidates(ctx context.Context, filter CandidateFilter, limit, offset int) ([]Candidate, error)
}
