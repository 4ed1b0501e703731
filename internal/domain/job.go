package domain

import (
	"context"
	"time"
)

type Job struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    *string   `json:"requirements"`
	SalaryMin       *int      `json:"salary_min"`
	SalaryMax       *int      `json:"salary_max"`
	Location        *string   `json:"location"`
	EmploymentType  *string   `json:"employment_type"`
	ExperienceLevel *string   `json:"experience_level"`
	Industry        *string   `json:"industry"`
	CompanyName     string    `json:"company_name"`
	ContactEmail    string    `json:"contact_email"`
	ContactPhone    *string   `json:"contact_phone"`
	IsActive        bool      `json:"is_active"`
	Featured        bool      `json:"featured"`
	Language        string    `json:"language"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type JobInput struct {
	Title           string  `json:"title" binding:"required" validate:"required"`
	Description     string  `json:"description" binding:"required" validate:"required"`
	Requirements    *string `json:"requirements"`
	SalaryMin       *int    `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *int    `json:"salary_max" validate:"omitempty,gte=0"`
	Location        *string `json:"location"`
	EmploymentType  *string `json:"employment_type"`
	ExperienceLevel *string `json:"experience_level"`
	Industry        *string `json:"industry"`
	CompanyName     string  `json:"company_name" binding:"required" validate:"required"`
	ContactEmail    string  `json:"contact_email" binding:"required,email" validate:"required,email"`
	ContactPhone    *string `json:"contact_phone" validate:"omitempty,valid_phone"`
	Featured        bool    `json:"featured"`
	Language        string  `json:"language"`
}

// JobFilter narrows a job listing. Clause order in the store layer is
// fixed: active, then featured, then industry.
type JobFilter struct {
	ActiveOnly   bool
	FeaturedOnly bool
	Industry     string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, filter JobFilter, page Page) ([]Job, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, in JobInput) (*Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, error)
	FeaturedJobs(ctx context.Context, limit int) ([]Job, error)
	ApplyToJob(ctx context.Context, jobID int64, in ApplyInput) (*JobApplication, error)
	GetApplication(ctx context.Context, id int64) (*JobApplication, error)
	ListApplications(ctx context.Context, jobID int64, limit, offset int) ([]JobApplication, error)
}
