package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// JobApplication links a candidate to a job. The (job_id, candidate_id)
// pair is unique at the store level.
type JobApplication struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"cover_letter"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ApplyInput struct {
	CandidateID int64   `json:"candidate_id" binding:"required" validate:"required,gt=0"`
	CoverLetter *string `json:"cover_letter"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	GetByJobID(ctx context.Context, jobID int64, page Page) ([]JobApplication, error)
}
