package usecase

import (
	"context"
	"errors"
	"strings"

	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/apperror"
	"hirehand-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const featuredDefaultLimit = 10

type jobUsecase struct {
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
	validate        *validator.Validate
	defaultLang     string
}

func NewJobUsecase(jobRepo domain.JobRepository, applicationRepo domain.ApplicationRepository, validate *validator.Validate, defaultLang string) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		validate:        validate,
		defaultLang:     defaultLang,
	}
}

func (uc *jobUsecase) CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)

	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return nil, apperror.BadRequest("salary_min cannot exceed salary_max")
	}

	job := &domain.Job{
		Title:           in.Title,
		Description:     in.Description,
		Requirements:    in.Requirements,
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		Location:        in.Location,
		EmploymentType:  in.EmploymentType,
		ExperienceLevel: in.ExperienceLevel,
		Industry:        in.Industry,
		CompanyName:     in.CompanyName,
		ContactEmail:    in.ContactEmail,
		ContactPhone:    in.ContactPhone,
		Featured:        in.Featured,
		Language:        in.Language,
	}
	if job.Language == "" {
		job.Language = uc.defaultLang
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, storeError(err)
	}
	return job, nil
}

func (uc *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, storeError(err)
	}
	return job, nil
}

func (uc *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, error) {
	page, err := domain.NewPage(limit, offset)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	jobs, err := uc.jobRepo.Fetch(ctx, filter, page)
	if err != nil {
		return nil, storeError(err)
	}
	return jobs, nil
}

func (uc *jobUsecase) FeaturedJobs(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit == 0 {
		limit = featuredDefaultLimit
	}
	return uc.ListJobs(ctx, domain.JobFilter{ActiveOnly: true, FeaturedOnly: true}, limit, 0)
}

func (uc *jobUsecase) GetApplication(ctx context.Context, id int64) (*domain.JobApplication, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, storeError(err)
	}
	return app, nil
}

func (uc *jobUsecase) ListApplications(ctx context.Context, jobID int64, limit, offset int) ([]domain.JobApplication, error) {
	page, err := domain.NewPage(limit, offset)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, storeError(err)
	}
	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID, page)
	if err != nil {
		return nil, storeError(err)
	}
	return apps, nil
}

// ApplyToJob files an application for an active job. Duplicate
// applications are rejected by the store's unique pair constraint, not
// by a lookup beforehand.
func (uc *jobUsecase) ApplyToJob(ctx context.Context, jobID int64, in domain.ApplyInput) (*domain.JobApplication, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, storeError(err)
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("Cannot apply to inactive job")
	}

	app := &domain.JobApplication{
		JobID:       jobID,
		CandidateID: in.CandidateID,
		Status:      domain.ApplicationStatusPending,
		CoverLetter: in.CoverLetter,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, storeError(err)
	}
	return app, nil
}
