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

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
	defaultLang   string
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, validate *validator.Validate, defaultLang string) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		validate:      validate,
		defaultLang:   defaultLang,
	}
}

func (uc *candidateUsecase) CreateCandidate(ctx context.Context, in domain.CandidateInput) (*domain.Candidate, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)

	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	c := &domain.Candidate{
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           in.Phone,
		ResumeURL:       in.ResumeURL,
		Skills:          in.Skills,
		ExperienceYears: in.ExperienceYears,
		CurrentPosition: in.CurrentPosition,
		DesiredPosition: in.DesiredPosition,
		DesiredSalary:   in.DesiredSalary,
		Location:        in.Location,
		Language:        in.Language,
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.Language == "" {
		c.Language = uc.defaultLang
	}

	if err := uc.candidateRepo.Create(ctx, c); err != nil {
		return nil, storeError(err)
	}
	return c, nil
}

func (uc *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	c, err := uc.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, storeError(err)
	}
	return c, nil
}

func (uc *candidateUsecase) FindCandidateByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperror.BadRequest("email is required")
	}
	c, err := uc.candidateRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, storeError(err)
	}
	return c, nil
}

func (uc *candidateUsecase) ListCandidates(ctx context.Context, filter domain.CandidateFilter, limit, offset int) ([]domain.Candidate, error) {
	page, err := domain.NewPage(limit, offset)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	candidates, err := uc.candidateRepo.Fetch(ctx, filter, page)
	if err != nil {
		return nil, storeError(err)
	}
	return candidates, nil
}
