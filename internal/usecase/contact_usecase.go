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

type contactUsecase struct {
	contactRepo domain.ContactRepository
	validate    *validator.Validate
	defaultLang string
}

func NewContactUsecase(contactRepo domain.ContactRepository, validate *validator.Validate, defaultLang string) domain.ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
		validate:    validate,
		defaultLang: defaultLang,
	}
}

// Submit validates the payload beyond the handler's binding checks and
// persists the message.
func (uc *contactUsecase) Submit(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	msg := &domain.ContactMessage{
		Name:        in.Name,
		Email:       in.Email,
		Message:     in.Message,
		Phone:       in.Phone,
		Company:     in.Company,
		ServiceType: in.ServiceType,
		Language:    in.Language,
	}
	if msg.Language == "" {
		msg.Language = uc.defaultLang
	}

	if err := uc.contactRepo.Create(ctx, msg); err != nil {
		return nil, storeError(err)
	}
	return msg, nil
}

func (uc *contactUsecase) GetMessage(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	msg, err := uc.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Message not found")
		}
		return nil, storeError(err)
	}
	return msg, nil
}

// LatestMessageFrom returns the most recent message sent from the
// given address.
func (uc *contactUsecase) LatestMessageFrom(ctx context.Context, email string) (*domain.ContactMessage, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperror.BadRequest("email is required")
	}
	msg, err := uc.contactRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Message not found")
		}
		return nil, storeError(err)
	}
	return msg, nil
}

func (uc *contactUsecase) ListMessages(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	page, err := domain.NewPage(limit, offset)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	msgs, err := uc.contactRepo.Fetch(ctx, page)
	if err != nil {
		return nil, storeError(err)
	}
	return msgs, nil
}
