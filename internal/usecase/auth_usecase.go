package usecase

import (
	"context"
	"errors"
	"strings"

	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/apperror"
	"hirehand-backend/pkg/hash"
	"hirehand-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// One message for both unknown-user and wrong-password so the response
// never reveals which half of the credentials failed.
const authFailedMessage = "Invalid username or password"

type authUsecase struct {
	userRepo    domain.UserRepository
	hasher      *hash.Hasher
	validate    *validator.Validate
	defaultLang string
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher *hash.Hasher, validate *validator.Validate, defaultLang string) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		hasher:      hasher,
		validate:    validate,
		defaultLang: defaultLang,
	}
}

func (uc *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	hashed, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashed,
		FullName:     in.FullName,
		Role:         domain.RoleUser,
		Language:     in.Language,
	}
	if user.Language == "" {
		user.Language = uc.defaultLang
	}

	// No lookup before the insert: the store's unique constraints are
	// the only duplicate check, so concurrent registrations cannot race.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

func (uc *authUsecase) VerifyCredentials(ctx context.Context, in domain.LoginInput) (*domain.User, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	user, err := uc.lookupByIdentifier(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized(authFailedMessage)
		}
		return nil, storeError(err)
	}

	if !uc.hasher.Verify(user.PasswordHash, in.Password) {
		return nil, apperror.Unauthorized(authFailedMessage)
	}
	return user, nil
}

func (uc *authUsecase) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	page, err := domain.NewPage(limit, offset)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	users, err := uc.userRepo.Fetch(ctx, page)
	if err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

// lookupByIdentifier resolves the login identifier: username first,
// then email when the identifier looks like one.
func (uc *authUsecase) lookupByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, identifier)
	if errors.Is(err, domain.ErrNotFound) && strings.Contains(identifier, "@") {
		return uc.userRepo.GetByEmail(ctx, identifier)
	}
	return user, err
}

func (uc *authUsecase) GetProfile(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, storeError(err)
	}
	return user, nil
}
