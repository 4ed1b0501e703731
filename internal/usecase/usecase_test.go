package usecase_test

import (
	"context"
	"testing"

	"hirehand-backend/internal/domain"
	"hirehand-backend/internal/usecase"
	"hirehand-backend/pkg/apperror"
	"hirehand-backend/pkg/hash"
	"hirehand-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Fetch(ctx context.Context, page domain.Page) ([]domain.User, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, filter domain.JobFilter, page domain.Page) ([]domain.Job, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64, page domain.Page) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) Fetch(ctx context.Context, filter domain.CandidateFilter, page domain.Page) ([]domain.Candidate, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockContactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}
func (m *MockContactRepo) GetByEmail(ctx context.Context, email string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}
func (m *MockContactRepo) Fetch(ctx context.Context, page domain.Page) ([]domain.ContactMessage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

func TestRegister(t *testing.T) {
	validate := validation.New()
	hasher := hash.NewHasher(1000)

	t.Run("Should fail when required fields are missing", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, hasher, validate, "ru")

		_, err := uc.Register(context.Background(), domain.RegisterInput{Username: "alice"})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should hash the password and default role and language", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, hasher, validate, "ru")

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEqual(t, "secret123", u.PasswordHash)
			assert.True(t, hasher.Verify(u.PasswordHash, "secret123"))
			assert.Equal(t, domain.RoleUser, u.Role)
			assert.Equal(t, "ru", u.Language)
		})

		user, err := uc.Register(context.Background(), domain.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Should surface the repository conflict unchanged", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, hasher, validate, "ru")

		conflict := apperror.New(409, "User with this username already exists", domain.ErrDuplicate)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(conflict)

		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Username: "alice",
			Email:    "other@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.Contains(t, err.Error(), "username already exists")
	})
}

func TestVerifyCredentials(t *testing.T) {
	validate := validation.New()
	hasher := hash.NewHasher(1000)

	stored, _ := hasher.Hash("пароль-123")
	alice := &domain.User{ID: 1, Username: "alice", PasswordHash: stored, IsActive: true}

	t.Run("Should succeed when the password matches", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		uc := usecase.NewAuthUsecase(mockRepo, hasher, validate, "ru")

		user, err := uc.VerifyCredentials(context.Background(), domain.LoginInput{Username: "alice", Password: "пароль-123"})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("Should not reveal whether username or password was wrong", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		mockRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(mockRepo, hasher, validate, "ru")

		_, badPass := uc.VerifyCredentials(context.Background(), domain.LoginInput{Username: "alice", Password: "wrong"})
		_, badUser := uc.VerifyCredentials(context.Background(), domain.LoginInput{Username: "nobody", Password: "whatever"})
		assert.Error(t, badPass)
		assert.Error(t, badUser)
		assert.Equal(t, badPass.Error(), badUser.Error())
	})
}

func TestApplyToJob(t *testing.T) {
	validate := validation.New()

	activeJob := &domain.Job{ID: 1, Title: "Engineer", IsActive: true}
	inactiveJob := &domain.Job{ID: 2, Title: "Closed", IsActive: false}

	t.Run("Should create a pending application", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockApps := new(MockApplicationRepo)
		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(activeJob, nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobApplication")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.JobApplication)
			assert.Equal(t, domain.ApplicationStatusPending, app.Status)
			assert.Equal(t, int64(7), app.CandidateID)
		})
		uc := usecase.NewJobUsecase(mockJobs, mockApps, validate, "ru")

		app, err := uc.ApplyToJob(context.Background(), 1, domain.ApplyInput{CandidateID: 7})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), app.JobID)
	})

	t.Run("Should reject application to missing job", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockApps := new(MockApplicationRepo)
		mockJobs.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewJobUsecase(mockJobs, mockApps, validate, "ru")

		_, err := uc.ApplyToJob(context.Background(), 99, domain.ApplyInput{CandidateID: 7})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
		mockApps.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject application to inactive job", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockApps := new(MockApplicationRepo)
		mockJobs.On("GetByID", mock.Anything, int64(2)).Return(inactiveJob, nil)
		uc := usecase.NewJobUsecase(mockJobs, mockApps, validate, "ru")

		_, err := uc.ApplyToJob(context.Background(), 2, domain.ApplyInput{CandidateID: 7})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "inactive")
		mockApps.AssertNotCalled(t, "Create")
	})

	t.Run("Should surface the duplicate pair conflict", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockApps := new(MockApplicationRepo)
		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(activeJob, nil)
		mockApps.On("Create", mock.Anything, mock.Anything).Return(
			apperror.New(409, "Application for this job already exists", domain.ErrDuplicate))
		uc := usecase.NewJobUsecase(mockJobs, mockApps, validate, "ru")

		_, err := uc.ApplyToJob(context.Background(), 1, domain.ApplyInput{CandidateID: 7})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestListPagination(t *testing.T) {
	validate := validation.New()

	t.Run("Should reject negative limit before touching the store", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockJobs, new(MockApplicationRepo), validate, "ru")

		_, err := uc.ListJobs(context.Background(), domain.JobFilter{}, -1, 0)
		assert.Error(t, err)
		mockJobs.AssertNotCalled(t, "Fetch")
	})

	t.Run("Should reject negative offset before touching the store", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, validate, "ru")

		_, err := uc.ListCandidates(context.Background(), domain.CandidateFilter{}, 10, -3)
		assert.Error(t, err)
		mockCandidates.AssertNotCalled(t, "Fetch")
	})

	t.Run("Should default the limit to 50 and pass the filter through", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		filter := domain.JobFilter{ActiveOnly: true, FeaturedOnly: true}
		mockJobs.On("Fetch", mock.Anything, filter, domain.Page{Limit: 50, Offset: 0}).Return([]domain.Job{}, nil)
		uc := usecase.NewJobUsecase(mockJobs, new(MockApplicationRepo), validate, "ru")

		jobs, err := uc.ListJobs(context.Background(), filter, 0, 0)
		assert.NoError(t, err)
		assert.Empty(t, jobs)
		mockJobs.AssertExpectations(t)
	})
}

func TestCandidateDefaults(t *testing.T) {
	validate := validation.New()

	t.Run("Should fill skills and language defaults on create", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.NotNil(t, c.Skills)
			assert.Empty(t, c.Skills)
			assert.Equal(t, "ru", c.Language)
		})
		uc := usecase.NewCandidateUsecase(mockRepo, validate, "ru")

		c, err := uc.CreateCandidate(context.Background(), domain.CandidateInput{
			FullName: "Boris Ivanov",
			Email:    "boris@example.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, "boris@example.com", c.Email)
	})

	t.Run("Should fail when full name is blank", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validate, "ru")

		_, err := uc.CreateCandidate(context.Background(), domain.CandidateInput{
			FullName: "   ",
			Email:    "boris@example.com",
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestContactSubmit(t *testing.T) {
	validate := validation.New()

	t.Run("Should trim fields and default the language", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ContactMessage")).Return(nil).Run(func(args mock.Arguments) {
			msg := args.Get(1).(*domain.ContactMessage)
			assert.Equal(t, "Anna", msg.Name)
			assert.Equal(t, "ru", msg.Language)
		})
		uc := usecase.NewContactUsecase(mockRepo, validate, "ru")

		_, err := uc.Submit(context.Background(), domain.ContactInput{
			Name:    "  Anna  ",
			Email:   "anna@example.com",
			Message: "Hello there",
		})
		assert.NoError(t, err)
	})

	t.Run("Should reject a message of only whitespace", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(mockRepo, validate, "ru")

		_, err := uc.Submit(context.Background(), domain.ContactInput{
			Name:    "Anna",
			Email:   "anna@example.com",
			Message: "   ",
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestLoginByEmail(t *testing.T) {
	validate := validation.New()
	hasher := hash.NewHasher(1000)

	stored, _ := hasher.Hash("secret123")
	alice := &domain.User{ID: 3, Username: "alice", Email: "alice@example.com", PasswordHash: stored, IsActive: true}

	t.Run("Should fall back to email lookup for identifiers containing @", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(alice, nil)
		uc := usecase.NewAuthUsecase(mockRepo, hasher, validate, "ru")

		user, err := uc.VerifyCredentials(context.Background(), domain.LoginInput{Username: "alice@example.com", Password: "secret123"})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
	})

	t.Run("Should not try email lookup for plain usernames", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(mockRepo, hasher, validate, "ru")

		_, err := uc.VerifyCredentials(context.Background(), domain.LoginInput{Username: "ghost", Password: "whatever"})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "GetByEmail")
	})
}

func TestListUsers(t *testing.T) {
	validate := validation.New()
	hasher := hash.NewHasher(1000)

	t.Run("Should reject negative offset before touching the store", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, hasher, validate, "ru")

		_, err := uc.ListUsers(context.Background(), 10, -1)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Fetch")
	})

	t.Run("Should default the limit to 50", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("Fetch", mock.Anything, domain.Page{Limit: 50, Offset: 0}).Return([]domain.User{}, nil)
		uc := usecase.NewAuthUsecase(mockRepo, hasher, validate, "ru")

		users, err := uc.ListUsers(context.Background(), 0, 0)
		assert.NoError(t, err)
		assert.Empty(t, users)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetApplication(t *testing.T) {
	validate := validation.New()

	t.Run("Should return the application", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("GetByID", mock.Anything, int64(11)).Return(&domain.JobApplication{ID: 11, JobID: 1}, nil)
		uc := usecase.NewJobUsecase(new(MockJobRepo), mockApps, validate, "ru")

		app, err := uc.GetApplication(context.Background(), 11)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), app.JobID)
	})

	t.Run("Should map a missing application to not found", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewJobUsecase(new(MockJobRepo), mockApps, validate, "ru")

		_, err := uc.GetApplication(context.Background(), 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Application not found")
	})
}

func TestLookupByEmail(t *testing.T) {
	validate := validation.New()

	t.Run("Should return the latest message from a sender", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.ContactMessage{ID: 2, Email: "anna@example.com"}, nil)
		uc := usecase.NewContactUsecase(mockRepo, validate, "ru")

		msg, err := uc.LatestMessageFrom(context.Background(), " anna@example.com ")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), msg.ID)
	})

	t.Run("Should reject a blank sender address without touching the store", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(mockRepo, validate, "ru")

		_, err := uc.LatestMessageFrom(context.Background(), "   ")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "GetByEmail")
	})

	t.Run("Should map a missing candidate to not found", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)
		uc := usecase.NewCandidateUsecase(mockRepo, validate, "ru")

		_, err := uc.FindCandidateByEmail(context.Background(), "nobody@example.com")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Candidate not found")
	})
}
