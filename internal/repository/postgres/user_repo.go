package postgres

import (
	"context"
	"errors"
	"net/http"

	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/apperror"
	"hirehand-backend/pkg/database"
)

const userCols = `id, username, email, password_hash, full_name, role, language, is_active, created_at, updated_at`

type userRepo struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) domain.UserRepository {
	return &userRepo{db: db}
}

// Create relies on the store's unique constraints for username and
// email; a concurrent duplicate insert surfaces as domain.ErrDuplicate,
// never as a check-then-insert race.
func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, email, password_hash, full_name, role, language)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, is_active, created_at, updated_at`
	err := r.db.Write(ctx, func(ctx context.Context, q database.Querier) error {
		return q.QueryRow(ctx, query,
			user.Username, user.Email, user.PasswordHash, user.FullName, user.Role, user.Language,
		).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	})
	err = translateErr(err)
	if errors.Is(err, domain.ErrDuplicate) {
		msg := "User already exists"
		switch {
		case isConstraint(err, "users_username_key"):
			msg = "User with this username already exists"
		case isConstraint(err, "users_email_key"):
			msg = "User with this email already exists"
		}
		return apperror.New(http.StatusConflict, msg, domain.ErrDuplicate)
	}
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userCols + ` FROM users WHERE id = $1 AND is_active = TRUE`
	return r.getOne(ctx, query, id)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userCols + ` FROM users WHERE username = $1 AND is_active = TRUE`
	return r.getOne(ctx, query, username)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userCols + ` FROM users WHERE email = $1 AND is_active = TRUE`
	return r.getOne(ctx, query, email)
}

func (r *userRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		return scanUser(q.QueryRow(ctx, query, arg), &user)
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *userRepo) Fetch(ctx context.Context, page domain.Page) ([]domain.User, error) {
	var w where
	w.And("is_active = TRUE")
	query, args := w.Build(`SELECT `+userCols+` FROM users`, `created_at DESC`, page)

	var users []domain.User
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var user domain.User
			if err := scanUser(rows, &user); err != nil {
				return err
			}
			users = append(users, user)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, translateErr(err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func scanUser(row scanner, user *domain.User) error {
	return row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FullName,
		&user.Role, &user.Language, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
}
