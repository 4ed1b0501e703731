package postgres

import (
	"context"
	"errors"
	"net/http"

	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/apperror"
	"hirehand-backend/pkg/database"
)

const applicationCols = `id, job_id, candidate_id, status, cover_letter, created_at, updated_at`

type applicationRepo struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts the application and lets the store's unique
// (job_id, candidate_id) constraint reject a second apply atomically.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `INSERT INTO job_applications (job_id, candidate_id, status, cover_letter)
              VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err := r.db.Write(ctx, func(ctx context.Context, q database.Querier) error {
		return q.QueryRow(ctx, query,
			app.JobID, app.CandidateID, app.Status, app.CoverLetter,
		).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	})
	err = translateErr(err)
	if errors.Is(err, domain.ErrDuplicate) {
		return apperror.New(http.StatusConflict, "Application for this job already exists", domain.ErrDuplicate)
	}
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	query := `SELECT ` + applicationCols + ` FROM job_applications WHERE id = $1`
	var app domain.JobApplication
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		return scanApplication(q.QueryRow(ctx, query, id), &app)
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &app, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64, page domain.Page) ([]domain.JobApplication, error) {
	var w where
	w.And("job_id = ?", jobID)
	query, args := w.Build(`SELECT `+applicationCols+` FROM job_applications`, `created_at DESC`, page)

	var apps []domain.JobApplication
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var app domain.JobApplication
			if err := scanApplication(rows, &app); err != nil {
				return err
			}
			apps = append(apps, app)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, translateErr(err)
	}
	if apps == nil {
		apps = []domain.JobApplication{}
	}
	return apps, nil
}

func scanApplication(row scanner, app *domain.JobApplication) error {
	return row.Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.Status, &app.CoverLetter,
		&app.CreatedAt, &app.UpdatedAt,
	)
}
