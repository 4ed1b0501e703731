package postgres

import (
	"context"

	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/database"
)

const jobCols = `id, title, description, requirements, salary_min, salary_max, location, employment_type, experience_level, industry, company_name, contact_email, contact_phone, is_active, featured, language, created_at, updated_at`

type jobRepo struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, requirements, salary_min, salary_max, location,
                                employment_type, experience_level, industry, company_name,
                                contact_email, contact_phone, featured, language)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
              RETURNING id, is_active, created_at, updated_at`
	err := r.db.Write(ctx, func(ctx context.Context, q database.Querier) error {
		return q.QueryRow(ctx, query,
			job.Title, job.Description, job.Requirements, job.SalaryMin, job.SalaryMax, job.Location,
			job.EmploymentType, job.ExperienceLevel, job.Industry, job.CompanyName,
			job.ContactEmail, job.ContactPhone, job.Featured, job.Language,
		).Scan(&job.ID, &job.IsActive, &job.CreatedAt, &job.UpdatedAt)
	})
	return translateErr(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobCols + ` FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		return scanJob(q.QueryRow(ctx, query, id), &job)
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &job, nil
}

// Fetch lists jobs with the filter clauses in fixed order: active,
// featured, industry. Featured listings sort first regardless of age.
func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter, page domain.Page) ([]domain.Job, error) {
	var w where
	if filter.ActiveOnly {
		w.And("is_active = TRUE")
	}
	if filter.FeaturedOnly {
		w.And("featured = TRUE")
	}
	if filter.Industry != "" {
		w.And("industry = ?", filter.Industry)
	}
	query, args := w.Build(`SELECT `+jobCols+` FROM jobs`, `featured DESC, created_at DESC`, page)

	var jobs []domain.Job
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var job domain.Job
			if err := scanJob(rows, &job); err != nil {
				return err
			}
			jobs = append(jobs, job)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, translateErr(err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func scanJob(row scanner, job *domain.Job) error {
	return row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Requirements, &job.SalaryMin, &job.SalaryMax,
		&job.Location, &job.EmploymentType, &job.ExperienceLevel, &job.Industry, &job.CompanyName,
		&job.ContactEmail, &job.ContactPhone, &job.IsActive, &job.Featured, &job.Language,
		&job.CreatedAt, &job.UpdatedAt,
	)
}
