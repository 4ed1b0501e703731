package postgres

import (
	"context"

	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/database"

	"github.com/lib/pq"
)

const candidateCols = `id, full_name, email, phone, resume_url, skills, experience_years, current_position, desired_position, desired_salary, location, language, is_available, created_at, updated_at`

type candidateRepo struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	query := `INSERT INTO candidates (full_name, email, phone, resume_url, skills, experience_years,
                                      current_position, desired_position, desired_salary, location, language)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              RETURNING id, is_available, created_at, updated_at`
	err := r.db.Write(ctx, func(ctx context.Context, q database.Querier) error {
		return q.QueryRow(ctx, query,
			c.FullName, c.Email, c.Phone, c.ResumeURL, pq.Array(c.Skills), c.ExperienceYears,
			c.CurrentPosition, c.DesiredPosition, c.DesiredSalary, c.Location, c.Language,
		).Scan(&c.ID, &c.IsAvailable, &c.CreatedAt, &c.UpdatedAt)
	})
	return translateErr(err)
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateCols + ` FROM candidates WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *candidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateCols + ` FROM candidates WHERE email = $1 ORDER BY created_at DESC LIMIT 1`
	return r.getOne(ctx, query, email)
}

func (r *candidateRepo) getOne(ctx context.Context, query string, arg any) (*domain.Candidate, error) {
	var c domain.Candidate
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		return scanCandidate(q.QueryRow(ctx, query, arg), &c)
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

// Fetch lists candidates with the filter clauses in fixed order:
// availability, skills overlap, experience threshold.
func (r *candidateRepo) Fetch(ctx context.Context, filter domain.CandidateFilter, page domain.Page) ([]domain.Candidate, error) {
	var w where
	if filter.AvailableOnly {
		w.And("is_available = TRUE")
	}
	if len(filter.Skills) > 0 {
		w.And("skills && ?", pq.Array(filter.Skills))
	}
	if filter.ExperienceMin != nil {
		w.And("experience_years >= ?", *filter.ExperienceMin)
	}
	query, args := w.Build(`SELECT `+candidateCols+` FROM candidates`, `created_at DESC`, page)

	var candidates []domain.Candidate
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c domain.Candidate
			if err := scanCandidate(rows, &c); err != nil {
				return err
			}
			candidates = append(candidates, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, translateErr(err)
	}
	if candidates == nil {
		candidates = []domain.Candidate{}
	}
	return candidates, nil
}

func scanCandidate(row scanner, c *domain.Candidate) error {
	var skills []string
	err := row.Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, &c.ResumeURL, pq.Array(&skills),
		&c.ExperienceYears, &c.CurrentPosition, &c.DesiredPosition, &c.DesiredSalary,
		&c.Location, &c.Language, &c.IsAvailable, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if skills == nil {
		skills = []string{}
	}
	c.Skills = skills
	return nil
}
