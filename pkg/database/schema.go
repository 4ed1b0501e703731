package database

import "context"

// Uniqueness lives in the schema, not in application-level checks:
// concurrent inserts race past a check-then-insert, while the store's
// constraint rejection is atomic and maps cleanly to a conflict error.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		phone TEXT,
		company TEXT,
		service_type TEXT,
		language TEXT DEFAULT 'ru',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT,
		role TEXT DEFAULT 'user',
		language TEXT DEFAULT 'ru',
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		requirements TEXT,
		salary_min INTEGER,
		salary_max INTEGER,
		location TEXT,
		employment_type TEXT,
		experience_level TEXT,
		industry TEXT,
		company_name TEXT NOT NULL,
		contact_email TEXT NOT NULL,
		contact_phone TEXT,
		is_active BOOLEAN DEFAULT TRUE,
		featured BOOLEAN DEFAULT FALSE,
		language TEXT DEFAULT 'ru',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id SERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		resume_url TEXT,
		skills TEXT[],
		experience_years INTEGER,
		current_position TEXT,
		desired_position TEXT,
		desired_salary INTEGER,
		location TEXT,
		language TEXT DEFAULT 'ru',
		is_available BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS job_applications (
		id SERIAL PRIMARY KEY,
		job_id INTEGER REFERENCES jobs(id) ON DELETE CASCADE,
		candidate_id INTEGER REFERENCES candidates(id) ON DELETE CASCADE,
		status TEXT DEFAULT 'pending',
		cover_letter TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
		UNIQUE (job_id, candidate_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_active ON jobs (is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_featured ON jobs (featured)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_industry ON jobs (industry)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_created ON jobs (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_available ON candidates (is_available)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_created ON candidates (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_messages_created ON contact_messages (created_at DESC)`,
}

// InitSchema creates the tables and indexes on startup. Statements are
// idempotent, so repeated boots are safe.
func (db *DB) InitSchema(ctx context.Context) error {
	return db.Write(ctx, func(ctx context.Context, q Querier) error {
		for _, stmt := range schemaStatements {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
