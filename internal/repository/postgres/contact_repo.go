package postgres

import (
	"context"

	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/database"
)

const contactCols = `id, name, email, message, phone, company, service_type, language, created_at, updated_at`

type contactRepo struct {
	db *database.DB
}

func NewContactRepository(db *database.DB) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, message, phone, company, service_type, language)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	err := r.db.Write(ctx, func(ctx context.Context, q database.Querier) error {
		return q.QueryRow(ctx, query,
			msg.Name, msg.Email, msg.Message, msg.Phone, msg.Company, msg.ServiceType, msg.Language,
		).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
	})
	return translateErr(err)
}

func (r *contactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	query := `SELECT ` + contactCols + ` FROM contact_messages WHERE id = $1`
	var msg domain.ContactMessage
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		return scanContact(q.QueryRow(ctx, query, id), &msg)
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &msg, nil
}

// GetByEmail returns the most recent message from the given sender.
func (r *contactRepo) GetByEmail(ctx context.Context, email string) (*domain.ContactMessage, error) {
	query := `SELECT ` + contactCols + ` FROM contact_messages WHERE email = $1 ORDER BY created_at DESC LIMIT 1`
	var msg domain.ContactMessage
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		return scanContact(q.QueryRow(ctx, query, email), &msg)
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &msg, nil
}

func (r *contactRepo) Fetch(ctx context.Context, page domain.Page) ([]domain.ContactMessage, error) {
	var w where
	query, args := w.Build(`SELECT `+contactCols+` FROM contact_messages`, `created_at DESC`, page)

	var msgs []domain.ContactMessage
	err := r.db.Read(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var msg domain.ContactMessage
			if err := scanContact(rows, &msg); err != nil {
				return err
			}
			msgs = append(msgs, msg)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, translateErr(err)
	}
	if msgs == nil {
		msgs = []domain.ContactMessage{}
	}
	return msgs, nil
}

func scanContact(row scanner, msg *domain.ContactMessage) error {
	return row.Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.Phone, &msg.Company,
		&msg.ServiceType, &msg.Language, &msg.CreatedAt, &msg.UpdatedAt,
	)
}
