package postgres

import (
	"testing"

	"hirehand-backend/internal/domain"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWhereBuild(t *testing.T) {
	page := domain.Page{Limit: 50, Offset: 0}

	t.Run("Empty filter set yields an unconditional listing", func(t *testing.T) {
		var w where
		query, args := w.Build("SELECT * FROM jobs", "created_at DESC", page)
		assert.Equal(t, "SELECT * FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2", query)
		assert.Equal(t, []any{50, 0}, args)
	})

	t.Run("Clauses appear in the order they were added", func(t *testing.T) {
		var w where
		w.And("is_available = TRUE")
		w.And("skills && ?", pq.Array([]string{"python"}))
		w.And("experience_years >= ?", 3)
		query, args := w.Build("SELECT * FROM candidates", "created_at DESC", domain.Page{Limit: 10, Offset: 20})

		assert.Equal(t,
			"SELECT * FROM candidates WHERE is_available = TRUE AND skills && $1 AND experience_years >= $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4",
			query)
		assert.Len(t, args, 4)
		assert.Equal(t, 3, args[1])
		assert.Equal(t, 10, args[2])
		assert.Equal(t, 20, args[3])
	})

	t.Run("Placeholder numbering is deterministic across rebuilds", func(t *testing.T) {
		build := func() string {
			var w where
			w.And("is_active = TRUE")
			w.And("featured = TRUE")
			w.And("industry = ?", "logistics")
			query, _ := w.Build("SELECT * FROM jobs", "featured DESC, created_at DESC", page)
			return query
		}
		assert.Equal(t, build(), build())
		assert.Equal(t,
			"SELECT * FROM jobs WHERE is_active = TRUE AND featured = TRUE AND industry = $1 ORDER BY featured DESC, created_at DESC LIMIT $2 OFFSET $3",
			build())
	})

	t.Run("Pagination is always appended last", func(t *testing.T) {
		var w where
		w.And("job_id = ?", int64(7))
		query, args := w.Build("SELECT * FROM job_applications", "created_at DESC", domain.Page{Limit: 5, Offset: 5})
		assert.Contains(t, query, "LIMIT $2 OFFSET $3")
		assert.Equal(t, []any{int64(7), 5, 5}, args)
	})
}

func TestNewPage(t *testing.T) {
	t.Run("Defaults apply when limit is zero", func(t *testing.T) {
		p, err := domain.NewPage(0, 0)
		assert.NoError(t, err)
		assert.Equal(t, domain.Page{Limit: 50, Offset: 0}, p)
	})

	t.Run("Negative values are rejected, not passed through", func(t *testing.T) {
		_, err := domain.NewPage(-1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidPage)
		_, err = domain.NewPage(10, -5)
		assert.ErrorIs(t, err, domain.ErrInvalidPage)
	})
}
