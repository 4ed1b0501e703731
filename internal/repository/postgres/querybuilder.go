package postgres

import (
	"strconv"
	"strings"

	"hirehand-backend/internal/domain"
)

// where accumulates conjunctive filter conditions in the exact order
// they are added. Conditions use ? placeholders which Build rewrites to
// positional $n parameters, with pagination always appended last.
type where struct {
	conds []string
	args  []any
}

// And adds a condition. Absent filters simply never call And, so an
// empty builder yields an unconditional listing.
func (w *where) And(expr string, args ...any) {
	w.conds = append(w.conds, expr)
	w.args = append(w.args, args...)
}

// Build assembles base + WHERE + ORDER BY + LIMIT/OFFSET and returns
// the full positional argument list.
func (w *where) Build(base, orderBy string, page domain.Page) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)

	n := 0
	if len(w.conds) > 0 {
		sb.WriteString(" WHERE ")
		for i, cond := range w.conds {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			for _, ch := range cond {
				if ch == '?' {
					n++
					sb.WriteByte('$')
					sb.WriteString(strconv.Itoa(n))
				} else {
					sb.WriteRune(ch)
				}
			}
		}
	}

	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)
	sb.WriteString(" LIMIT $")
	sb.WriteString(strconv.Itoa(n + 1))
	sb.WriteString(" OFFSET $")
	sb.WriteString(strconv.Itoa(n + 2))

	args := make([]any, 0, len(w.args)+2)
	args = append(args, w.args...)
	args = append(args, page.Limit, page.Offset)

	return sb.String(), args
}
