package postgres

// scanner is satisfied by both pgx.Row and pgx.Rows, so a single scan
// helper per entity serves point lookups and listings alike.
type scanner interface {
	Scan(dest ...any) error
}
