package port

import (
	"context"
	"database/sql"
)

// Executor is the subset of database/sql operations shared by *sql.DB and
// *sql.Tx. Repository methods that must be able to run inside the sale
// transaction accept an Executor instead of holding their own handle, so the
// same code path serves both standalone calls and transactional ones.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
