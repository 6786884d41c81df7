package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the sole writer of durable state. The pool is passed in by the
// process that owns its lifecycle; the store never connects or disconnects
// on its own.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Sentinel errors handlers translate into HTTP statuses. Anything else
// coming out of the store is treated as internal.
var (
	ErrNotFound  = errors.New("not found")
	ErrSlotTaken = errors.New("slot already taken")
	ErrDuplicate = errors.New("duplicate record")
)

// postgres error codes
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
