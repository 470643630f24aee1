package pgxnative

//go:generate mockgen -source interface.go -destination interface_mock.go -package pgxnative

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// IConn is the subset of pgx.Conn used by a session.
type IConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Close(ctx context.Context) error
}
