package sqlnative

//go:generate mockgen -source interface.go -destination interface_mock.go -package sqlnative

import (
	"context"
	"database/sql"
)

// IConn is the subset of sql.Conn used by a session.
type IConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Raw(f func(driverConn any) error) error
	Close() error
}
