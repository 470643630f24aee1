package sqlnative

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
)

// fakeServer is a database/sql driver keeping transaction state per physical connection.
type fakeServer struct {
	mu           sync.Mutex
	opens        int
	failRollback bool
}

func registerFakeServer(name string) *fakeServer {
	s := &fakeServer{}
	sql.Register(name, fakeDriver{s: s})
	return s
}

func (s *fakeServer) physicalOpens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opens
}

func (s *fakeServer) setFailRollback(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failRollback = fail
}

func (s *fakeServer) rollbackFails() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failRollback
}

type fakeDriver struct {
	s *fakeServer
}

func (d fakeDriver) Open(string) (driver.Conn, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	d.s.opens++

	return &fakeConn{s: d.s}, nil
}

type fakeConn struct {
	s    *fakeServer
	inTx bool
}

var errInsideTransaction = errors.New("connection already inside a transaction")

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("begin not supported")
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	switch query {
	case sqlBegin:
		if c.inTx {
			return nil, errInsideTransaction
		}
		c.inTx = true
	case sqlCommit:
		c.inTx = false
	case sqlRollback:
		if c.s.rollbackFails() {
			return nil, errors.New("server closed the connection unexpectedly")
		}
		c.inTx = false
	}

	return driver.RowsAffected(0), nil
}
