// Package mocks provides in-memory test doubles for the store
// interfaces and a no-op database handle for exercising transaction
// orchestration without a running PostgreSQL instance.
package mocks

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// NewDB returns a real *sql.DB backed by a no-op driver. BeginTx,
// Commit and Rollback all succeed without side effects, which is enough
// for services that orchestrate transactions through stores whose test
// doubles ignore the transaction handle.
func NewDB() *sql.DB {
	registerOnce.Do(func() {
		sql.Register(driverName, noopDriver{})
	})

	// A distinct DSN per call keeps connection pools independent.
	db, err := sql.Open(driverName, fmt.Sprintf("noop-%d", dsnCounter.Add(1)))
	if err != nil {
		// sql.Open with a registered driver only fails on a bad driver
		// name, which would be a bug in this package.
		panic(err)
	}
	return db
}

const driverName = "taskflow-noop"

var (
	registerOnce sync.Once
	dsnCounter   atomic.Int64
)

type noopDriver struct{}

func (noopDriver) Open(name string) (driver.Conn, error) { return &noopConn{}, nil }

type noopConn struct{}

func (c *noopConn) Prepare(query string) (driver.Stmt, error) { return &noopStmt{}, nil }
func (c *noopConn) Close() error                              { return nil }
func (c *noopConn) Begin() (driver.Tx, error)                 { return noopTx{}, nil }

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

type noopStmt struct{}

func (s *noopStmt) Close() error  { return nil }
func (s *noopStmt) NumInput() int { return -1 }

func (s *noopStmt) Exec(args []driver.Value) (driver.Result, error) {
	return driver.RowsAffected(0), nil
}

func (s *noopStmt) Query(args []driver.Value) (driver.Rows, error) {
	return &noopRows{}, nil
}

type noopRows struct{}

func (r *noopRows) Columns() []string              { return nil }
func (r *noopRows) Close() error                   { return nil }
func (r *noopRows) Next(dest []driver.Value) error { return io.EOF }
