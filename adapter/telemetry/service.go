// Package telemetry wraps an adapter with spans and metrics.
package telemetry

import (
	"context"
	"time"

	"github.com/n-r-w/db2itx/adapter"
	"github.com/n-r-w/db2itx/txmgr"
)

// Attribute span attribute.
type Attribute struct {
	Key   string
	Value any
}

// ISpan interface for span.
type ISpan interface {
	AddAttributes(attributes []Attribute)
	End()
}

// ITelemetry interface for telemetry.
type ITelemetry interface {
	// StartSpan starts new span. If returns nil, span is not created.
	StartSpan(ctx context.Context, name string) (context.Context, ISpan)
	// ObserveRequestDuration records operation duration.
	ObserveRequestDuration(ctx context.Context, operation string, duration time.Duration)
	// ObserveRequest records operation count.
	ObserveRequest(ctx context.Context, operation string)
	// ObserveRequestError records operation error.
	ObserveRequestError(ctx context.Context, operation string, err error)
}

// Operation names.
const (
	OpBegin    = "begin"
	OpCommit   = "commit"
	OpRollback = "rollback"
	OpRelease  = "release"
)

// Service wrapper for working with the adapter and sending telemetry.
type Service struct {
	parent    adapter.IStartStopAdapter
	telemetry ITelemetry
}

var _ adapter.IStartStopAdapter = (*Service)(nil)

// New creates a new Service instance.
func New(parent adapter.IStartStopAdapter, telemetry ITelemetry) *Service {
	return &Service{
		parent:    parent,
		telemetry: telemetry,
	}
}

// Start starts the service.
func (s *Service) Start(ctx context.Context) error {
	return s.parent.Start(ctx)
}

// Stop stops the service.
func (s *Service) Stop(ctx context.Context) error {
	return s.parent.Stop(ctx)
}

// BeginTransaction begins a transaction.
func (s *Service) BeginTransaction(ctx context.Context, level txmgr.TransactionLevel) (tx *adapter.Tx, err error) {
	s.telemetryHelper(ctx, OpBegin, []Attribute{{"isolation_level", level.String()}}, func(ctx context.Context) error {
		tx, err = s.parent.BeginTransaction(ctx, level)
		return err
	})

	return tx, err
}

// Commit commits a transaction.
func (s *Service) Commit(ctx context.Context, tx *adapter.Tx) (err error) {
	s.telemetryHelper(ctx, OpCommit, txAttributes(tx), func(ctx context.Context) error {
		err = s.parent.Commit(ctx, tx)
		return err
	})

	return err
}

// Rollback rolls back a transaction.
func (s *Service) Rollback(ctx context.Context, tx *adapter.Tx) (err error) {
	s.telemetryHelper(ctx, OpRollback, txAttributes(tx), func(ctx context.Context) error {
		err = s.parent.Rollback(ctx, tx)
		return err
	})

	return err
}

// Release closes the connection of an unfinished transaction.
func (s *Service) Release(ctx context.Context, tx *adapter.Tx) (err error) {
	s.telemetryHelper(ctx, OpRelease, txAttributes(tx), func(ctx context.Context) error {
		err = s.parent.Release(ctx, tx)
		return err
	})

	return err
}

func txAttributes(tx *adapter.Tx) []Attribute {
	if tx == nil {
		return nil
	}
	return []Attribute{{"isolation_level", tx.Level().String()}}
}

func (s *Service) telemetryHelper(ctx context.Context, operation string, attributes []Attribute,
	f func(ctx context.Context) error,
) {
	ctxSpan, span := s.telemetry.StartSpan(ctx, "db2itx."+operation)
	if span != nil {
		ctx = ctxSpan
		defer span.End()

		span.AddAttributes(append([]Attribute{{"operation", operation}}, attributes...))
	}

	startTime := time.Now()

	err := f(ctx)

	s.telemetry.ObserveRequestDuration(ctx, operation, time.Since(startTime))

	s.telemetry.ObserveRequest(ctx, operation)
	if err != nil {
		s.telemetry.ObserveRequestError(ctx, operation, err)
		if span != nil {
			span.AddAttributes([]Attribute{{"error", err.Error()}})
		}
	}
}
