package db

import (
	"context"
	"errors"
)

type StubExecutor struct {
	ExecuteFunc func(ctx context.Context, query string, args ...any) ([]Row, error)
}

var _ Executor = (*StubExecutor)(nil)

func (s *StubExecutor) Execute(ctx context.Context, query string, args ...any) ([]Row, error) {
	if s.ExecuteFunc == nil {
		return nil, errors.New("Execute() not implemented by stub")
	}
	return s.ExecuteFunc(ctx, query, args...)
}
