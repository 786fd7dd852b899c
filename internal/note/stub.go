package note

import (
	"context"
	"errors"
)

type StubRepo struct {
	ListFunc   func(ctx context.Context) ([]Note, error)
	GetFunc    func(ctx context.Context, id int64) (Note, error)
	CreateFunc func(ctx context.Context, params CreateParams) (Note, error)
	UpdateFunc func(ctx context.Context, id int64, params UpdateParams) (Note, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

var _ Repository = (*StubRepo)(nil)

func (s *StubRepo) List(ctx context.Context) ([]Note, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubRepo) Get(ctx context.Context, id int64) (Note, error) {
	if s.GetFunc == nil {
		return Note{}, errors.New("Get() not implemented by stub")
	}
	return s.GetFunc(ctx, id)
}

func (s *StubRepo) Create(ctx context.Context, params CreateParams) (Note, error) {
	if s.CreateFunc == nil {
		return Note{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubRepo) Update(ctx context.Context, id int64, params UpdateParams) (Note, error) {
	if s.UpdateFunc == nil {
		return Note{}, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, id, params)
}

func (s *StubRepo) Delete(ctx context.Context, id int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, id)
}
