// Package note stores notes in PostgreSQL and serves them over HTTP.
package note

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("note: not found")
	ErrInvalidInput = errors.New("note: invalid input")
)

type Note struct {
	ID        int64
	Title     string
	Content   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateParams struct {
	Title   string
	Content *string
}

type UpdateParams struct {
	Title   string
	Content *string
}
