package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ferdiebergado/notes/internal/platform/db"
)

type Repository interface {
	List(ctx context.Context) ([]Note, error)
	Get(ctx context.Context, id int64) (Note, error)
	Create(ctx context.Context, params CreateParams) (Note, error)
	Update(ctx context.Context, id int64, params UpdateParams) (Note, error)
	Delete(ctx context.Context, id int64) error
}

// SQLRepository issues exactly one statement per operation.
type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(exec db.Executor) *SQLRepository {
	return &SQLRepository{db: exec}
}

const QueryNoteList = `
SELECT id, title, content, created_at, updated_at FROM notes
ORDER BY created_at DESC, id DESC
`

func (r *SQLRepository) List(ctx context.Context) ([]Note, error) {
	rows, err := r.db.Execute(ctx, QueryNoteList)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]Note, 0, len(rows))
	for _, row := range rows {
		n, err := noteFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		notes = append(notes, n)
	}

	return notes, nil
}

const QueryNoteGet = `
SELECT id, title, content, created_at, updated_at FROM notes
WHERE id = $1
`

func (r *SQLRepository) Get(ctx context.Context, id int64) (Note, error) {
	rows, err := r.db.Execute(ctx, QueryNoteGet, id)
	if err != nil {
		return Note{}, fmt.Errorf("get note %d: %w", id, err)
	}
	return single(rows, id)
}

const QueryNoteCreate = `
INSERT INTO notes (title, content)
VALUES ($1, $2)
RETURNING id, title, content, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (Note, error) {
	if err := checkTitle(params.Title); err != nil {
		return Note{}, err
	}

	rows, err := r.db.Execute(ctx, QueryNoteCreate, params.Title, params.Content)
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}
	if len(rows) != 1 {
		return Note{}, fmt.Errorf("%w: create note returned %d rows", db.ErrQueryFailed, len(rows))
	}
	return noteFromRow(rows[0])
}

const QueryNoteUpdate = `
UPDATE notes
SET title = $1, content = $2, updated_at = NOW()
WHERE id = $3
RETURNING id, title, content, created_at, updated_at
`

func (r *SQLRepository) Update(ctx context.Context, id int64, params UpdateParams) (Note, error) {
	if err := checkTitle(params.Title); err != nil {
		return Note{}, err
	}

	rows, err := r.db.Execute(ctx, QueryNoteUpdate, params.Title, params.Content, id)
	if err != nil {
		return Note{}, fmt.Errorf("update note %d: %w", id, err)
	}
	return single(rows, id)
}

const QueryNoteDelete = "DELETE FROM notes WHERE id = $1 RETURNING id"

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	rows, err := r.db.Execute(ctx, QueryNoteDelete, id)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

func checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title must not be blank", ErrInvalidInput)
	}
	return nil
}

func single(rows []db.Row, id int64) (Note, error) {
	if len(rows) == 0 {
		return Note{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return noteFromRow(rows[0])
}

func noteFromRow(row db.Row) (Note, error) {
	var (
		n   Note
		err error
	)

	switch id := row["id"].(type) {
	case int32:
		n.ID = int64(id)
	case int64:
		n.ID = id
	default:
		return Note{}, fmt.Errorf("%w: unexpected id type %T", db.ErrQueryFailed, row["id"])
	}

	title, ok := row["title"].(string)
	if !ok {
		return Note{}, fmt.Errorf("%w: unexpected title type %T", db.ErrQueryFailed, row["title"])
	}
	n.Title = title

	switch content := row["content"].(type) {
	case nil:
	case string:
		n.Content = &content
	default:
		return Note{}, fmt.Errorf("%w: unexpected content type %T", db.ErrQueryFailed, row["content"])
	}

	if n.CreatedAt, err = timeColumn(row, "created_at"); err != nil {
		return Note{}, err
	}
	if n.UpdatedAt, err = timeColumn(row, "updated_at"); err != nil {
		return Note{}, err
	}

	return n, nil
}

func timeColumn(row db.Row, name string) (time.Time, error) {
	t, ok := row[name].(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unexpected %s type %T", db.ErrQueryFailed, name, row[name])
	}
	return t, nil
}
