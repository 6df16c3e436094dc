package forum

import (
	"context"
	"fmt"
	"time"

	"github.com/nerrad567/questions-core/internal/infrastructure/database"
)

// Executor runs one parameterised statement and returns every row.
// *database.DB satisfies it.
type Executor interface {
	Query(ctx context.Context, query string, args ...any) ([]database.Row, error)
}

// Logger defines the logging interface used by the Store.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// Observer receives the outcome of every statement the Store issues.
// op names the operation (e.g. "questions.find_by_id").
type Observer interface {
	ObserveQuery(op string, rows int, elapsed time.Duration, err error)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Error(string, ...any) {}

type noopObserver struct{}

func (noopObserver) ObserveQuery(string, int, time.Duration, error) {}

// Store exposes the finders and navigators over an Executor.
type Store struct {
	exec     Executor
	logger   Logger
	observer Observer
}

// NewStore creates a Store that issues its statements through exec.
func NewStore(exec Executor) *Store {
	return &Store{
		exec:     exec,
		logger:   noopLogger{},
		observer: noopObserver{},
	}
}

// SetLogger sets the logger used for per-statement debug output and failures.
func (s *Store) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	s.logger = logger
}

// SetObserver sets the statement observer.
func (s *Store) SetObserver(observer Observer) {
	if observer == nil {
		observer = noopObserver{}
	}
	s.observer = observer
}

// query runs a statement once and reports it to the logger and observer.
func (s *Store) query(ctx context.Context, op, query string, args ...any) ([]database.Row, error) {
	start := time.Now()
	rows, err := s.exec.Query(ctx, query, args...)
	elapsed := time.Since(start)

	s.observer.ObserveQuery(op, len(rows), elapsed, err)
	if err != nil {
		s.logger.Error("forum query failed", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w: %w", op, ErrExecution, err)
	}
	s.logger.Debug("forum query", "op", op, "rows", len(rows), "duration", elapsed)
	return rows, nil
}

// queryList runs a plural statement and decodes every row in order.
// Zero rows yield an empty, non-nil slice.
func queryList[T any](ctx context.Context, s *Store, op string, decode func(database.Row) (T, error), query string, args ...any) ([]T, error) {
	rows, err := s.query(ctx, op, query, args...)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		rec, err := decode(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// queryOne runs a singular statement. Zero rows yield (nil, nil).
func queryOne[T any](ctx context.Context, s *Store, op string, decode func(database.Row) (T, error), query string, args ...any) (*T, error) {
	list, err := queryList(ctx, s, op, decode, query, args...)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// countColumn reads a COUNT(...) column from an aggregate row.
func countColumn(op string, row database.Row, name string) (int64, error) {
	n, err := intColumn(row, name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// Decoders that attach the resulting record to s.

func (s *Store) user(row database.Row) (User, error) {
	u, err := userFromRow(row)
	u.store = s
	return u, err
}

func (s *Store) question(row database.Row) (Question, error) {
	q, err := questionFromRow(row)
	q.store = s
	return q, err
}

func (s *Store) reply(row database.Row) (Reply, error) {
	r, err := replyFromRow(row)
	r.store = s
	return r, err
}

func (s *Store) questionFollow(row database.Row) (QuestionFollow, error) {
	f, err := questionFollowFromRow(row)
	f.store = s
	return f, err
}

func (s *Store) questionLike(row database.Row) (QuestionLike, error) {
	l, err := questionLikeFromRow(row)
	l.store = s
	return l, err
}
