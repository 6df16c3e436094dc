package forum

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nerrad567/questions-core/internal/infrastructure/database"
	"github.com/nerrad567/questions-core/migrations"
)

// forumSeed is the shared fixture for finder and navigator tests.
//
// Follower counts: q1=3, q2=2, q3=1, q4=0. Like counts: q1=2, q2=1, q3=1, q4=0.
// Users 1 and 4 share a name; user 5 has no activity.
const forumSeed = `
	INSERT INTO users (id, fname, lname) VALUES
		(1, 'Ada', 'Lovelace'),
		(2, 'Alan', 'Turing'),
		(3, 'Grace', 'Hopper'),
		(4, 'Ada', 'Lovelace'),
		(5, 'Edsger', 'Dijkstra');

	INSERT INTO questions (id, title, qbody, qauthor_id) VALUES
		(1, 'Why?', 'Body', 1),
		(2, 'How?', 'Explain the engine.', 2),
		(3, 'When?', 'Dates please.', 1),
		(4, 'Where?', 'Location of the bug.', 3);

	INSERT INTO replies (id, subject_q, parent_id, rauthor_id, rbody) VALUES
		(1, 1, NULL, 2, 'Because.'),
		(2, 1, 1, 1, 'Thanks.'),
		(3, 2, NULL, 3, 'Like this.'),
		(4, 1, NULL, 3, 'Also because.'),
		(5, 1, 2, 2, 'You are welcome.');

	INSERT INTO question_follows (id, user_id, question_id) VALUES
		(1, 1, 1),
		(2, 2, 1),
		(3, 3, 2),
		(4, 1, 2),
		(5, 3, 1),
		(6, 2, 3);

	INSERT INTO question_likes (id, liked_user, liked_q) VALUES
		(1, 2, 1),
		(2, 3, 1),
		(3, 1, 2),
		(4, 3, 3);
`

// setupTestStore opens an in-memory store with the forum schema and runs seed.
func setupTestStore(t *testing.T, seed string) *Store {
	t.Helper()

	db, err := database.Open(database.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close() //nolint:errcheck // Test cleanup
	})

	ctx := context.Background()
	if err := db.Migrate(ctx, migrations.Source()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if seed != "" {
		if _, err := db.ExecContext(ctx, seed); err != nil {
			t.Fatalf("failed to seed test database: %v", err)
		}
	}

	return NewStore(db)
}

// fakeExecutor returns canned rows or an error and counts calls.
type fakeExecutor struct {
	rows  []database.Row
	err   error
	calls int
	last  string
	args  []any
}

func (f *fakeExecutor) Query(_ context.Context, query string, args ...any) ([]database.Row, error) {
	f.calls++
	f.last = query
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type observedQuery struct {
	op   string
	rows int
	err  error
}

type recordingObserver struct {
	queries []observedQuery
}

func (o *recordingObserver) ObserveQuery(op string, rows int, _ time.Duration, err error) {
	o.queries = append(o.queries, observedQuery{op: op, rows: rows, err: err})
}

type recordingLogger struct {
	debug []string
	errs  []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.debug = append(l.debug, msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.errs = append(l.errs, msg) }

func TestStore_ExecutionFailurePropagates(t *testing.T) {
	cause := errors.New("database is locked")
	exec := &fakeExecutor{err: cause}
	store := NewStore(exec)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"singular finder", func() error { _, err := store.FindUserByID(ctx, 1); return err }},
		{"plural finder", func() error { _, err := store.AllQuestions(ctx); return err }},
		{"navigator", func() error { _, err := store.FollowersForQuestion(ctx, 1); return err }},
		{"count", func() error { _, err := store.NumLikesForQuestion(ctx, 1); return err }},
		{"ranking", func() error { _, err := store.MostFollowed(ctx, 3); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, ErrExecution) {
				t.Errorf("error = %v, want ErrExecution", err)
			}
			if !errors.Is(err, cause) {
				t.Errorf("error = %v, want cause preserved", err)
			}
		})
	}
}

func TestStore_OneStatementPerCall(t *testing.T) {
	exec := &fakeExecutor{rows: []database.Row{}}
	store := NewStore(exec)
	ctx := context.Background()

	if _, err := store.FindUsersByName(ctx, "Ada", "Lovelace"); err != nil {
		t.Fatalf("FindUsersByName: %v", err)
	}
	if exec.calls != 1 {
		t.Errorf("calls = %d, want 1", exec.calls)
	}
	if len(exec.args) != 2 || exec.args[0] != "Ada" || exec.args[1] != "Lovelace" {
		t.Errorf("args = %v, want [Ada Lovelace] in declaration order", exec.args)
	}
}

func TestStore_DecodeFailureIsIntegrityError(t *testing.T) {
	exec := &fakeExecutor{rows: []database.Row{{"id": int64(1), "fname": "Ada"}}}
	store := NewStore(exec)

	_, err := store.FindUserByID(context.Background(), 1)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("error = %v, want ErrIntegrity", err)
	}
}

func TestStore_ObserverAndLogger(t *testing.T) {
	store := setupTestStore(t, forumSeed)
	obs := &recordingObserver{}
	log := &recordingLogger{}
	store.SetObserver(obs)
	store.SetLogger(log)
	ctx := context.Background()

	if _, err := store.AllUsers(ctx); err != nil {
		t.Fatalf("AllUsers: %v", err)
	}
	if len(obs.queries) != 1 {
		t.Fatalf("observed %d queries, want 1", len(obs.queries))
	}
	if obs.queries[0].op != "users.all" || obs.queries[0].rows != 5 || obs.queries[0].err != nil {
		t.Errorf("observed %+v, want users.all with 5 rows", obs.queries[0])
	}
	if len(log.debug) != 1 {
		t.Errorf("debug lines = %d, want 1", len(log.debug))
	}

	failing := NewStore(&fakeExecutor{err: fmt.Errorf("no such table: users")})
	failing.SetObserver(obs)
	failing.SetLogger(log)
	if _, err := failing.AllUsers(ctx); err == nil {
		t.Fatal("AllUsers on failing executor: expected error")
	}
	if got := obs.queries[len(obs.queries)-1]; got.err == nil {
		t.Error("observer did not receive the failure")
	}
	if len(log.errs) != 1 {
		t.Errorf("error lines = %d, want 1", len(log.errs))
	}
}

func TestStore_NilHooksFallBackToNoop(t *testing.T) {
	store := setupTestStore(t, forumSeed)
	store.SetLogger(nil)
	store.SetObserver(nil)

	if _, err := store.AllUsers(context.Background()); err != nil {
		t.Fatalf("AllUsers: %v", err)
	}
}
