package forum

import (
	"fmt"

	"github.com/nerrad567/questions-core/internal/infrastructure/database"
)

// Column names of the forum tables.
const (
	colID = "id"

	colFirstName = "fname"
	colLastName  = "lname"

	colTitle     = "title"
	colQBody     = "qbody"
	colQAuthorID = "qauthor_id"

	colSubjectQ  = "subject_q"
	colParentID  = "parent_id"
	colRAuthorID = "rauthor_id"
	colRBody     = "rbody"

	colUserID     = "user_id"
	colQuestionID = "question_id"

	colLikedUser = "liked_user"
	colLikedQ    = "liked_q"
)

func userFromRow(row database.Row) (User, error) {
	var (
		u   User
		err error
	)
	if u.ID, err = intColumn(row, colID); err != nil {
		return User{}, fmt.Errorf("decoding user: %w", err)
	}
	if u.FirstName, err = textColumn(row, colFirstName); err != nil {
		return User{}, fmt.Errorf("decoding user %d: %w", u.ID, err)
	}
	if u.LastName, err = textColumn(row, colLastName); err != nil {
		return User{}, fmt.Errorf("decoding user %d: %w", u.ID, err)
	}
	return u, nil
}

func questionFromRow(row database.Row) (Question, error) {
	var (
		q   Question
		err error
	)
	if q.ID, err = intColumn(row, colID); err != nil {
		return Question{}, fmt.Errorf("decoding question: %w", err)
	}
	if q.Title, err = textColumn(row, colTitle); err != nil {
		return Question{}, fmt.Errorf("decoding question %d: %w", q.ID, err)
	}
	if q.Body, err = textColumn(row, colQBody); err != nil {
		return Question{}, fmt.Errorf("decoding question %d: %w", q.ID, err)
	}
	if q.AuthorID, err = intColumn(row, colQAuthorID); err != nil {
		return Question{}, fmt.Errorf("decoding question %d: %w", q.ID, err)
	}
	return q, nil
}

func replyFromRow(row database.Row) (Reply, error) {
	var (
		r   Reply
		err error
	)
	if r.ID, err = intColumn(row, colID); err != nil {
		return Reply{}, fmt.Errorf("decoding reply: %w", err)
	}
	if r.QuestionID, err = intColumn(row, colSubjectQ); err != nil {
		return Reply{}, fmt.Errorf("decoding reply %d: %w", r.ID, err)
	}
	if r.ParentID, err = nullableIntColumn(row, colParentID); err != nil {
		return Reply{}, fmt.Errorf("decoding reply %d: %w", r.ID, err)
	}
	if r.AuthorID, err = intColumn(row, colRAuthorID); err != nil {
		return Reply{}, fmt.Errorf("decoding reply %d: %w", r.ID, err)
	}
	if r.Body, err = textColumn(row, colRBody); err != nil {
		return Reply{}, fmt.Errorf("decoding reply %d: %w", r.ID, err)
	}
	return r, nil
}

func questionFollowFromRow(row database.Row) (QuestionFollow, error) {
	var (
		f   QuestionFollow
		err error
	)
	if f.ID, err = intColumn(row, colID); err != nil {
		return QuestionFollow{}, fmt.Errorf("decoding question follow: %w", err)
	}
	if f.UserID, err = intColumn(row, colUserID); err != nil {
		return QuestionFollow{}, fmt.Errorf("decoding question follow %d: %w", f.ID, err)
	}
	if f.QuestionID, err = intColumn(row, colQuestionID); err != nil {
		return QuestionFollow{}, fmt.Errorf("decoding question follow %d: %w", f.ID, err)
	}
	return f, nil
}

func questionLikeFromRow(row database.Row) (QuestionLike, error) {
	var (
		l   QuestionLike
		err error
	)
	if l.ID, err = intColumn(row, colID); err != nil {
		return QuestionLike{}, fmt.Errorf("decoding question like: %w", err)
	}
	if l.UserID, err = intColumn(row, colLikedUser); err != nil {
		return QuestionLike{}, fmt.Errorf("decoding question like %d: %w", l.ID, err)
	}
	if l.QuestionID, err = intColumn(row, colLikedQ); err != nil {
		return QuestionLike{}, fmt.Errorf("decoding question like %d: %w", l.ID, err)
	}
	return l, nil
}

// intColumn reads a required integer column.
func intColumn(row database.Row, name string) (int64, error) {
	v, ok := row[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing column %q", ErrIntegrity, name)
	}
	if v == nil {
		return 0, fmt.Errorf("%w: column %q is NULL", ErrIntegrity, name)
	}
	return toInt64(name, v)
}

// nullableIntColumn reads an integer column that may be NULL.
// The column itself must still be present.
func nullableIntColumn(row database.Row, name string) (*int64, error) {
	v, ok := row[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %q", ErrIntegrity, name)
	}
	if v == nil {
		return nil, nil
	}
	n, err := toInt64(name, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// textColumn reads a required text column.
func textColumn(row database.Row, name string) (string, error) {
	v, ok := row[name]
	if !ok {
		return "", fmt.Errorf("%w: missing column %q", ErrIntegrity, name)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case nil:
		return "", fmt.Errorf("%w: column %q is NULL", ErrIntegrity, name)
	default:
		return "", fmt.Errorf("%w: column %q holds %T, want text", ErrIntegrity, name, v)
	}
}

func toInt64(name string, v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: column %q holds %T, want integer", ErrIntegrity, name, v)
	}
}
