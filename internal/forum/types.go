package forum

// User is a row of the users table.
type User struct {
	ID        int64
	FirstName string
	LastName  string

	store *Store
}

// Question is a row of the questions table.
type Question struct {
	ID       int64
	Title    string
	Body     string
	AuthorID int64

	store *Store
}

// Reply is a row of the replies table.
//
// ParentID is nil for a top-level reply. When set, the parent belongs to
// the same question.
type Reply struct {
	ID         int64
	QuestionID int64
	ParentID   *int64
	AuthorID   int64
	Body       string

	store *Store
}

// IsTopLevel reports whether the reply answers the question directly.
func (r Reply) IsTopLevel() bool {
	return r.ParentID == nil
}

// QuestionFollow is a row of the question_follows join table.
type QuestionFollow struct {
	ID         int64
	UserID     int64
	QuestionID int64

	store *Store
}

// QuestionLike is a row of the question_likes join table.
type QuestionLike struct {
	ID         int64
	UserID     int64
	QuestionID int64

	store *Store
}
