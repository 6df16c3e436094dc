package forum

import "context"

const questionColumns = `questions.id, questions.title, questions.qbody, questions.qauthor_id`

// AllQuestions returns every question in id order.
func (s *Store) AllQuestions(ctx context.Context) ([]Question, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions ORDER BY id`
	return queryList(ctx, s, "questions.all", s.question, query)
}

// FindQuestionByID returns the question with the given id, or nil if there is none.
func (s *Store) FindQuestionByID(ctx context.Context, id int64) (*Question, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions WHERE id = ?`
	return queryOne(ctx, s, "questions.find_by_id", s.question, query, id)
}

// FindQuestionsByAuthorID returns the questions asked by a user.
func (s *Store) FindQuestionsByAuthorID(ctx context.Context, authorID int64) ([]Question, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions
		WHERE qauthor_id = ?
		ORDER BY id`
	return queryList(ctx, s, "questions.find_by_author_id", s.question, query, authorID)
}
