package forum

import "context"

// AllQuestionFollows returns every follow in id order.
func (s *Store) AllQuestionFollows(ctx context.Context) ([]QuestionFollow, error) {
	const query = `SELECT id, user_id, question_id FROM question_follows ORDER BY id`
	return queryList(ctx, s, "question_follows.all", s.questionFollow, query)
}

// FindQuestionFollowByID returns the follow with the given id, or nil if there is none.
func (s *Store) FindQuestionFollowByID(ctx context.Context, id int64) (*QuestionFollow, error) {
	const query = `SELECT id, user_id, question_id FROM question_follows WHERE id = ?`
	return queryOne(ctx, s, "question_follows.find_by_id", s.questionFollow, query, id)
}
