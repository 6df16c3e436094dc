package forum

import "context"

// AllQuestionLikes returns every like in id order.
func (s *Store) AllQuestionLikes(ctx context.Context) ([]QuestionLike, error) {
	const query = `SELECT id, liked_user, liked_q FROM question_likes ORDER BY id`
	return queryList(ctx, s, "question_likes.all", s.questionLike, query)
}

// FindQuestionLikeByID returns the like with the given id, or nil if there is none.
func (s *Store) FindQuestionLikeByID(ctx context.Context, id int64) (*QuestionLike, error) {
	const query = `SELECT id, liked_user, liked_q FROM question_likes WHERE id = ?`
	return queryOne(ctx, s, "question_likes.find_by_id", s.questionLike, query, id)
}
