package forum

import "context"

const replyColumns = `replies.id, replies.subject_q, replies.parent_id, replies.rauthor_id, replies.rbody`

// AllReplies returns every reply in id order.
func (s *Store) AllReplies(ctx context.Context) ([]Reply, error) {
	const query = `SELECT ` + replyColumns + ` FROM replies ORDER BY id`
	return queryList(ctx, s, "replies.all", s.reply, query)
}

// FindReplyByID returns the reply with the given id, or nil if there is none.
func (s *Store) FindReplyByID(ctx context.Context, id int64) (*Reply, error) {
	const query = `SELECT ` + replyColumns + ` FROM replies WHERE id = ?`
	return queryOne(ctx, s, "replies.find_by_id", s.reply, query, id)
}

// FindRepliesByUserID returns the replies written by a user.
func (s *Store) FindRepliesByUserID(ctx context.Context, userID int64) ([]Reply, error) {
	const query = `SELECT ` + replyColumns + ` FROM replies
		WHERE rauthor_id = ?
		ORDER BY id`
	return queryList(ctx, s, "replies.find_by_user_id", s.reply, query, userID)
}

// FindRepliesByQuestionID returns every reply in a question's thread,
// top-level and nested alike.
func (s *Store) FindRepliesByQuestionID(ctx context.Context, questionID int64) ([]Reply, error) {
	const query = `SELECT ` + replyColumns + ` FROM replies
		WHERE subject_q = ?
		ORDER BY id`
	return queryList(ctx, s, "replies.find_by_question_id", s.reply, query, questionID)
}

// FindRepliesByParentID returns the direct children of a reply.
func (s *Store) FindRepliesByParentID(ctx context.Context, parentID int64) ([]Reply, error) {
	const query = `SELECT ` + replyColumns + ` FROM replies
		WHERE parent_id = ?
		ORDER BY id`
	return queryList(ctx, s, "replies.find_by_parent_id", s.reply, query, parentID)
}

// FindTopLevelReplies returns the replies that answer a question directly.
func (s *Store) FindTopLevelReplies(ctx context.Context, questionID int64) ([]Reply, error) {
	const query = `SELECT ` + replyColumns + ` FROM replies
		WHERE subject_q = ? AND parent_id IS NULL
		ORDER BY id`
	return queryList(ctx, s, "replies.find_top_level", s.reply, query, questionID)
}
