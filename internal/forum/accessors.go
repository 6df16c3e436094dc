package forum

import "context"

// Record accessors delegate to the Store that loaded the record. Each call
// issues one statement; nothing is cached on the record.

// Author returns the user who asked the question.
func (q Question) Author(ctx context.Context) (*User, error) {
	if q.store == nil {
		return nil, ErrDetached
	}
	return q.store.FindUserByID(ctx, q.AuthorID)
}

// Replies returns every reply in the question's thread.
func (q Question) Replies(ctx context.Context) ([]Reply, error) {
	if q.store == nil {
		return nil, ErrDetached
	}
	return q.store.FindRepliesByQuestionID(ctx, q.ID)
}

// Followers returns the users following the question.
func (q Question) Followers(ctx context.Context) ([]User, error) {
	if q.store == nil {
		return nil, ErrDetached
	}
	return q.store.FollowersForQuestion(ctx, q.ID)
}

// Likers returns the users who liked the question.
func (q Question) Likers(ctx context.Context) ([]User, error) {
	if q.store == nil {
		return nil, ErrDetached
	}
	return q.store.LikersForQuestion(ctx, q.ID)
}

// NumLikes counts the likes on the question.
func (q Question) NumLikes(ctx context.Context) (int, error) {
	if q.store == nil {
		return 0, ErrDetached
	}
	return q.store.NumLikesForQuestion(ctx, q.ID)
}

// Author returns the user who wrote the reply.
func (r Reply) Author(ctx context.Context) (*User, error) {
	if r.store == nil {
		return nil, ErrDetached
	}
	return r.store.FindUserByID(ctx, r.AuthorID)
}

// Question returns the question the reply belongs to.
func (r Reply) Question(ctx context.Context) (*Question, error) {
	if r.store == nil {
		return nil, ErrDetached
	}
	return r.store.FindQuestionByID(ctx, r.QuestionID)
}

// ParentReply returns the reply this one answers, or nil for a top-level
// reply. A top-level reply issues no statement.
func (r Reply) ParentReply(ctx context.Context) (*Reply, error) {
	if r.store == nil {
		return nil, ErrDetached
	}
	if r.ParentID == nil {
		return nil, nil
	}
	return r.store.FindReplyByID(ctx, *r.ParentID)
}

// ChildReplies returns the direct answers to this reply.
func (r Reply) ChildReplies(ctx context.Context) ([]Reply, error) {
	if r.store == nil {
		return nil, ErrDetached
	}
	return r.store.FindRepliesByParentID(ctx, r.ID)
}

// AuthoredQuestions returns the questions the user asked.
func (u User) AuthoredQuestions(ctx context.Context) ([]Question, error) {
	if u.store == nil {
		return nil, ErrDetached
	}
	return u.store.FindQuestionsByAuthorID(ctx, u.ID)
}

// AuthoredReplies returns the replies the user wrote.
func (u User) AuthoredReplies(ctx context.Context) ([]Reply, error) {
	if u.store == nil {
		return nil, ErrDetached
	}
	return u.store.FindRepliesByUserID(ctx, u.ID)
}

// FollowedQuestions returns the questions the user follows.
func (u User) FollowedQuestions(ctx context.Context) ([]Question, error) {
	if u.store == nil {
		return nil, ErrDetached
	}
	return u.store.FollowedQuestionsForUser(ctx, u.ID)
}

// LikedQuestions returns the questions the user liked.
func (u User) LikedQuestions(ctx context.Context) ([]Question, error) {
	if u.store == nil {
		return nil, ErrDetached
	}
	return u.store.LikedQuestionsForUser(ctx, u.ID)
}

// AverageKarma returns the mean likes per question the user asked.
func (u User) AverageKarma(ctx context.Context) (float64, error) {
	if u.store == nil {
		return 0, ErrDetached
	}
	return u.store.AverageKarma(ctx, u.ID)
}

// User returns the follower.
func (f QuestionFollow) User(ctx context.Context) (*User, error) {
	if f.store == nil {
		return nil, ErrDetached
	}
	return f.store.FindUserByID(ctx, f.UserID)
}

// Question returns the followed question.
func (f QuestionFollow) Question(ctx context.Context) (*Question, error) {
	if f.store == nil {
		return nil, ErrDetached
	}
	return f.store.FindQuestionByID(ctx, f.QuestionID)
}

// User returns the user who liked the question.
func (l QuestionLike) User(ctx context.Context) (*User, error) {
	if l.store == nil {
		return nil, ErrDetached
	}
	return l.store.FindUserByID(ctx, l.UserID)
}

// Question returns the liked question.
func (l QuestionLike) Question(ctx context.Context) (*Question, error) {
	if l.store == nil {
		return nil, ErrDetached
	}
	return l.store.FindQuestionByID(ctx, l.QuestionID)
}
