package forum

import (
	"context"
	"fmt"
)

const userColumns = `users.id, users.fname, users.lname`

// LikersForQuestion returns the users who liked a question, in like order.
func (s *Store) LikersForQuestion(ctx context.Context, questionID int64) ([]User, error) {
	const query = `SELECT ` + userColumns + `
		FROM question_likes
		JOIN users ON users.id = question_likes.liked_user
		WHERE question_likes.liked_q = ?
		ORDER BY question_likes.id`
	return queryList(ctx, s, "question_likes.likers_for_question", s.user, query, questionID)
}

// NumLikesForQuestion counts the likes on a question. A question with no
// likes yields 0; a question id that does not exist yields ErrQuestionNotFound.
func (s *Store) NumLikesForQuestion(ctx context.Context, questionID int64) (int, error) {
	const op = "question_likes.num_likes_for_question"
	const query = `SELECT COUNT(question_likes.id) AS num_likes
		FROM questions
		LEFT JOIN question_likes ON question_likes.liked_q = questions.id
		WHERE questions.id = ?
		GROUP BY questions.id`

	rows, err := s.query(ctx, op, query, questionID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("%s: question %d: %w", op, questionID, ErrQuestionNotFound)
	}
	n, err := countColumn(op, rows[0], "num_likes")
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// LikedQuestionsForUser returns the questions a user liked, in like order.
func (s *Store) LikedQuestionsForUser(ctx context.Context, userID int64) ([]Question, error) {
	const query = `SELECT ` + questionColumns + `
		FROM question_likes
		JOIN questions ON questions.id = question_likes.liked_q
		WHERE question_likes.liked_user = ?
		ORDER BY question_likes.id`
	return queryList(ctx, s, "question_likes.liked_questions_for_user", s.question, query, userID)
}

// FollowersForQuestion returns the users following a question, in follow order.
func (s *Store) FollowersForQuestion(ctx context.Context, questionID int64) ([]User, error) {
	const query = `SELECT ` + userColumns + `
		FROM question_follows
		JOIN users ON users.id = question_follows.user_id
		WHERE question_follows.question_id = ?
		ORDER BY question_follows.id`
	return queryList(ctx, s, "question_follows.followers_for_question", s.user, query, questionID)
}

// FollowedQuestionsForUser returns the questions a user follows, in follow order.
func (s *Store) FollowedQuestionsForUser(ctx context.Context, userID int64) ([]Question, error) {
	const query = `SELECT ` + questionColumns + `
		FROM question_follows
		JOIN questions ON questions.id = question_follows.question_id
		WHERE question_follows.user_id = ?
		ORDER BY question_follows.id`
	return queryList(ctx, s, "question_follows.followed_questions_for_user", s.question, query, userID)
}

// MostFollowed returns the n questions with the most followers, highest
// first, ties broken by ascending question id. Questions nobody follows are
// not ranked, so fewer than n may come back. n <= 0 yields an empty slice.
func (s *Store) MostFollowed(ctx context.Context, n int) ([]Question, error) {
	if n <= 0 {
		return []Question{}, nil
	}
	const query = `SELECT ` + questionColumns + `
		FROM questions
		JOIN question_follows ON question_follows.question_id = questions.id
		GROUP BY questions.id
		ORDER BY COUNT(question_follows.id) DESC, questions.id ASC
		LIMIT ?`
	return queryList(ctx, s, "question_follows.most_followed", s.question, query, n)
}

// MostLiked returns the n questions with the most likes under the same
// ranking rules as MostFollowed.
func (s *Store) MostLiked(ctx context.Context, n int) ([]Question, error) {
	if n <= 0 {
		return []Question{}, nil
	}
	const query = `SELECT ` + questionColumns + `
		FROM questions
		JOIN question_likes ON question_likes.liked_q = questions.id
		GROUP BY questions.id
		ORDER BY COUNT(question_likes.id) DESC, questions.id ASC
		LIMIT ?`
	return queryList(ctx, s, "question_likes.most_liked", s.question, query, n)
}

// AverageKarma returns the mean number of likes across the questions a
// user has asked, or 0 for a user who has asked none. An unknown user id
// yields ErrUserNotFound.
func (s *Store) AverageKarma(ctx context.Context, userID int64) (float64, error) {
	const op = "users.average_karma"
	const query = `SELECT
			COUNT(DISTINCT questions.id) AS num_questions,
			COUNT(question_likes.id) AS num_likes
		FROM users
		LEFT JOIN questions ON questions.qauthor_id = users.id
		LEFT JOIN question_likes ON question_likes.liked_q = questions.id
		WHERE users.id = ?
		GROUP BY users.id`

	rows, err := s.query(ctx, op, query, userID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("%s: user %d: %w", op, userID, ErrUserNotFound)
	}

	questions, err := countColumn(op, rows[0], "num_questions")
	if err != nil {
		return 0, err
	}
	likes, err := countColumn(op, rows[0], "num_likes")
	if err != nil {
		return 0, err
	}
	if questions == 0 {
		return 0, nil
	}
	return float64(likes) / float64(questions), nil
}
