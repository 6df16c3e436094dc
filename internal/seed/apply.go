package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/nerrad567/questions-core/internal/infrastructure/database"
)

// Apply writes fx into db in one transaction. Parents are inserted before
// the rows that reference them, so foreign keys hold throughout.
//
// If the users table already has rows the store is considered seeded and
// Apply returns without writing.
func Apply(ctx context.Context, db *database.DB, fx *Fixture, logger *slog.Logger) error {
	if err := fx.Validate(); err != nil {
		return err
	}

	rows, err := db.Query(ctx, "SELECT COUNT(*) AS n FROM users")
	if err != nil {
		return fmt.Errorf("checking user count: %w", err)
	}
	if n, _ := rows[0]["n"].(int64); n > 0 {
		logger.Info("users exist, skipping seed", "users", n)
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	if err := insertAll(ctx, tx, fx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}

	logger.Info("seed applied",
		"users", len(fx.Users),
		"questions", len(fx.Questions),
		"replies", len(fx.Replies),
		"follows", len(fx.Follows),
		"likes", len(fx.Likes),
	)
	return nil
}

func insertAll(ctx context.Context, tx *sql.Tx, fx *Fixture) error {
	for _, u := range fx.Users {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO users (id, fname, lname) VALUES (?, ?, ?)",
			u.ID, u.FirstName, u.LastName,
		); err != nil {
			return fmt.Errorf("inserting user %d: %w", u.ID, err)
		}
	}

	for _, q := range fx.Questions {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO questions (id, title, qbody, qauthor_id) VALUES (?, ?, ?, ?)",
			q.ID, q.Title, q.Body, q.AuthorID,
		); err != nil {
			return fmt.Errorf("inserting question %d: %w", q.ID, err)
		}
	}

	for _, r := range parentsFirst(fx.Replies) {
		var parent any
		if r.ParentID != nil {
			parent = *r.ParentID
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO replies (id, subject_q, parent_id, rauthor_id, rbody) VALUES (?, ?, ?, ?, ?)",
			r.ID, r.QuestionID, parent, r.AuthorID, r.Body,
		); err != nil {
			return fmt.Errorf("inserting reply %d: %w", r.ID, err)
		}
	}

	for _, f := range fx.Follows {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO question_follows (id, user_id, question_id) VALUES (?, ?, ?)",
			f.ID, f.UserID, f.QuestionID,
		); err != nil {
			return fmt.Errorf("inserting follow %d: %w", f.ID, err)
		}
	}

	for _, l := range fx.Likes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO question_likes (id, liked_user, liked_q) VALUES (?, ?, ?)",
			l.ID, l.UserID, l.QuestionID,
		); err != nil {
			return fmt.Errorf("inserting like %d: %w", l.ID, err)
		}
	}
	return nil
}

// parentsFirst orders replies so every parent precedes its children while
// keeping fixture order otherwise. The fixture must already be validated.
func parentsFirst(replies []Reply) []Reply {
	byID := make(map[int64]Reply, len(replies))
	for _, r := range replies {
		byID[r.ID] = r
	}

	out := make([]Reply, 0, len(replies))
	placed := make(map[int64]bool, len(replies))
	var place func(Reply)
	place = func(r Reply) {
		if placed[r.ID] {
			return
		}
		if r.ParentID != nil {
			if parent, ok := byID[*r.ParentID]; ok {
				place(parent)
			}
		}
		placed[r.ID] = true
		out = append(out, r)
	}
	for _, r := range replies {
		place(r)
	}
	return out
}
