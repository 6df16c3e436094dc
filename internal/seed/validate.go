package seed

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the fixture for problems the schema would reject or that
// would break reply threads. All problems are reported together.
func (fx *Fixture) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidFixture, fmt.Sprintf(format, args...)))
	}

	users := make(map[int64]bool, len(fx.Users))
	for _, u := range fx.Users {
		switch {
		case u.ID <= 0:
			add("user id %d must be positive", u.ID)
		case users[u.ID]:
			add("duplicate user id %d", u.ID)
		}
		users[u.ID] = true
		if strings.TrimSpace(u.FirstName) == "" || strings.TrimSpace(u.LastName) == "" {
			add("user %d: fname and lname are required", u.ID)
		}
	}

	questions := make(map[int64]bool, len(fx.Questions))
	for _, q := range fx.Questions {
		switch {
		case q.ID <= 0:
			add("question id %d must be positive", q.ID)
		case questions[q.ID]:
			add("duplicate question id %d", q.ID)
		}
		questions[q.ID] = true
		if strings.TrimSpace(q.Title) == "" {
			add("question %d: title is required", q.ID)
		}
		if !users[q.AuthorID] {
			add("question %d: author %d does not exist", q.ID, q.AuthorID)
		}
	}

	replies := make(map[int64]Reply, len(fx.Replies))
	for _, r := range fx.Replies {
		switch {
		case r.ID <= 0:
			add("reply id %d must be positive", r.ID)
		case replies[r.ID].ID != 0:
			add("duplicate reply id %d", r.ID)
		}
		replies[r.ID] = r
		if !questions[r.QuestionID] {
			add("reply %d: question %d does not exist", r.ID, r.QuestionID)
		}
		if !users[r.AuthorID] {
			add("reply %d: author %d does not exist", r.ID, r.AuthorID)
		}
	}
	for _, r := range fx.Replies {
		if r.ParentID == nil {
			continue
		}
		parent, ok := replies[*r.ParentID]
		switch {
		case !ok:
			add("reply %d: parent %d does not exist", r.ID, *r.ParentID)
		case parent.QuestionID != r.QuestionID:
			add("reply %d: parent %d belongs to question %d, not %d", r.ID, parent.ID, parent.QuestionID, r.QuestionID)
		}
	}
	if id, ok := findParentCycle(replies); ok {
		add("reply %d is part of a parent cycle", id)
	}

	errs = append(errs, validateJoin("follow", fx.followRows(), users, questions)...)
	errs = append(errs, validateJoin("like", fx.likeRows(), users, questions)...)

	return errors.Join(errs...)
}

type joinRow struct {
	id, userID, questionID int64
}

func (fx *Fixture) followRows() []joinRow {
	rows := make([]joinRow, 0, len(fx.Follows))
	for _, f := range fx.Follows {
		rows = append(rows, joinRow{f.ID, f.UserID, f.QuestionID})
	}
	return rows
}

func (fx *Fixture) likeRows() []joinRow {
	rows := make([]joinRow, 0, len(fx.Likes))
	for _, l := range fx.Likes {
		rows = append(rows, joinRow{l.ID, l.UserID, l.QuestionID})
	}
	return rows
}

func validateJoin(kind string, rows []joinRow, users, questions map[int64]bool) []error {
	var errs []error
	seen := make(map[int64]bool, len(rows))
	for _, r := range rows {
		switch {
		case r.id <= 0:
			errs = append(errs, fmt.Errorf("%w: %s id %d must be positive", ErrInvalidFixture, kind, r.id))
		case seen[r.id]:
			errs = append(errs, fmt.Errorf("%w: duplicate %s id %d", ErrInvalidFixture, kind, r.id))
		}
		seen[r.id] = true
		if !users[r.userID] {
			errs = append(errs, fmt.Errorf("%w: %s %d: user %d does not exist", ErrInvalidFixture, kind, r.id, r.userID))
		}
		if !questions[r.questionID] {
			errs = append(errs, fmt.Errorf("%w: %s %d: question %d does not exist", ErrInvalidFixture, kind, r.id, r.questionID))
		}
	}
	return errs
}

// findParentCycle reports a reply id that lies on a parent cycle, if any.
func findParentCycle(replies map[int64]Reply) (int64, bool) {
	for id := range replies {
		seen := map[int64]bool{}
		cur := id
		for {
			if seen[cur] {
				return cur, true
			}
			seen[cur] = true
			r, ok := replies[cur]
			if !ok || r.ParentID == nil {
				break
			}
			cur = *r.ParentID
		}
	}
	return 0, false
}
