package forum

import "context"

// AllUsers returns every user in id order.
func (s *Store) AllUsers(ctx context.Context) ([]User, error) {
	const query = `SELECT id, fname, lname FROM users ORDER BY id`
	return queryList(ctx, s, "users.all", s.user, query)
}

// FindUserByID returns the user with the given id, or nil if there is none.
func (s *Store) FindUserByID(ctx context.Context, id int64) (*User, error) {
	const query = `SELECT id, fname, lname FROM users WHERE id = ?`
	return queryOne(ctx, s, "users.find_by_id", s.user, query, id)
}

// FindUsersByName returns every user with exactly this first and last name.
// Names are not unique, so the result may hold several users.
func (s *Store) FindUsersByName(ctx context.Context, firstName, lastName string) ([]User, error) {
	const query = `SELECT id, fname, lname FROM users
		WHERE fname = ? AND lname = ?
		ORDER BY id`
	return queryList(ctx, s, "users.find_by_name", s.user, query, firstName, lastName)
}
