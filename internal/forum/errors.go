package forum

import "errors"

var (
	// ErrQuestionNotFound is returned by navigators that must distinguish a
	// missing question from an empty result.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrUserNotFound is returned by navigators that must distinguish a
	// missing user from an empty result.
	ErrUserNotFound = errors.New("user not found")

	// ErrIntegrity is returned when a row is missing a required column, holds
	// a value of the wrong type, or references a row that is not there.
	ErrIntegrity = errors.New("data integrity violation")

	// ErrExecution is returned when the executor fails to run a statement.
	// The executor's own error is preserved in the chain.
	ErrExecution = errors.New("statement execution failed")

	// ErrDetached is returned by record accessors when the record was not
	// loaded through a Store.
	ErrDetached = errors.New("record is not attached to a store")
)
