package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrGroupAlreadyExists is returned when a group id is already taken.
	ErrGroupAlreadyExists = errors.New("group already exists")

	// ErrGroupNotFound is returned when no group matches the given id.
	ErrGroupNotFound = errors.New("group was not found")

	// ErrMemberAlreadyExists is returned when a device is already a member
	// of the group.
	ErrMemberAlreadyExists = errors.New("device is already a group member")

	// ErrMemberNotFound is returned when a delete targets a device that is
	// not a member.
	ErrMemberNotFound = errors.New("group member was not found")

	// ErrUnknownDriver is returned for a database driver other than sqlite
	// or postgres.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails. The
	// transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
