package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// outcomes. Callers should use [errors.Is] to match against these values.
// A not-found sentinel is a normal contract outcome, distinct from a
// backing-store fault, and maps to 404 at the HTTP boundary.
var (
	// ErrUserNotFound is returned when a lookup by id or username
	// matches no admin account.
	ErrUserNotFound = errors.New("user was not found")

	// ErrSkillNotFound is returned when a mutation or lookup targets a
	// skill id absent from the collection.
	ErrSkillNotFound = errors.New("skill was not found")

	// ErrProjectNotFound is returned when a mutation or lookup targets a
	// project id absent from the collection.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrContactNotFound is returned when a flag flip or lookup targets a
	// contact id absent from the inbox.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrUsernameAlreadyExists is returned when creating an account whose
	// username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Backend selection errors.
var (
	// ErrUnknownBackend is returned by NewStorages when the configured
	// storage backend name is neither "memory" nor "mongodb".
	ErrUnknownBackend = errors.New("unknown storage backend")
)
