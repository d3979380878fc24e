package models

// User represents a CMS admin account. A single admin row is seeded at
// startup; additional accounts can only be created through the repository,
// never through the public API.
//
// The password is stored and compared as plain text. This mirrors the
// login contract of the admin panel, which issues no token or session.
type User struct {
	// ID is the server-generated unique identifier of the account.
	ID string `json:"id" bson:"_id"`

	// Username is the unique login identifier.
	Username string `json:"username" bson:"username"`

	// Password is the plain-text credential the login endpoint compares
	// against. Must never be exposed via JSON.
	Password string `json:"-" bson:"password"`

	// Name is the display name of the admin.
	Name string `json:"name" bson:"name"`

	// Email is the contact address of the admin.
	Email string `json:"email" bson:"email"`

	// Role is the account role. Defaults to "admin".
	Role string `json:"role" bson:"role"`
}

// InsertUser is the client-settable subset of User accepted by
// CreateUser. The ID is always server-generated.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// RoleAdmin is the default role assigned to created users.
const RoleAdmin = "admin"
