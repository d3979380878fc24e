package models

// LoginUser is the user fragment returned on successful login.
// No token or session accompanies it — the admin panel stores a local
// success flag.
type LoginUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse is the body returned by POST /api/auth/login.
type LoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    *LoginUser `json:"user,omitempty"`
}

// MessageResponse is the generic confirmation/error body
// (delete confirmations, reorder confirmations, 4xx/5xx messages).
type MessageResponse struct {
	Message string `json:"message"`
}
