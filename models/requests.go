package models

// ReorderEntry names a single record and its new sort key in a reorder
// request. Entries referencing unknown ids are skipped silently.
type ReorderEntry struct {
	ID    string `json:"id"`
	Order string `json:"order"`
}

// ReorderSkillsRequest is the body of PATCH /api/skills/reorder.
type ReorderSkillsRequest struct {
	Skills []ReorderEntry `json:"skills"`
}

// ReorderProjectsRequest is the body of PATCH /api/projects/reorder.
type ReorderProjectsRequest struct {
	Projects []ReorderEntry `json:"projects"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
