package model

// Scope is the per-request identity extracted from the verified token.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
