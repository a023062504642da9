package dto

// LoginRequest matches the login form exactly; empty fields fall through to
// the same uniform 401 as any other bad credential.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
