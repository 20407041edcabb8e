package dto

// AuthResult is the outcome of a register or login attempt. Failures are
// reported here as values rather than errors so callers can inspect and
// display them directly.
type AuthResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
