// AngelaMos | 2026
// dto.go

package auth

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type LoginResponse struct {
	Status    string `json:"status"`
	Name      string `json:"name"`
	UserID    int64  `json:"user_id"`
	SessionID string `json:"session_id"`
}

// SessionRequest is the body for both validation and logout.
type SessionRequest struct {
	Email     string `json:"email"      validate:"required,email,max=255"`
	SessionID string `json:"session_id" validate:"required"`
}

type SessionStatusResponse struct {
	Status string `json:"status"`
}
