package dto

// RegistrationRequest describes the signup payload. Type selects the account
// role: customer or business.
type RegistrationRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
	Type             string `json:"type"`
}

// LoginRequest describes username/password payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful registration or login.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserID   int64  `json:"user_id"`
}
