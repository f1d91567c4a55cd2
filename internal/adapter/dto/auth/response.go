package auth

// LoginResponse is returned on successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// MeResponse describes the caller's resolved session
type MeResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
