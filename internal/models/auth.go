package models

// AuthResponse contains the authentication response from login
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
