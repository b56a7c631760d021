package identity

// AuthRequest carries the credentials for both registration and login.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	CurrentLevel int    `json:"current_level"`
	Token        string `json:"token"`
}
