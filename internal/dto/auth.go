package dto

// LoginRequest is the login form body.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
