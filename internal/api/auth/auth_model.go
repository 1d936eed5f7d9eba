package auth

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the expected JSON body for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the successful JSON response after login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

// Claims carried by the access token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
