package dto

import "time"

// SignUpRequest entrada para registrar un usuario.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
}

// SignInRequest entrada para iniciar sesión.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse token emitido al iniciar sesión.
type SignInResponse struct {
	AccessToken string `json:"access_token"`
}

// UserResponse salida de un usuario; nunca incluye el password ni su hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// IdentityResponse tripleta de identidad que consume el resto de servicios.
type IdentityResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
