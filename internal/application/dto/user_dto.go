package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// LoginResponse token JWT emitido tras autenticación exitosa.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

// CreateUsuarioRequest body para POST /api/usuarios.
type CreateUsuarioRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
	Cargo string `json:"cargo"`
}

// UpdateUsuarioRequest body para PUT /api/usuarios/:id. Senha vacía = no cambiar.
type UpdateUsuarioRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha,omitempty"`
	Cargo string `json:"cargo"`
}

// UserResponse representación de un usuario en respuestas. Nunca incluye la senha.
type UserResponse struct {
	ID        int       `json:"id"`
	Login     string    `json:"login"`
	Cargo     string    `json:"cargo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
