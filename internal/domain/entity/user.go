package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrador = "ADMINISTRADOR"
	RoleVendedor      = "VENDEDOR"
	RoleEstoquista    = "ESTOQUISTA"
)

// User representa un usuario operador del sistema.
type User struct {
	ID           int
	Login        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMINISTRADOR, VENDEDOR, ESTOQUISTA
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
