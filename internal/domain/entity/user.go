package entity

import "time"

// Roles válidos para User. El modelo es cerrado: "staff" es simplemente
// "autenticado sin privilegios de admin".
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del sistema. Se crea en el registro; nunca se
// elimina y solo muta por cambio de contraseña.
type User struct {
	ID           string
	FullName     string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, staff
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol admin.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
