package entity

import "time"

// User representa un usuario del sistema. Token guarda el espejo del último
// token emitido: nil significa sesión cerrada y la resolución de identidad lo
// exige igual al token presentado, así logout revoca de verdad.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Token        *string
	CreatedAt    time.Time
}
