package repository

import "github.com/tu-usuario/inventario-micro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay registro.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// UpdateToken fija el espejo del token: nil lo limpia (logout).
	UpdateToken(id string, token *string) error
}
