// Package ports define las capacidades transversales que los usecases reciben
// inyectadas: resolución de identidad, verificación de propiedad y las
// operaciones remotas sobre productos. En producción las implementan clientes
// HTTP (o el propio usecase de auth en el servicio de usuarios); en tests,
// fakes en memoria.
package ports

import "github.com/tu-usuario/inventario-micro/internal/application/dto"

// Identity tripleta resuelta desde un token opaco.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

// IdentityResolver resuelve un auth-token a una identidad.
// Errores: domain.ErrMissingToken (token vacío), domain.ErrInvalidToken
// (firma/expiración/revocado), domain.ErrUserNotFound (token válido sin
// usuario). Un fallo de transporte llega envuelto sobre domain.ErrUpstream.
type IdentityResolver interface {
	Resolve(token string) (*Identity, error)
}

// OwnershipChecker responde si un ítem de inventario existe y es del usuario
// dueño del token. No-existe y no-es-dueño son ambos false; un fallo de
// transporte es error y aborta la operación que lo necesitaba.
type OwnershipChecker interface {
	Check(token, itemID string) (bool, error)
}

// ProductPurger elimina todos los productos de un ítem (cascada del borrado de
// inventario). Cero productos borrados es un no-op exitoso.
type ProductPurger interface {
	DeleteAll(token, itemID string) (int64, error)
}

// ProductLister lista los productos de un ítem para el chart; month/year en
// cero significa sin filtro.
type ProductLister interface {
	ListByItem(token, itemID string, month, year int) ([]dto.ProductResponse, error)
}
