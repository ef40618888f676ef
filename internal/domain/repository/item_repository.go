package repository

import "github.com/tu-usuario/inventario-micro/internal/domain/entity"

// ItemRepository define el puerto de persistencia para los ítems de inventario.
// Todas las lecturas y borrados van acotados por dueño: un ítem de otro usuario
// es indistinguible de uno inexistente.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByIDAndUser(id, userID string) (*entity.Item, error)
	ListByUser(userID string) ([]*entity.Item, error)
	// Update escribe acotado por dueño; ErrNotFound si no tocó ninguna fila.
	Update(item *entity.Item) error
	// DeleteByIDAndUser devuelve false si el ítem no existe o no es del usuario.
	DeleteByIDAndUser(id, userID string) (bool, error)
}
