package repository

import "github.com/tu-usuario/inventario-micro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para los productos.
// month/year en cero significa sin filtro; con filtro se compara contra la
// fecha de transacción del producto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByIDAndUser(id, userID string) (*entity.Product, error)
	ListByItemAndUser(itemID, userID string, month, year int) ([]*entity.Product, error)
	// DeleteByIDAndUser devuelve false si el producto no existe o no es del usuario.
	DeleteByIDAndUser(id, userID string) (bool, error)
	// DeleteByItemAndUser borra en bloque y devuelve cuántos eliminó (cero es válido).
	DeleteByItemAndUser(itemID, userID string) (int64, error)
}
