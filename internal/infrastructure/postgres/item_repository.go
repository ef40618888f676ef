package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventario-micro/internal/domain"
	"github.com/tu-usuario/inventario-micro/internal/domain/entity"
	"github.com/tu-usuario/inventario-micro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para ítems.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO inventory_items (id, name, type, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.Type, item.CreatedAt, item.UserID,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un ítem por ID acotado por dueño. (nil, nil) si no
// existe o pertenece a otro usuario: ambos casos son indistinguibles arriba.
func (r *ItemRepo) GetByIDAndUser(id, userID string) (*entity.Item, error) {
	query := `
		SELECT id, name, type, created_at, user_id
		FROM inventory_items WHERE id = $1 AND user_id = $2`
	var it entity.Item
	err := r.pool.QueryRow(context.Background(), query, id, userID).Scan(
		&it.ID, &it.Name, &it.Type, &it.CreatedAt, &it.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListByUser lista los ítems del usuario, más recientes primero.
func (r *ItemRepo) ListByUser(userID string) ([]*entity.Item, error) {
	query := `
		SELECT id, name, type, created_at, user_id
		FROM inventory_items WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Type, &it.CreatedAt, &it.UserID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update reemplaza name y type del ítem, acotado por dueño como el resto de
// escrituras. ErrNotFound si el ítem ya no existe o cambió de dueño.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `UPDATE inventory_items SET name = $3, type = $4 WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(context.Background(), query, item.ID, item.UserID, item.Name, item.Type)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByIDAndUser elimina el ítem del usuario; false si no lo tocó.
func (r *ItemRepo) DeleteByIDAndUser(id, userID string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM inventory_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
