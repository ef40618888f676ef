package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventario-micro/internal/domain/entity"
	"github.com/tu-usuario/inventario-micro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, quantity, type, inventory_id, user_id, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Quantity, product.Type,
		product.ItemID, product.UserID, product.Date,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un producto por ID acotado por dueño. (nil, nil) si
// no existe o es de otro usuario.
func (r *ProductRepo) GetByIDAndUser(id, userID string) (*entity.Product, error) {
	query := `
		SELECT id, name, price, quantity, type, inventory_id, user_id, date
		FROM products WHERE id = $1 AND user_id = $2`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id, userID).Scan(
		&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Type, &p.ItemID, &p.UserID, &p.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByItemAndUser lista los productos de un ítem del usuario. month/year en
// cero listan todo; con valores filtran por la fecha de transacción (en UTC,
// que es como se persiste).
func (r *ProductRepo) ListByItemAndUser(itemID, userID string, month, year int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, quantity, type, inventory_id, user_id, date
		FROM products WHERE inventory_id = $1 AND user_id = $2`
	args := []any{itemID, userID}
	if month > 0 {
		args = append(args, month)
		query += fmt.Sprintf(` AND EXTRACT(MONTH FROM date AT TIME ZONE 'UTC') = $%d`, len(args))
	}
	if year > 0 {
		args = append(args, year)
		query += fmt.Sprintf(` AND EXTRACT(YEAR FROM date AT TIME ZONE 'UTC') = $%d`, len(args))
	}
	query += ` ORDER BY date DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Type, &p.ItemID, &p.UserID, &p.Date); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DeleteByIDAndUser elimina un producto del usuario; false si no lo tocó.
func (r *ProductRepo) DeleteByIDAndUser(id, userID string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByItemAndUser borra todos los productos de un ítem del usuario y
// devuelve cuántos eliminó; cero es un resultado normal.
func (r *ProductRepo) DeleteByItemAndUser(itemID, userID string) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM products WHERE inventory_id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete products by item: %w", err)
	}
	return tag.RowsAffected(), nil
}
