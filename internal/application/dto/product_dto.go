package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto en un ítem de inventario.
// Price es puntero para distinguir un cuerpo sin price de un price en cero.
// Date es opcional: vacío usa el momento de creación.
type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required,min=1,max=200"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Quantity int              `json:"quantity"`
	Type     string           `json:"type" validate:"required,oneof=buy sell"`
	Date     *time.Time       `json:"date"`
}

// ProductResponse salida de un producto. El chart ordena por Date, por eso la
// fecha siempre viaja en los listados.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Type        string          `json:"type"`
	InventoryID string          `json:"inventory_id"`
	UserID      string          `json:"user_id"`
	Date        time.Time       `json:"date"`
}

// SummaryResponse totales de compra/venta de un ítem. Los totales son siempre
// Σ price×quantity recalculadas en cada petición.
type SummaryResponse struct {
	TotalBuy    decimal.Decimal `json:"total_buy"`
	TotalSell   decimal.Decimal `json:"total_sell"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}

// DeleteAllResponse resultado del borrado en bloque; Deleted puede ser cero.
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}
