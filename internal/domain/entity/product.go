package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos válidos para Product.
const (
	ProductTypeBuy  = "buy"
	ProductTypeSell = "sell"
)

// Product representa un registro de compra o venta dentro de un ítem de
// inventario. Date es la fecha de la transacción y por defecto es el momento
// de creación; el valor monetario siempre se calcula como Price × Quantity,
// nunca se cachea.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Type      string // buy | sell
	ItemID    string // ítem de inventario al que pertenece
	UserID    string
	Date      time.Time
}

// ValidProductType indica si t es uno de los tipos aceptados.
func ValidProductType(t string) bool {
	return t == ProductTypeBuy || t == ProductTypeSell
}

// Value devuelve Price × Quantity.
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
