package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
	"github.com/tu-usuario/inventario-micro/internal/domain/entity"
	"github.com/tu-usuario/inventario-micro/internal/domain/repository"
)

// ProductUseCase casos de uso sobre productos (compras/ventas) de un ítem de
// inventario. Toda operación acotada a un ítem verifica antes la propiedad
// contra el servicio de inventario, reenviando el token del llamador.
type ProductUseCase struct {
	repo    repository.ProductRepository
	checker ports.OwnershipChecker
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, checker ports.OwnershipChecker) *ProductUseCase {
	return &ProductUseCase{repo: repo, checker: checker}
}

// Create crea un producto en el ítem indicado. ErrNotFound si el ítem no
// existe o no es del usuario; ErrInvalidInput si falta el precio. La fecha por
// defecto es el momento de creación.
func (uc *ProductUseCase) Create(token, itemID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price == nil {
		return nil, domain.ErrInvalidInput
	}
	owned, err := uc.checker.Check(token, itemID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrNotFound
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	product := &entity.Product{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Price:    *in.Price,
		Quantity: in.Quantity,
		Type:     in.Type,
		ItemID:   itemID,
		UserID:   userID,
		Date:     date,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListByItem lista los productos del ítem, opcionalmente filtrados por
// mes/año de la fecha de transacción. ErrForbidden si el ítem no es del
// usuario; ErrNotFound si no hay resultados (cero productos no es una lista
// vacía sino un 404, comportamiento que el chart anual aprovecha).
func (uc *ProductUseCase) ListByItem(token, itemID, userID string, month, year int) ([]dto.ProductResponse, error) {
	owned, err := uc.checker.Check(token, itemID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrForbidden
	}
	products, err := uc.repo.ListByItemAndUser(itemID, userID, month, year)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto del usuario. ErrNotFound si no existe o no es suyo.
func (uc *ProductUseCase) Delete(productID, userID string) error {
	deleted, err := uc.repo.DeleteByIDAndUser(productID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll borra todos los productos del ítem y devuelve cuántos eliminó.
// Cero borrados es éxito: un ítem sin productos debe poder eliminarse en la
// cascada de inventario. ErrNotFound solo si el ítem no es del usuario.
func (uc *ProductUseCase) DeleteAll(token, itemID, userID string) (int64, error) {
	owned, err := uc.checker.Check(token, itemID)
	if err != nil {
		return 0, err
	}
	if !owned {
		return 0, domain.ErrNotFound
	}
	return uc.repo.DeleteByItemAndUser(itemID, userID)
}

// Summary recorre todos los productos del ítem y acumula los totales:
// total_buy y total_sell como Σ price×quantity, profit = sell − buy.
func (uc *ProductUseCase) Summary(token, itemID, userID string) (*dto.SummaryResponse, error) {
	owned, err := uc.checker.Check(token, itemID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrNotFound
	}
	products, err := uc.repo.ListByItemAndUser(itemID, userID, 0, 0)
	if err != nil {
		return nil, err
	}
	totalBuy := decimal.Zero
	totalSell := decimal.Zero
	for _, p := range products {
		switch p.Type {
		case entity.ProductTypeBuy:
			totalBuy = totalBuy.Add(p.Value())
		case entity.ProductTypeSell:
			totalSell = totalSell.Add(p.Value())
		}
	}
	return &dto.SummaryResponse{
		TotalBuy:    totalBuy,
		TotalSell:   totalSell,
		TotalProfit: totalSell.Sub(totalBuy),
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Type:        p.Type,
		InventoryID: p.ItemID,
		UserID:      p.UserID,
		Date:        p.Date,
	}
}
