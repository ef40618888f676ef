package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/product"
	"github.com/tu-usuario/inventario-micro/internal/domain"
	"github.com/tu-usuario/inventario-micro/internal/domain/entity"
)

// ProductHandler maneja los productos (compras/ventas) de un ítem.
// Todas las rutas van detrás de IdentityMiddleware.
type ProductHandler struct {
	uc *product.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *product.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create crea un producto en el ítem de la ruta. 404 si el ítem no existe o
// no es del usuario; 400 si falta un campo o el type no es buy/sell.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Quantity <= 0 || in.Price == nil || in.Price.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, price, quantity y type son requeridos"})
	}
	if !entity.ValidProductType(in.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser 'buy' o 'sell'"})
	}
	out, err := h.uc.Create(GetToken(c), c.Params("inventoryId"), identity.UserID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem de inventario inexistente o no autorizado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los productos de un ítem, con filtro opcional month/year sobre la
// fecha de transacción. Cero resultados es 404, no lista vacía.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	if month < 0 || month > 12 || year < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe estar entre 1 y 12 y year ser positivo"})
	}
	out, err := h.uc.ListByItem(GetToken(c), c.Params("inventoryId"), identity.UserID, month, year)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "ítem de inventario inexistente o no autorizado"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay productos para este ítem"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Delete elimina un producto del usuario.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if err := h.uc.Delete(c.Params("productId"), identity.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado o no autorizado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// DeleteAll borra todos los productos del ítem. Cero borrados es éxito y
// responde el conteo: la cascada de inventario depende de este no-op.
func (h *ProductHandler) DeleteAll(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	deleted, err := h.uc.DeleteAll(GetToken(c), c.Params("inventoryId"), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem de inventario inexistente o no autorizado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DeleteAllResponse{Deleted: deleted})
}

// Summary acumula total_buy, total_sell y total_profit del ítem.
func (h *ProductHandler) Summary(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	out, err := h.uc.Summary(GetToken(c), c.Params("inventoryId"), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem de inventario inexistente o no autorizado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
