package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/inventory"
	"github.com/tu-usuario/inventario-micro/internal/domain"
)

// InventoryHandler maneja el CRUD de ítems y la verificación de propiedad.
// Todas las rutas van detrás de IdentityMiddleware.
type InventoryHandler struct {
	uc *inventory.ItemUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.ItemUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Check responde 200 true si el ítem existe y es del usuario; 403 false si no
// existe o es de otro (indistinguibles a propósito: no revela existencia).
func (h *InventoryHandler) Check(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	owned, err := h.uc.CheckOwnership(c.Params("id"), identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !owned {
		return c.Status(fiber.StatusForbidden).JSON(false)
	}
	return c.JSON(true)
}

// List lista los ítems del usuario.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	out, err := h.uc.List(identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get obtiene un ítem del usuario.
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	out, err := h.uc.Get(c.Params("id"), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado o no autorizado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create crea un ítem; name y type son obligatorios.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y type son requeridos"})
	}
	out, err := h.uc.Create(identity.UserID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza name y type de un ítem; ambos obligatorios.
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y type son requeridos"})
	}
	out, err := h.uc.Update(c.Params("id"), identity.UserID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado o no autorizado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete elimina un ítem con cascada sobre sus productos. Si la purga remota
// falla, el ítem se conserva y se responde 500.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	err := h.uc.Delete(GetToken(c), c.Params("id"), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado o no autorizado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CASCADE_FAILED", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
