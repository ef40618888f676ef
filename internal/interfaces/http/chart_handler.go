package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-micro/internal/application/chart"
	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/domain"
)

// ChartHandler expone las agregaciones mensual y anual. Sin almacenamiento:
// todo sale del servicio de productos en el momento de la petición.
type ChartHandler struct {
	uc *chart.ChartUseCase
}

// NewChartHandler construye el handler del chart.
func NewChartHandler(uc *chart.ChartUseCase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// Monthly lista los productos del mes indicado ordenados por fecha
// descendente. month es obligatorio en [1,12]; year opcional (año en curso).
func (h *ChartHandler) Monthly(c *fiber.Ctx) error {
	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	out, err := h.uc.Monthly(GetToken(c), c.Params("inventoryId"), month, year)
	if err != nil {
		return chartError(c, err)
	}
	return c.JSON(out)
}

// Yearly devuelve el mapa mes → productos de los doce meses del año indicado.
func (h *ChartHandler) Yearly(c *fiber.Ctx) error {
	year := c.QueryInt("year", -1)
	out, err := h.uc.Yearly(GetToken(c), c.Params("inventoryId"), year)
	if err != nil {
		return chartError(c, err)
	}
	return c.JSON(out)
}

// chartError traduce los errores del usecase; los fallos del servicio de
// productos se propagan con su status original.
func chartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe estar entre 1 y 12 y year ser positivo"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "ítem de inventario inexistente o no autorizado"})
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrMissingToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay productos para este ítem"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
	}
}
