package chart

import (
	"errors"
	"sort"
	"time"

	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
	"github.com/tu-usuario/inventario-micro/pkg/logger"
)

// ChartUseCase agrega datos de productos para presentación. No tiene
// almacenamiento propio: cada respuesta se recalcula consultando al servicio
// de productos con el token del llamador.
type ChartUseCase struct {
	checker ports.OwnershipChecker
	lister  ports.ProductLister
	log     *logger.Logger
}

// NewChartUseCase construye el caso de uso.
func NewChartUseCase(checker ports.OwnershipChecker, lister ports.ProductLister, log *logger.Logger) *ChartUseCase {
	return &ChartUseCase{checker: checker, lister: lister, log: log}
}

// Monthly devuelve los productos del ítem para el mes indicado, ordenados por
// fecha descendente. year en cero usa el año en curso. ErrInvalidInput si el
// mes está fuera de [1,12] o el año es negativo; ErrForbidden si el ítem no es
// del usuario; los fallos del servicio de productos se propagan tal cual.
func (uc *ChartUseCase) Monthly(token, itemID string, month, year int) ([]dto.ProductResponse, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	if year < 0 {
		return nil, domain.ErrInvalidInput
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	owned, err := uc.checker.Check(token, itemID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrForbidden
	}
	products, err := uc.lister.ListByItem(token, itemID, month, year)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(products)
	return products, nil
}

// Yearly devuelve un mapa mes → productos para el año indicado, doce claves
// siempre, cada lista ordenada por fecha descendente. Los fallos de un mes
// individual se tragan como lista vacía (igual que "mes sin datos") pero
// quedan en el log para el operador.
func (uc *ChartUseCase) Yearly(token, itemID string, year int) (dto.YearlyResponse, error) {
	if year < 0 {
		return nil, domain.ErrInvalidInput
	}
	owned, err := uc.checker.Check(token, itemID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrForbidden
	}
	out := make(dto.YearlyResponse, 12)
	for month := 1; month <= 12; month++ {
		products, err := uc.lister.ListByItem(token, itemID, month, year)
		if err != nil {
			// Un mes sin productos llega como ErrNotFound; cualquier otro
			// fallo también se convierte en lista vacía, pero se registra.
			if !errors.Is(err, domain.ErrNotFound) {
				uc.log.Warn().Err(err).Int("month", month).Int("year", year).
					Str("item_id", itemID).Msg("fallo al consultar productos del mes")
			}
			out[month] = []dto.ProductResponse{}
			continue
		}
		sortByDateDesc(products)
		out[month] = products
	}
	return out, nil
}

func sortByDateDesc(products []dto.ProductResponse) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].Date.After(products[j].Date)
	})
}
