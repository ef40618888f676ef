package httpclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
)

var _ ports.OwnershipChecker = (*InventoryClient)(nil)

// InventoryClient verifica propiedad contra /checkInventory del servicio de
// inventario.
type InventoryClient struct {
	c *Client
}

// NewInventoryClient construye el cliente con la URL base del servicio de inventario.
func NewInventoryClient(baseURL string) *InventoryClient {
	return &InventoryClient{c: New(baseURL)}
}

// Check llama a GET /checkInventory/{id}. 200 → existe y es del usuario;
// 403 y 404 → false sin distinguir; cualquier otro status o fallo de
// transporte es fatal para la operación llamadora.
func (cl *InventoryClient) Check(token, itemID string) (bool, error) {
	resp, err := cl.c.get("/checkInventory/"+url.PathEscape(itemID), token)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusForbidden, http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: /checkInventory devolvió %d", domain.ErrUpstream, resp.StatusCode)
	}
}
