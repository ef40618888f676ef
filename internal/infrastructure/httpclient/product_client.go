package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
)

var (
	_ ports.ProductPurger = (*ProductClient)(nil)
	_ ports.ProductLister = (*ProductClient)(nil)
)

// ProductClient consume el servicio de productos: purga en cascada para
// inventario y listados para el chart.
type ProductClient struct {
	c *Client
}

// NewProductClient construye el cliente con la URL base del servicio de productos.
func NewProductClient(baseURL string) *ProductClient {
	return &ProductClient{c: New(baseURL)}
}

// DeleteAll llama a GET /products/delete_all/{id} y devuelve cuántos productos
// se borraron; cero es un no-op exitoso.
func (cl *ProductClient) DeleteAll(token, itemID string) (int64, error) {
	resp, err := cl.c.get("/products/delete_all/"+url.PathEscape(itemID), token)
	if err != nil {
		return 0, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		var out dto.DeleteAllResponse
		if err := decode(resp, &out); err != nil {
			return 0, err
		}
		return out.Deleted, nil
	case http.StatusUnauthorized:
		resp.Body.Close()
		return 0, domain.ErrInvalidToken
	case http.StatusNotFound:
		resp.Body.Close()
		return 0, domain.ErrNotFound
	default:
		resp.Body.Close()
		return 0, fmt.Errorf("%w: /products/delete_all devolvió %d", domain.ErrUpstream, resp.StatusCode)
	}
}

// ListByItem llama a GET /products/{id}, con month/year como query params si
// vienen en positivo. Un ítem sin productos responde 404 → ErrNotFound.
func (cl *ProductClient) ListByItem(token, itemID string, month, year int) ([]dto.ProductResponse, error) {
	path := "/products/" + url.PathEscape(itemID)
	q := url.Values{}
	if month > 0 {
		q.Set("month", strconv.Itoa(month))
	}
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	resp, err := cl.c.get(path, token)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		var out []dto.ProductResponse
		if err := decode(resp, &out); err != nil {
			return nil, err
		}
		return out, nil
	case http.StatusUnauthorized:
		resp.Body.Close()
		return nil, domain.ErrInvalidToken
	case http.StatusForbidden:
		resp.Body.Close()
		return nil, domain.ErrForbidden
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, domain.ErrNotFound
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: /products devolvió %d", domain.ErrUpstream, resp.StatusCode)
	}
}
