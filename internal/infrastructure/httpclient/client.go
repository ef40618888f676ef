// Package httpclient implementa los puertos de capacidad (ports) como
// clientes HTTP contra los servicios pares. Todas las llamadas reenvían el
// token del llamador en la cabecera auth-token, sin modificarlo.
package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/inventario-micro/internal/domain"
)

// Cabecera de identidad propia del sistema (no usa Authorization estándar).
const headerAuthToken = "auth-token"

const defaultTimeout = 10 * time.Second

// Client base compartida: URL base del par y un http.Client con timeout para
// que un par caído falle la petición en vez de colgarla.
type Client struct {
	baseURL string
	http    *http.Client
}

// New construye un cliente contra la URL base indicada.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// get lanza un GET a path con el token en la cabecera. Un fallo de transporte
// se envuelve sobre domain.ErrUpstream; el status lo interpreta cada cliente.
func (c *Client) get(path, token string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: construir petición: %v", domain.ErrUpstream, err)
	}
	req.Header.Set(headerAuthToken, token)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return resp, nil
}

// decode decodifica el cuerpo JSON en out y cierra el body.
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar respuesta: %v", domain.ErrUpstream, err)
	}
	return nil
}
