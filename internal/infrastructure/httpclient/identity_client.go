package httpclient

import (
	"fmt"
	"net/http"

	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
)

var _ ports.IdentityResolver = (*IdentityClient)(nil)

// IdentityClient resuelve identidad contra el endpoint /user_id del servicio
// de usuarios.
type IdentityClient struct {
	c *Client
}

// NewIdentityClient construye el cliente con la URL base del servicio de usuarios.
func NewIdentityClient(baseURL string) *IdentityClient {
	return &IdentityClient{c: New(baseURL)}
}

// Resolve llama a GET /user_id reenviando el token y traduce el status a los
// errores de dominio que esperan los usecases.
func (cl *IdentityClient) Resolve(token string) (*ports.Identity, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	resp, err := cl.c.get("/user_id", token)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		var out dto.IdentityResponse
		if err := decode(resp, &out); err != nil {
			return nil, err
		}
		return &ports.Identity{UserID: out.UserID, Username: out.Username, Email: out.Email}, nil
	case http.StatusBadRequest:
		resp.Body.Close()
		return nil, domain.ErrMissingToken
	case http.StatusUnauthorized:
		resp.Body.Close()
		return nil, domain.ErrInvalidToken
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, domain.ErrUserNotFound
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: /user_id devolvió %d", domain.ErrUpstream, resp.StatusCode)
	}
}
