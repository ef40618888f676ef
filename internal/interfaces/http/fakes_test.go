package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
	"github.com/tu-usuario/inventario-micro/internal/domain/entity"
	ihttp "github.com/tu-usuario/inventario-micro/internal/interfaces/http"
)

// Fakes en memoria compartidos por los tests de handlers. Replican el contrato
// de los repositorios: lecturas acotadas por dueño devuelven (nil, nil) cuando
// no hay registro.

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateToken(id string, token *string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Token = token
	return nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(it *entity.Item) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByIDAndUser(id, userID string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok || it.UserID != userID {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) ListByUser(userID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.UserID == userID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(it *entity.Item) error {
	existing, ok := r.items[it.ID]
	if !ok || existing.UserID != it.UserID {
		return domain.ErrNotFound
	}
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeItemRepo) DeleteByIDAndUser(id, userID string) (bool, error) {
	it, ok := r.items[id]
	if !ok || it.UserID != userID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByIDAndUser(id, userID string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListByItemAndUser(itemID, userID string, month, year int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.ItemID != itemID || p.UserID != userID {
			continue
		}
		if month > 0 && int(p.Date.UTC().Month()) != month {
			continue
		}
		if year > 0 && p.Date.UTC().Year() != year {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) DeleteByIDAndUser(id, userID string) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.UserID != userID {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func (r *fakeProductRepo) DeleteByItemAndUser(itemID, userID string) (int64, error) {
	var n int64
	for id, p := range r.products {
		if p.ItemID == itemID && p.UserID == userID {
			delete(r.products, id)
			n++
		}
	}
	return n, nil
}

// fakeResolver imita al cliente HTTP de identidad: token vacío falla con
// ErrMissingToken, cualquier otro resuelve la identidad configurada.
type fakeResolver struct {
	identity ports.Identity
	err      error
}

func (r *fakeResolver) Resolve(token string) (*ports.Identity, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	if r.err != nil {
		return nil, r.err
	}
	cp := r.identity
	return &cp, nil
}

type fakeChecker struct {
	owned map[string]bool
	err   error
}

func (c *fakeChecker) Check(token, itemID string) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return c.owned[itemID], nil
}

type fakePurger struct {
	deleted int64
	err     error
	calls   int
}

func (p *fakePurger) DeleteAll(token, itemID string) (int64, error) {
	p.calls++
	if p.err != nil {
		return 0, p.err
	}
	return p.deleted, nil
}

type fakeLister struct {
	byMonth map[int][]dto.ProductResponse
}

func (l *fakeLister) ListByItem(token, itemID string, month, year int) ([]dto.ProductResponse, error) {
	products, ok := l.byMonth[month]
	if !ok || len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	return products, nil
}

// doRequest ejecuta una petición contra la app con el cuerpo serializado a
// JSON y la cabecera de identidad si token no está vacío.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(ihttp.HeaderAuthToken, token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody deserializa el cuerpo JSON de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
