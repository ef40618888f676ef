package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/inventory"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
	"github.com/tu-usuario/inventario-micro/internal/domain/entity"
	ihttp "github.com/tu-usuario/inventario-micro/internal/interfaces/http"
)

const (
	testUserID  = "user-1"
	otherUserID = "user-2"
	testToken   = "token-valido"
)

func newInventoryApp(purger *fakePurger) (*fiber.App, *fakeItemRepo) {
	repo := newFakeItemRepo()
	uc := inventory.NewItemUseCase(repo, purger)
	resolver := &fakeResolver{identity: ports.Identity{
		UserID: testUserID, Username: "marta", Email: "marta@example.com",
	}}
	app := fiber.New()
	ihttp.InventoryRouter(app, ihttp.NewInventoryHandler(uc), resolver)
	return app, repo
}

func seedItem(repo *fakeItemRepo, id, userID string) {
	repo.items[id] = &entity.Item{
		ID: id, Name: "bodega", Type: "almacén", CreatedAt: time.Now(), UserID: userID,
	}
}

// Sin cabecera auth-token toda ruta protegida corta en 401 sin tocar el
// almacenamiento.
func TestInventory_SinTokenEs401(t *testing.T) {
	app, repo := newInventoryApp(&fakePurger{})

	resp := doRequest(t, app, http.MethodPost, "/createItem", "", dto.ItemRequest{
		Name: "bodega", Type: "almacén",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, repo.items, "la petición rechazada no debe crear nada")
}

func TestCheckInventory_PropioEs200True(t *testing.T) {
	app, repo := newInventoryApp(&fakePurger{})
	seedItem(repo, "item-1", testUserID)

	resp := doRequest(t, app, http.MethodGet, "/checkInventory/item-1", testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var owned bool
	decodeBody(t, resp, &owned)
	assert.True(t, owned)
}

// Ítem ajeno e ítem inexistente responden el mismo 403 false.
func TestCheckInventory_AjenoOInexistenteEs403False(t *testing.T) {
	app, repo := newInventoryApp(&fakePurger{})
	seedItem(repo, "item-ajeno", otherUserID)

	for _, id := range []string{"item-ajeno", "no-existe"} {
		resp := doRequest(t, app, http.MethodGet, "/checkInventory/"+id, testToken, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode, "ítem %s", id)
		var owned bool
		decodeBody(t, resp, &owned)
		assert.False(t, owned)
	}
}

func TestCreateItem_Valido(t *testing.T) {
	app, repo := newInventoryApp(&fakePurger{})

	resp := doRequest(t, app, http.MethodPost, "/createItem", testToken, dto.ItemRequest{
		Name: "bodega", Type: "almacén",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.ItemResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "bodega", out.Name)
	assert.Equal(t, testUserID, out.UserID)
	assert.Len(t, repo.items, 1)
}

func TestCreateItem_SinTypeEs400(t *testing.T) {
	app, repo := newInventoryApp(&fakePurger{})

	resp := doRequest(t, app, http.MethodPost, "/createItem", testToken, dto.ItemRequest{Name: "bodega"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, repo.items)
}

// El listado solo trae los ítems del usuario autenticado.
func TestListItems_SoloLosPropios(t *testing.T) {
	app, repo := newInventoryApp(&fakePurger{})
	seedItem(repo, "item-1", testUserID)
	seedItem(repo, "item-2", testUserID)
	seedItem(repo, "item-ajeno", otherUserID)

	resp := doRequest(t, app, http.MethodGet, "/items", testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.ItemResponse
	decodeBody(t, resp, &out)
	assert.Len(t, out, 2)
	for _, it := range out {
		assert.Equal(t, testUserID, it.UserID)
	}
}

func TestUpdateItem_AjenoEs404(t *testing.T) {
	app, repo := newInventoryApp(&fakePurger{})
	seedItem(repo, "item-ajeno", otherUserID)

	resp := doRequest(t, app, http.MethodPut, "/items/item-ajeno", testToken, dto.ItemRequest{
		Name: "robada", Type: "almacén",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, "bodega", repo.items["item-ajeno"].Name, "el ítem ajeno no debe cambiar")
}

// El borrado cascadea: purga los productos remotos y luego borra el ítem.
func TestDeleteItem_ConCascadaEs204(t *testing.T) {
	purger := &fakePurger{deleted: 3}
	app, repo := newInventoryApp(purger)
	seedItem(repo, "item-1", testUserID)

	resp := doRequest(t, app, http.MethodDelete, "/items/item-1", testToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, 1, purger.calls)
	assert.Empty(t, repo.items)
}

// Si la purga remota falla el ítem se conserva y se responde 500.
func TestDeleteItem_PurgaFallidaConservaElItem(t *testing.T) {
	purger := &fakePurger{err: domain.ErrUpstream}
	app, repo := newInventoryApp(purger)
	seedItem(repo, "item-1", testUserID)

	resp := doRequest(t, app, http.MethodDelete, "/items/item-1", testToken, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "CASCADE_FAILED", out.Code)
	assert.Len(t, repo.items, 1, "el ítem debe sobrevivir a la purga fallida")
}

func TestDeleteItem_AjenoEs404SinPurga(t *testing.T) {
	purger := &fakePurger{}
	app, repo := newInventoryApp(purger)
	seedItem(repo, "item-ajeno", otherUserID)

	resp := doRequest(t, app, http.MethodDelete, "/items/item-ajeno", testToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
	assert.Zero(t, purger.calls, "un ítem ajeno no debe disparar la purga")
	assert.Len(t, repo.items, 1)
}
