package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/application/product"
	"github.com/tu-usuario/inventario-micro/internal/domain/entity"
	ihttp "github.com/tu-usuario/inventario-micro/internal/interfaces/http"
)

func newProductApp(checker *fakeChecker) (*fiber.App, *fakeProductRepo) {
	repo := newFakeProductRepo()
	uc := product.NewProductUseCase(repo, checker)
	resolver := &fakeResolver{identity: ports.Identity{
		UserID: testUserID, Username: "marta", Email: "marta@example.com",
	}}
	app := fiber.New()
	ihttp.ProductRouter(app, ihttp.NewProductHandler(uc), resolver)
	return app, repo
}

func ownChecker(itemIDs ...string) *fakeChecker {
	owned := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		owned[id] = true
	}
	return &fakeChecker{owned: owned}
}

func precio(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seedProduct(repo *fakeProductRepo, id, itemID, userID, ptype string, price string, qty int, date time.Time) {
	repo.products[id] = &entity.Product{
		ID:       id,
		Name:     "lote " + id,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
		Type:     ptype,
		ItemID:   itemID,
		UserID:   userID,
		Date:     date,
	}
}

func TestProducts_SinTokenEs401(t *testing.T) {
	app, repo := newProductApp(ownChecker("item-1"))

	resp := doRequest(t, app, http.MethodPost, "/createProduct/item-1", "", dto.CreateProductRequest{
		Name: "lote", Price: precio("10"), Quantity: 1, Type: entity.ProductTypeBuy,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, repo.products, "la petición rechazada no debe crear nada")
}

func TestCreateProduct_Valido(t *testing.T) {
	app, repo := newProductApp(ownChecker("item-1"))

	resp := doRequest(t, app, http.MethodPost, "/createProduct/item-1", testToken, dto.CreateProductRequest{
		Name: "lote", Price: precio("12.50"), Quantity: 2, Type: entity.ProductTypeBuy,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.ProductResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "item-1", out.InventoryID)
	assert.Equal(t, testUserID, out.UserID)
	assert.False(t, out.Date.IsZero(), "sin fecha explícita usa el momento de creación")
	assert.Len(t, repo.products, 1)
}

func TestCreateProduct_TypeInvalidoEs400(t *testing.T) {
	app, repo := newProductApp(ownChecker("item-1"))

	resp := doRequest(t, app, http.MethodPost, "/createProduct/item-1", testToken, dto.CreateProductRequest{
		Name: "lote", Price: precio("10"), Quantity: 1, Type: "rent",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Empty(t, repo.products)
}

// Un cuerpo que omite price por completo se rechaza: el cero implícito del
// decodificador no cuenta como precio.
func TestCreateProduct_SinPriceEs400(t *testing.T) {
	app, repo := newProductApp(ownChecker("item-1"))

	resp := doRequest(t, app, http.MethodPost, "/createProduct/item-1", testToken, fiber.Map{
		"name": "lote", "quantity": 2, "type": entity.ProductTypeBuy,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Empty(t, repo.products)
}

// El ítem ajeno responde 404 en create: no revela si existe.
func TestCreateProduct_ItemAjenoEs404(t *testing.T) {
	app, repo := newProductApp(ownChecker())

	resp := doRequest(t, app, http.MethodPost, "/createProduct/item-ajeno", testToken, dto.CreateProductRequest{
		Name: "lote", Price: precio("10"), Quantity: 1, Type: entity.ProductTypeBuy,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, repo.products)
}

// Cero productos no es lista vacía sino 404.
func TestListProducts_VacioEs404(t *testing.T) {
	app, _ := newProductApp(ownChecker("item-1"))

	resp := doRequest(t, app, http.MethodGet, "/products/item-1", testToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestListProducts_FiltroPorMes(t *testing.T) {
	app, repo := newProductApp(ownChecker("item-1"))
	seedProduct(repo, "p-marzo", "item-1", testUserID, entity.ProductTypeBuy, "10", 1,
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	seedProduct(repo, "p-abril", "item-1", testUserID, entity.ProductTypeBuy, "10", 1,
		time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC))

	resp := doRequest(t, app, http.MethodGet, "/products/item-1?month=3&year=2024", testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.ProductResponse
	decodeBody(t, resp, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "p-marzo", out[0].ID)
}

func TestListProducts_MesInvalidoEs400(t *testing.T) {
	app, _ := newProductApp(ownChecker("item-1"))

	resp := doRequest(t, app, http.MethodGet, "/products/item-1?month=13", testToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestListProducts_ItemAjenoEs403(t *testing.T) {
	app, _ := newProductApp(ownChecker())

	resp := doRequest(t, app, http.MethodGet, "/products/item-ajeno", testToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteProduct_AjenoEs404(t *testing.T) {
	app, repo := newProductApp(ownChecker("item-1"))
	seedProduct(repo, "p-ajeno", "item-1", otherUserID, entity.ProductTypeBuy, "10", 1, time.Now())

	resp := doRequest(t, app, http.MethodDelete, "/deleteProduct/p-ajeno", testToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
	assert.Len(t, repo.products, 1)
}

// Borrado en bloque con cero productos es éxito y responde el conteo: la
// cascada de inventario depende de este no-op.
func TestDeleteAll_CeroProductosEs200(t *testing.T) {
	app, _ := newProductApp(ownChecker("item-1"))

	resp := doRequest(t, app, http.MethodGet, "/products/delete_all/item-1", testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.DeleteAllResponse
	decodeBody(t, resp, &out)
	assert.Zero(t, out.Deleted)
}

func TestDeleteAll_BorraYCuenta(t *testing.T) {
	app, repo := newProductApp(ownChecker("item-1"))
	seedProduct(repo, "p-1", "item-1", testUserID, entity.ProductTypeBuy, "10", 1, time.Now())
	seedProduct(repo, "p-2", "item-1", testUserID, entity.ProductTypeSell, "20", 1, time.Now())
	seedProduct(repo, "p-otro", "item-2", testUserID, entity.ProductTypeBuy, "5", 1, time.Now())

	resp := doRequest(t, app, http.MethodGet, "/products/delete_all/item-1", testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.DeleteAllResponse
	decodeBody(t, resp, &out)
	assert.EqualValues(t, 2, out.Deleted)
	assert.Len(t, repo.products, 1, "los productos de otros ítems no se tocan")
}

// Resumen del ejemplo canónico: compra 25, venta 20, ganancia −5.
func TestSummary_Totales(t *testing.T) {
	app, repo := newProductApp(ownChecker("item-1"))
	seedProduct(repo, "p-compra", "item-1", testUserID, entity.ProductTypeBuy, "12.50", 2, time.Now())
	seedProduct(repo, "p-venta", "item-1", testUserID, entity.ProductTypeSell, "20.00", 1, time.Now())

	resp := doRequest(t, app, http.MethodGet, "/products/summary/item-1", testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SummaryResponse
	decodeBody(t, resp, &out)
	assert.True(t, out.TotalBuy.Equal(decimal.RequireFromString("25")), "total_buy = %s", out.TotalBuy)
	assert.True(t, out.TotalSell.Equal(decimal.RequireFromString("20")), "total_sell = %s", out.TotalSell)
	assert.True(t, out.TotalProfit.Equal(decimal.RequireFromString("-5")), "total_profit = %s", out.TotalProfit)
}

func TestSummary_ItemAjenoEs404(t *testing.T) {
	app, _ := newProductApp(ownChecker())

	resp := doRequest(t, app, http.MethodGet, "/products/summary/item-ajeno", testToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
