package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
)

// UserRouter registra las rutas del servicio de usuarios. Resuelve identidad
// localmente, así que no monta IdentityMiddleware.
func UserRouter(app *fiber.App, h *UserHandler) {
	app.Post("/signup", h.SignUp)
	app.Post("/signin", h.SignIn)
	app.Post("/logout", h.Logout)
	app.Get("/user_id", h.Identity)
}

// InventoryRouter registra las rutas del servicio de inventario, todas detrás
// del middleware de identidad.
func InventoryRouter(app *fiber.App, h *InventoryHandler, resolver ports.IdentityResolver) {
	protected := app.Group("/", IdentityMiddleware(resolver))
	protected.Get("/checkInventory/:id", h.Check)
	protected.Get("/items", h.List)
	protected.Get("/items/:id", h.Get)
	protected.Post("/createItem", h.Create)
	protected.Put("/items/:id", h.Update)
	protected.Delete("/items/:id", h.Delete)
}

// ProductRouter registra las rutas del servicio de productos, todas detrás del
// middleware de identidad. delete_all va por GET porque el servicio de
// inventario lo invoca así en la cascada.
func ProductRouter(app *fiber.App, h *ProductHandler, resolver ports.IdentityResolver) {
	protected := app.Group("/", IdentityMiddleware(resolver))
	protected.Post("/createProduct/:inventoryId", h.Create)
	protected.Get("/products/summary/:inventoryId", h.Summary)
	protected.Get("/products/delete_all/:inventoryId", h.DeleteAll)
	protected.Get("/products/:inventoryId", h.List)
	protected.Delete("/deleteProduct/:productId", h.Delete)
}

// ChartRouter registra las rutas del servicio de chart, todas detrás del
// middleware de identidad.
func ChartRouter(app *fiber.App, h *ChartHandler, resolver ports.IdentityResolver) {
	protected := app.Group("/", IdentityMiddleware(resolver))
	protected.Get("/inventory-products/:inventoryId", h.Monthly)
	protected.Get("/inventory-products-yearly/:inventoryId", h.Yearly)
}
