package router

import "github.com/labstack/echo/v4"

// OrderHandler is the capability the order routes dispatch to.
// *handler.OrderHandler satisfies it in production; tests register
// fakes to exercise the table without a database.
type OrderHandler interface {
	CashOnDelivery(c echo.Context) error
	ListOrders(c echo.Context) error
}

// RegisterOrder declares the order sub-resource under /api/order.  The
// supplied middleware chain (auth, rate limiting) runs before every
// handler in the group and may short-circuit with an error response.
func RegisterOrder(e *echo.Echo, h OrderHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api/order", mw...)
	g.POST("/cash-on-delivery", h.CashOnDelivery)
	g.GET("/order-list", h.ListOrders)
}

// OrderAdminHandler is the capability the staff order routes dispatch to.
type OrderAdminHandler interface {
	UpdateStatus(c echo.Context) error
}

// RegisterOrderAdmin declares the staff-only order pipeline routes.  The
// middleware chain is expected to authenticate and enforce the ADMIN role.
func RegisterOrderAdmin(e *echo.Echo, h OrderAdminHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api/admin/order", mw...)
	g.PATCH("/:id/status", h.UpdateStatus)
}
