package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/campusbites/campusbites-api/internal/handler"
	"github.com/campusbites/campusbites-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication:
// the service banner at / and the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Unauthenticated
// operations live under /api/auth; /me and /logout-all require a valid
// access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	p := e.Group("/api/auth", middleware.JWTAuth(jwtSecret))
	p.GET("/me", a.Me)
	p.POST("/logout-all", a.LogoutAll)
}

// RegisterCatalog registers the public menu endpoints plus the
// admin-only write endpoints.  The read paths match what the web
// frontend (and the diagnostic tool) call today.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, jwtSecret string) {
	e.GET("/api/category/get", h.GetCategories)
	e.POST("/api/product/get", h.GetProducts)

	admin := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)
	admin.POST("/category/add", h.AddCategory)
	admin.POST("/product/add", h.AddProduct)
}
