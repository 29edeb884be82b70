package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusbites/campusbites-api/internal/model"
	"github.com/campusbites/campusbites-api/internal/repository"
)

// CatalogHandler serves the public menu plus the admin endpoints that
// maintain it.
type CatalogHandler struct {
	Catalog *repository.CatalogRepo
}

func NewCatalogHandler(r *repository.CatalogRepo) *CatalogHandler {
	return &CatalogHandler{Catalog: r}
}

// GetCategories handles GET /api/category/get.
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cats, err := h.Catalog.ListCategories(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list categories failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": cats})
}

type productPageReq struct {
	Skip  int64 `json:"skip"`
	Limit int64 `json:"limit"`
}

// GetProducts handles POST /api/product/get with body {"skip":0,"limit":10}.
// POST rather than GET mirrors the frontend's existing contract.
func (h *CatalogHandler) GetProducts(c echo.Context) error {
	var req productPageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Skip < 0 {
		req.Skip = 0
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > maxPageLimit {
		req.Limit = maxPageLimit
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	prods, total, err := h.Catalog.ListProducts(ctx, req.Skip, req.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list products failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"products": prods,
		"total":    total,
		"skip":     req.Skip,
		"limit":    req.Limit,
	})
}

type addCategoryReq struct {
	Name string `json:"name"`
}

// AddCategory handles POST /api/category/add (admin only).
func (h *CatalogHandler) AddCategory(c echo.Context) error {
	var req addCategoryReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Catalog.AddCategory(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create category failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

type addProductReq struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	ImageURL    string `json:"image_url"`
}

// AddProduct handles POST /api/product/add (admin only).  The image is
// expected to be uploaded to object storage by the admin frontend; only
// its URL is stored here.
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	var req addProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.PriceCents <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and positive price_cents required"})
	}
	catID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}

	p := model.Product{
		CategoryID:  catID,
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		Available:   true,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.AddProduct(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create product failed"})
	}
	return c.JSON(http.StatusCreated, p)
}
