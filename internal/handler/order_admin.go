package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusbites/campusbites-api/internal/model"
	"github.com/campusbites/campusbites-api/internal/repository"
)

// OrderMutator is the capability the admin order endpoints need.
// *repository.OrderRepo satisfies it.
type OrderMutator interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// OrderAdminHandler lets staff move orders through the pipeline.
type OrderAdminHandler struct {
	Orders OrderMutator
}

func NewOrderAdminHandler(orders OrderMutator) *OrderAdminHandler {
	return &OrderAdminHandler{Orders: orders}
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// allowedTransitions maps a current status to the statuses staff may move
// it to.  Terminal states have no exits.
var allowedTransitions = map[string][]string{
	model.OrderStatusPlaced:    {model.OrderStatusConfirmed, model.OrderStatusCancelled},
	model.OrderStatusConfirmed: {model.OrderStatusDelivered, model.OrderStatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UpdateStatus handles PATCH /api/admin/order/:id/status.  Only the
// transitions in allowedTransitions are accepted; anything else is a 409
// so a stale admin UI cannot silently rewind an order.
func (h *OrderAdminHandler) UpdateStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	var req updateStatusReq
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	order, err := h.Orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load order failed"})
	}
	if !transitionAllowed(order.Status, req.Status) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "invalid status transition",
			"from":  order.Status,
			"to":    req.Status,
		})
	}

	if err := h.Orders.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id.Hex(), "status": req.Status})
}
