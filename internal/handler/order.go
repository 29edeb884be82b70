package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusbites/campusbites-api/internal/model"
	"github.com/campusbites/campusbites-api/internal/queue"
)

// OrderStore is the persistence capability the order endpoints need.
// *repository.OrderRepo satisfies it; tests supply fakes.
type OrderStore interface {
	Create(ctx context.Context, o *model.Order) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]model.Order, error)
}

// ProductFinder resolves checkout items to priced products.
type ProductFinder interface {
	GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Product, error)
}

// OrderHandler implements the order sub-resource: cash-on-delivery
// checkout and per-user order history.  JWT authentication is assumed
// to have run already; the user id comes from the request context.
type OrderHandler struct {
	Orders  OrderStore
	Catalog ProductFinder
	// Publish emits the order-placed event.  A publish failure is
	// logged and ignored: the order is already persisted.
	Publish func(ctx context.Context, ev queue.OrderPlacedEvent) error
}

// NewOrderHandler constructs an OrderHandler.  publish may be nil to
// disable event emission.
func NewOrderHandler(orders OrderStore, catalog ProductFinder, publish func(context.Context, queue.OrderPlacedEvent) error) *OrderHandler {
	if orders == nil || catalog == nil {
		panic("nil dependency passed to NewOrderHandler")
	}
	return &OrderHandler{Orders: orders, Catalog: catalog, Publish: publish}
}

const (
	maxItemQuantity  = 50
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type orderItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type codOrderReq struct {
	Items   []orderItemReq        `json:"items"`
	Address model.DeliveryAddress `json:"address"`
}

// CashOnDelivery handles POST /api/order/cash-on-delivery.  Prices are
// looked up server-side and snapshotted into the order; the client's
// idea of a price is never trusted.  Returns 201 with the stored order.
func (h *OrderHandler) CashOnDelivery(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req codOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "items is required"})
	}
	if req.Address.Line1 == "" || req.Address.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "delivery address and phone are required"})
	}

	// Deduplicate product ids, merging quantities.
	qty := make(map[primitive.ObjectID]int, len(req.Items))
	ids := make([]primitive.ObjectID, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 || it.Quantity > maxItemQuantity {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid quantity"})
		}
		pid, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		if _, seen := qty[pid]; !seen {
			ids = append(ids, pid)
		}
		qty[pid] += it.Quantity
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog lookup failed"})
	}
	if len(products) != len(ids) {
		found := make(map[primitive.ObjectID]struct{}, len(products))
		for _, p := range products {
			found[p.ID] = struct{}{}
		}
		missing := make([]string, 0, len(ids)-len(products))
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				missing = append(missing, id.Hex())
			}
		}
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":       "some products are unavailable",
			"unavailable": missing,
		})
	}

	order := model.Order{
		UserID:        uid,
		Status:        model.OrderStatusPlaced,
		PaymentMethod: model.PaymentCashOnDelivery,
		Address:       req.Address,
		Items:         make([]model.OrderItem, 0, len(products)),
	}
	for _, p := range products {
		n := qty[p.ID]
		order.Items = append(order.Items, model.OrderItem{
			ProductID:  p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Quantity:   n,
		})
		order.TotalCents += p.PriceCents * int64(n)
	}

	if err := h.Orders.Create(ctx, &order); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create order failed"})
	}

	if h.Publish != nil {
		ev := queue.OrderPlacedEvent{
			OrderID:       order.ID.Hex(),
			UserID:        userID,
			PaymentMethod: order.PaymentMethod,
			TotalCents:    order.TotalCents,
			ItemCount:     len(order.Items),
			PlacedAt:      order.CreatedAt.Format(time.RFC3339),
		}
		for _, it := range order.Items {
			ev.Items = append(ev.Items, it.Name)
		}
		if err := h.Publish(ctx, ev); err != nil {
			log.Printf("order %s: publish order.placed failed: %v", order.ID.Hex(), err)
		}
	}

	return c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /api/order/order-list.  It returns the caller's
// orders newest first, paged by skip/limit query parameters.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	if skip < 0 {
		skip = 0
	}
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListByUser(ctx, uid, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list orders failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"orders": orders,
		"skip":   skip,
		"limit":  limit,
	})
}
