package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusbites/campusbites-api/internal/model"
	"github.com/campusbites/campusbites-api/internal/queue"
)

type fakeOrderStore struct {
	created []model.Order
	orders  []model.Order
	err     error
}

func (f *fakeOrderStore) Create(_ context.Context, o *model.Order) error {
	if f.err != nil {
		return f.err
	}
	o.ID = primitive.NewObjectID()
	f.created = append(f.created, *o)
	return nil
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID primitive.ObjectID, skip, limit int64) ([]model.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Order, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeCatalog struct {
	products map[primitive.ObjectID]model.Product
}

func (f *fakeCatalog) GetProductsByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Product, error) {
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestContext(t *testing.T, method, path, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestCashOnDelivery_Success(t *testing.T) {
	burger := model.Product{ID: primitive.NewObjectID(), Name: "Smash Burger", PriceCents: 850, Available: true}
	fries := model.Product{ID: primitive.NewObjectID(), Name: "Fries", PriceCents: 300, Available: true}
	store := &fakeOrderStore{}
	cat := &fakeCatalog{products: map[primitive.ObjectID]model.Product{burger.ID: burger, fries.ID: fries}}

	var published []queue.OrderPlacedEvent
	h := NewOrderHandler(store, cat, func(_ context.Context, ev queue.OrderPlacedEvent) error {
		published = append(published, ev)
		return nil
	})

	userID := primitive.NewObjectID().Hex()
	body := `{
		"items": [
			{"product_id": "` + burger.ID.Hex() + `", "quantity": 2},
			{"product_id": "` + fries.ID.Hex() + `", "quantity": 1}
		],
		"address": {"line1": "Dorm 4, Room 12", "city": "Campustown", "phone": "555-0100"}
	}`
	c, rec := newTestContext(t, http.MethodPost, "/api/order/cash-on-delivery", body, userID)

	require.NoError(t, h.CashOnDelivery(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, store.created, 1)
	got := store.created[0]
	assert.Equal(t, model.OrderStatusPlaced, got.Status)
	assert.Equal(t, model.PaymentCashOnDelivery, got.PaymentMethod)
	assert.Equal(t, int64(2*850+300), got.TotalCents)
	assert.Len(t, got.Items, 2)

	require.Len(t, published, 1)
	assert.Equal(t, userID, published[0].UserID)
	assert.Equal(t, int64(2000), published[0].TotalCents)
}

func TestCashOnDelivery_Validation(t *testing.T) {
	p := model.Product{ID: primitive.NewObjectID(), Name: "Wrap", PriceCents: 500}
	cat := &fakeCatalog{products: map[primitive.ObjectID]model.Product{p.ID: p}}
	addr := `"address": {"line1": "a", "city": "b", "phone": "c"}`

	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty items", `{"items": [], ` + addr + `}`, http.StatusBadRequest},
		{"zero quantity", `{"items": [{"product_id": "` + p.ID.Hex() + `", "quantity": 0}], ` + addr + `}`, http.StatusBadRequest},
		{"bad product id", `{"items": [{"product_id": "nope", "quantity": 1}], ` + addr + `}`, http.StatusBadRequest},
		{"missing address", `{"items": [{"product_id": "` + p.ID.Hex() + `", "quantity": 1}]}`, http.StatusBadRequest},
		{"unknown product", `{"items": [{"product_id": "` + primitive.NewObjectID().Hex() + `", "quantity": 1}], ` + addr + `}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewOrderHandler(&fakeOrderStore{}, cat, nil)
			c, rec := newTestContext(t, http.MethodPost, "/api/order/cash-on-delivery", tt.body, primitive.NewObjectID().Hex())
			require.NoError(t, h.CashOnDelivery(c))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCashOnDelivery_NoUserIs401(t *testing.T) {
	h := NewOrderHandler(&fakeOrderStore{}, &fakeCatalog{}, nil)
	c, rec := newTestContext(t, http.MethodPost, "/api/order/cash-on-delivery", `{}`, "")
	require.NoError(t, h.CashOnDelivery(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCashOnDelivery_PublishFailureDoesNotFailOrder(t *testing.T) {
	p := model.Product{ID: primitive.NewObjectID(), Name: "Tea", PriceCents: 200}
	store := &fakeOrderStore{}
	cat := &fakeCatalog{products: map[primitive.ObjectID]model.Product{p.ID: p}}
	h := NewOrderHandler(store, cat, func(context.Context, queue.OrderPlacedEvent) error {
		return errors.New("broker down")
	})

	body := `{"items": [{"product_id": "` + p.ID.Hex() + `", "quantity": 1}],
		"address": {"line1": "x", "city": "y", "phone": "z"}}`
	c, rec := newTestContext(t, http.MethodPost, "/api/order/cash-on-delivery", body, primitive.NewObjectID().Hex())

	require.NoError(t, h.CashOnDelivery(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, store.created, 1)
}

func TestListOrders_ReturnsOnlyOwnOrders(t *testing.T) {
	me := primitive.NewObjectID()
	other := primitive.NewObjectID()
	store := &fakeOrderStore{orders: []model.Order{
		{ID: primitive.NewObjectID(), UserID: me, Status: model.OrderStatusPlaced},
		{ID: primitive.NewObjectID(), UserID: other, Status: model.OrderStatusPlaced},
	}}
	h := NewOrderHandler(store, &fakeCatalog{}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/order/order-list", "", me.Hex())
	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Orders []model.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, me, resp.Orders[0].UserID)
}
