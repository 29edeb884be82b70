package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusbites/campusbites-api/internal/model"
	"github.com/campusbites/campusbites-api/internal/repository"
)

type fakeOrderMutator struct {
	order   *model.Order
	updated string
}

func (f *fakeOrderMutator) GetByID(_ context.Context, id primitive.ObjectID) (*model.Order, error) {
	if f.order == nil || f.order.ID != id {
		return nil, repository.ErrOrderNotFound
	}
	return f.order, nil
}

func (f *fakeOrderMutator) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	if f.order == nil || f.order.ID != id {
		return repository.ErrOrderNotFound
	}
	f.updated = status
	return nil
}

func TestOrderAdmin_UpdateStatus(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name       string
		current    string
		param      string
		body       string
		wantCode   int
		wantUpdate string
	}{
		{"confirm placed", model.OrderStatusPlaced, id.Hex(), `{"status":"CONFIRMED"}`, http.StatusOK, model.OrderStatusConfirmed},
		{"cancel placed", model.OrderStatusPlaced, id.Hex(), `{"status":"CANCELLED"}`, http.StatusOK, model.OrderStatusCancelled},
		{"deliver confirmed", model.OrderStatusConfirmed, id.Hex(), `{"status":"DELIVERED"}`, http.StatusOK, model.OrderStatusDelivered},
		{"deliver placed is a conflict", model.OrderStatusPlaced, id.Hex(), `{"status":"DELIVERED"}`, http.StatusConflict, ""},
		{"rewind delivered is a conflict", model.OrderStatusDelivered, id.Hex(), `{"status":"PLACED"}`, http.StatusConflict, ""},
		{"unknown status is a conflict", model.OrderStatusPlaced, id.Hex(), `{"status":"SHIPPED"}`, http.StatusConflict, ""},
		{"missing status", model.OrderStatusPlaced, id.Hex(), `{}`, http.StatusBadRequest, ""},
		{"bad id", model.OrderStatusPlaced, "nope", `{"status":"CONFIRMED"}`, http.StatusBadRequest, ""},
		{"unknown order", model.OrderStatusPlaced, primitive.NewObjectID().Hex(), `{"status":"CONFIRMED"}`, http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mut := &fakeOrderMutator{order: &model.Order{ID: id, Status: tt.current}}
			h := NewOrderAdminHandler(mut)

			c, rec := newTestContext(t, http.MethodPatch, "/api/admin/order/"+tt.param+"/status", tt.body, "")
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			require.NoError(t, h.UpdateStatus(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantUpdate, mut.updated)
		})
	}
}
