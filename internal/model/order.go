package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses.  An order starts as PLACED and moves forward as the
// kitchen and delivery pipeline process it; CANCELLED is terminal.
const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Payment methods accepted at checkout.
const (
	PaymentCashOnDelivery = "COD"
)

// OrderItem is a single line of an order.  Name and PriceCents are
// snapshotted from the product at checkout time so later catalog edits
// do not rewrite order history.
type OrderItem struct {
	ProductID  primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name       string             `bson:"name" json:"name"`
	PriceCents int64              `bson:"price_cents" json:"price_cents"`
	Quantity   int                `bson:"quantity" json:"quantity"`
}

// DeliveryAddress is the destination embedded in each order.
type DeliveryAddress struct {
	Line1 string `bson:"line1" json:"line1"`
	City  string `bson:"city" json:"city"`
	Phone string `bson:"phone" json:"phone"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Order records a user's purchase as stored in the `orders` collection.
//
// Fields:
//  ID            – Mongo object id.
//  UserID        – user who placed the order.
//  Items         – ordered lines with snapshotted prices.
//  Address       – delivery destination.
//  Status        – PLACED, CONFIRMED, DELIVERED or CANCELLED.
//  PaymentMethod – currently always COD.
//  TotalCents    – sum over items of price_cents * quantity.
//  CreatedAt     – creation timestamp (UTC).
//  UpdatedAt     – last update timestamp (UTC).
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Address       DeliveryAddress    `bson:"address" json:"address"`
	Status        string             `bson:"status" json:"status"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"`
	TotalCents    int64              `bson:"total_cents" json:"total_cents"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
