package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses. Status is recorded as submitted and never transitions
// automatically; there is no gateway behind it.
const PaymentStatusPending = "pending"

// OrderItem is a line within an order. ProductID is a loose reference and is
// not checked against the product collection.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	Price     float64 `bson:"price" json:"price"`
	Qty       int     `bson:"qty" json:"qty"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Address is the shipping destination embedded in an order.
type Address struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Line1 string `bson:"line1" json:"line1"`
	Line2 string `bson:"line2,omitempty" json:"line2,omitempty"`
	City  string `bson:"city" json:"city"`
	State string `bson:"state" json:"state"`
	Zip   string `bson:"zip" json:"zip"`
}

// Payment records how the customer intends to pay: cod, card or upi.
type Payment struct {
	Method string `bson:"method" json:"method"`
	Status string `bson:"status" json:"status"`
	TxnID  string `bson:"txn_id,omitempty" json:"txn_id,omitempty"`
}

// Order defines the persisted order document. Subtotal and Total always hold
// server-computed values, never what the client submitted.
type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Items    []OrderItem        `bson:"items" json:"items"`
	Subtotal float64            `bson:"subtotal" json:"subtotal"`
	Shipping float64            `bson:"shipping" json:"shipping"`
	Total    float64            `bson:"total" json:"total"`
	Address  Address            `bson:"address" json:"address"`
	Payment  Payment            `bson:"payment" json:"payment"`
	PlacedAt *time.Time         `bson:"placed_at,omitempty" json:"placed_at,omitempty"`
}

// ComputeTotals derives the order totals from its line items. Whatever
// subtotal or total the client sent is irrelevant: callers must overwrite
// both with these values before persisting.
func ComputeTotals(items []OrderItem, shipping float64) (subtotal, total float64) {
	for _, item := range items {
		subtotal += item.Price * float64(item.Qty)
	}
	return subtotal, subtotal + shipping
}
