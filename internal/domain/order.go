package domain

import "github.com/shopspring/decimal"

// Order status values. Paid and Failed are terminal, except that a
// failed order may be re-entered into Pending by an explicit payment
// retry.
const (
	OrderPending = "Pending"
	OrderPaid    = "Paid"
	OrderFailed  = "Failed"
)

// Payment status values. Transitions only move pending -> success or
// pending -> failed; a retry resets failed back to pending.
const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

type Order struct {
	ID              string          `db:"id" json:"id"`
	UserID          string          `db:"user_id" json:"userId"`
	DeliveryAddress string          `db:"delivery_address" json:"deliveryAddress"`
	Total           decimal.Decimal `db:"total" json:"total"`
	Status          string          `db:"status" json:"status"`
	PaymentStatus   string          `db:"payment_status" json:"paymentStatus"`
	CreatedAt       string          `db:"created_at" json:"createdAt"`
	Items           []OrderItem     `db:"-" json:"items,omitempty"`
}

// OrderItem is a line frozen at order-creation time; Name and Price are
// copied from the catalog at checkout and never change afterwards.
type OrderItem struct {
	OrderID   string          `db:"order_id" json:"-"`
	ProductID string          `db:"product_id" json:"productId"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Qty       int             `db:"qty" json:"quantity"`
	ItemTotal decimal.Decimal `db:"item_total" json:"itemTotal"`
}
