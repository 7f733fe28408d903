package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"solarmart/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Begin() (*sqlx.Tx, error) { return r.db.Beginx() }

// CreateTx inserts the order header and its snapshot items inside the
// caller's transaction (the checkout path commits the snapshot and the
// cart clear together).
func (r *OrderRepo) CreateTx(tx *sqlx.Tx, o domain.Order) error {
	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, delivery_address, total, status, payment_status, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.UserID, o.DeliveryAddress, o.Total, o.Status, o.PaymentStatus); err != nil {
		return err
	}
	for _, it := range o.Items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_id, name, price, qty, item_total)
		  VALUES(?, ?, ?, ?, ?, ?)
		`, o.ID, it.ProductID, it.Name, it.Price, it.Qty, it.ItemTotal); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepo) Get(orderID string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, user_id, delivery_address, total, status, payment_status, created_at
	  FROM orders WHERE id = ?
	`, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrNotFound
		}
		return domain.Order{}, err
	}

	if err := r.db.Select(&o.Items, `
	  SELECT order_id, product_id, name, price, qty, item_total
	  FROM order_items
	  WHERE order_id = ?
	  ORDER BY name
	`, orderID); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id, user_id, delivery_address, total, status, payment_status, created_at
	  FROM orders
	  WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC
	`, userID)
	return out, err
}

func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id, user_id, delivery_address, total, status, payment_status, created_at
	  FROM orders
	  ORDER BY datetime(created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

// SetPayment updates both status fields in one statement; RowsAffected
// distinguishes a vanished order from a clean update.
func (r *OrderRepo) SetPayment(orderID, status, paymentStatus string) error {
	res, err := r.db.Exec(`
	  UPDATE orders SET status = ?, payment_status = ? WHERE id = ?
	`, status, paymentStatus, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
