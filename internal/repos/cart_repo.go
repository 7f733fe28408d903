package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"solarmart/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartLine is a bare stored line: what the user picked and how many.
type CartLine struct {
	ProductID string `db:"product_id"`
	Qty       int    `db:"qty"`
}

// CartItemRow is a line joined against the live catalog for display.
// Price and Subtotal reflect the catalog NOW, not whatever the price was
// when the item was added.
type CartItemRow struct {
	ProductID string          `db:"product_id" json:"productId"`
	Name      string          `db:"name" json:"name"`
	Qty       int             `db:"qty" json:"quantity"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Image     string          `db:"images_json" json:"imagesJson"`
	Subtotal  decimal.Decimal `db:"-" json:"subtotal"`
}

// IncrementItem adds one unit of productID to the user's cart, creating
// the line at qty 1 if it does not exist yet.
func (r *CartRepo) IncrementItem(userID, productID string) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(user_id,product_id,qty,added_at)
		VALUES(?,?,1,CURRENT_TIMESTAMP)
		ON CONFLICT(user_id,product_id) DO UPDATE
		SET qty = cart_items.qty + 1, updated_at = CURRENT_TIMESTAMP
	`, userID, productID)
	return err
}

// SetQty overwrites the stored quantity; returns ErrNotFound if the user
// has no such line.
func (r *CartRepo) SetQty(userID, productID string, qty int) error {
	res, err := r.db.Exec(`
		UPDATE cart_items SET qty = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND product_id = ?
	`, qty, userID, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Remove deletes a line; returns ErrNotFound if it was not there.
func (r *CartRepo) Remove(userID, productID string) error {
	res, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = ? AND product_id = ?`, userID, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CartRepo) Items(userID string) ([]CartLine, error) {
	var out []CartLine
	err := r.db.Select(&out, `
	  SELECT product_id, qty FROM cart_items
	  WHERE user_id = ?
	  ORDER BY datetime(added_at), product_id
	`, userID)
	return out, err
}

func (r *CartRepo) View(userID string) ([]CartItemRow, error) {
	rows := []CartItemRow{}
	err := r.db.Select(&rows, `
	  SELECT ci.product_id, p.name, ci.qty, p.price, COALESCE(p.images_json,'') AS images_json
	  FROM cart_items ci JOIN products p ON p.id = ci.product_id
	  WHERE ci.user_id = ?
	  ORDER BY datetime(ci.added_at), ci.product_id
	`, userID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Subtotal = rows[i].Price.Mul(decimal.NewFromInt(int64(rows[i].Qty)))
	}
	return rows, nil
}

func (r *CartRepo) Clear(userID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}

// ClearTx clears the cart inside an existing transaction (checkout path).
func (r *CartRepo) ClearTx(tx *sqlx.Tx, userID string) error {
	_, err := tx.Exec(`DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}
