package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"solarmart/internal/domain"
	"solarmart/internal/repos"
	"solarmart/internal/services"
)

func newOrderSvc(t *testing.T) (*services.CartService, *services.OrderService, *sqlx.DB) {
	t.Helper()
	db := memdb(t)
	cartRepo := repos.NewCartRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	return services.NewCartService(cartRepo, prodRepo),
		services.NewOrderService(cartRepo, prodRepo, orderRepo),
		db
}

func fillCart(t *testing.T, cart *services.CartService, userID string) {
	t.Helper()
	// 2x panel @ 45000, 1x inverter @ 85000
	for i := 0; i < 2; i++ {
		if err := cart.AddItem(userID, "panel-450w"); err != nil {
			t.Fatal(err)
		}
	}
	if err := cart.AddItem(userID, "inv-3kw"); err != nil {
		t.Fatal(err)
	}
}

func TestPlace_EmptyCart(t *testing.T) {
	_, orders, db := newOrderSvc(t)

	if _, err := orders.Place("u-1", "12 Sun Street"); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM orders`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("empty-cart checkout must create no order, found %d", n)
	}
}

func TestPlace_SnapshotAndClear(t *testing.T) {
	cart, orders, _ := newOrderSvc(t)
	fillCart(t, cart, "u-1")

	o, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}
	if o.ID == "" {
		t.Fatal("no order id")
	}
	if o.Status != domain.OrderPending || o.PaymentStatus != domain.PaymentPending {
		t.Fatalf("new order must be Pending/pending, got %s/%s", o.Status, o.PaymentStatus)
	}
	want := decimal.NewFromInt(175000)
	if !o.Total.Equal(want) {
		t.Fatalf("want total %s, got %s", want, o.Total)
	}
	if len(o.Items) != 2 {
		t.Fatalf("want 2 snapshot items, got %d", len(o.Items))
	}
	for _, it := range o.Items {
		if !it.ItemTotal.Equal(it.Price.Mul(decimal.NewFromInt(int64(it.Qty)))) {
			t.Fatalf("item total mismatch: %+v", it)
		}
	}

	// checkout clears the cart
	cv, err := cart.View("u-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 0 || !cv.Total.IsZero() {
		t.Fatalf("cart must be empty after checkout, got %+v", cv)
	}
}

func TestPlace_SnapshotFrozenAgainstPriceChange(t *testing.T) {
	cart, orders, db := newOrderSvc(t)
	fillCart(t, cart, "u-1")

	o, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := db.Exec(`UPDATE products SET price = 99999 WHERE id = 'panel-450w'`); err != nil {
		t.Fatal(err)
	}

	got, err := orders.Get(o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Total.Equal(decimal.NewFromInt(175000)) {
		t.Fatalf("order total moved with catalog price: %s", got.Total)
	}
	for _, it := range got.Items {
		if it.ProductID == "panel-450w" && !it.Price.Equal(decimal.NewFromInt(45000)) {
			t.Fatalf("snapshot price moved with catalog price: %s", it.Price)
		}
	}
}

func TestPlace_ProductVanished(t *testing.T) {
	cart, orders, db := newOrderSvc(t)
	fillCart(t, cart, "u-1")

	if _, err := db.Exec(`UPDATE products SET active = 0 WHERE id = 'inv-3kw'`); err != nil {
		t.Fatal(err)
	}

	if _, err := orders.Place("u-1", "12 Sun Street"); !errors.Is(err, domain.ErrProductUnavailable) {
		t.Fatalf("want ErrProductUnavailable, got %v", err)
	}

	// nothing committed: no order, cart intact
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM orders`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("failed checkout must create no order, found %d", n)
	}
	cv, _ := cart.View("u-1")
	if len(cv.Items) == 0 {
		t.Fatal("failed checkout must not clear the cart")
	}
}

func TestRecordPaymentResult(t *testing.T) {
	cart, orders, _ := newOrderSvc(t)
	fillCart(t, cart, "u-1")
	o, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}

	got, err := orders.RecordPaymentResult(o.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.OrderPaid || got.PaymentStatus != domain.PaymentSuccess {
		t.Fatalf("want Paid/success, got %s/%s", got.Status, got.PaymentStatus)
	}

	// same outcome again is a no-op
	again, err := orders.RecordPaymentResult(o.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if again.Status != domain.OrderPaid {
		t.Fatalf("idempotent re-apply changed status: %s", again.Status)
	}

	// opposite outcome on a resolved order is rejected
	if _, err := orders.RecordPaymentResult(o.ID, false); !errors.Is(err, domain.ErrPaymentResolved) {
		t.Fatalf("want ErrPaymentResolved, got %v", err)
	}
}

func TestRecordPaymentResult_Failure(t *testing.T) {
	cart, orders, _ := newOrderSvc(t)
	fillCart(t, cart, "u-1")
	o, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}

	got, err := orders.RecordPaymentResult(o.ID, false)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.OrderFailed || got.PaymentStatus != domain.PaymentFailed {
		t.Fatalf("want Failed/failed, got %s/%s", got.Status, got.PaymentStatus)
	}
}

func TestRecordPaymentResult_UnknownOrder(t *testing.T) {
	_, orders, _ := newOrderSvc(t)
	if _, err := orders.RecordPaymentResult("no-such-order", true); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestRetryPayment(t *testing.T) {
	cart, orders, _ := newOrderSvc(t)
	fillCart(t, cart, "u-1")
	o, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}

	// retry before failure is rejected
	if _, err := orders.RetryPayment(o.ID); !errors.Is(err, domain.ErrPaymentResolved) {
		t.Fatalf("want ErrPaymentResolved for pending order, got %v", err)
	}

	if _, err := orders.RecordPaymentResult(o.ID, false); err != nil {
		t.Fatal(err)
	}

	got, err := orders.RetryPayment(o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.OrderPending || got.PaymentStatus != domain.PaymentPending {
		t.Fatalf("retry must re-enter Pending/pending, got %s/%s", got.Status, got.PaymentStatus)
	}

	// the re-entered order can resolve again
	got, err = orders.RecordPaymentResult(o.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.OrderPaid {
		t.Fatalf("want Paid after retry+success, got %s", got.Status)
	}
}

func TestReorder_UsesCurrentPricing(t *testing.T) {
	cart, orders, db := newOrderSvc(t)
	fillCart(t, cart, "u-1")
	o, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}

	// catalog price moves after the order
	if _, err := db.Exec(`UPDATE products SET price = 50000 WHERE id = 'panel-450w'`); err != nil {
		t.Fatal(err)
	}

	if err := orders.Reorder(o.ID, "u-1"); err != nil {
		t.Fatal(err)
	}

	cv, err := cart.View("u-1")
	if err != nil {
		t.Fatal(err)
	}
	// same quantities as the old order, priced at today's catalog
	if cv.ItemCount != 3 {
		t.Fatalf("want 3 units re-added, got %d", cv.ItemCount)
	}
	want := decimal.NewFromInt(2*50000 + 85000)
	if !cv.Total.Equal(want) {
		t.Fatalf("reorder must use current pricing: want %s, got %s", want, cv.Total)
	}
	// while the old order keeps its snapshot total
	old, _ := orders.Get(o.ID)
	if !old.Total.Equal(decimal.NewFromInt(175000)) {
		t.Fatalf("old order total moved: %s", old.Total)
	}
}

func TestReorder_WrongUser(t *testing.T) {
	cart, orders, _ := newOrderSvc(t)
	fillCart(t, cart, "u-1")
	o, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}
	if err := orders.Reorder(o.ID, "u-2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for foreign order, got %v", err)
	}
}

func TestReorder_ProductGone(t *testing.T) {
	cart, orders, db := newOrderSvc(t)
	fillCart(t, cart, "u-1")
	o, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE products SET active = 0 WHERE id = 'panel-450w'`); err != nil {
		t.Fatal(err)
	}
	if err := orders.Reorder(o.ID, "u-1"); !errors.Is(err, domain.ErrProductUnavailable) {
		t.Fatalf("want ErrProductUnavailable, got %v", err)
	}
	// nothing re-added
	cv, _ := cart.View("u-1")
	if len(cv.Items) != 0 {
		t.Fatalf("failed reorder must not touch the cart, got %+v", cv.Items)
	}
}

func TestListByUser_NewestFirst(t *testing.T) {
	cart, orders, db := newOrderSvc(t)

	fillCart(t, cart, "u-1")
	first, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}
	// force distinct timestamps
	if _, err := db.Exec(`UPDATE orders SET created_at = '2026-01-01T00:00:00Z' WHERE id = ?`, first.ID); err != nil {
		t.Fatal(err)
	}

	fillCart(t, cart, "u-1")
	second, err := orders.Place("u-1", "12 Sun Street")
	if err != nil {
		t.Fatal(err)
	}

	list, err := orders.ListByUser("u-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("want 2 orders, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("want newest first, got %s then %s", list[0].ID, list[1].ID)
	}
}
