package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"solarmart/internal/domain"
	"solarmart/internal/repos"
	"solarmart/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE categories(id TEXT PRIMARY KEY, name TEXT, created_at TEXT, updated_at TEXT);
	CREATE TABLE products(id TEXT PRIMARY KEY, category_id TEXT, name TEXT, description TEXT,
	  price NUMERIC, images_json TEXT, active INTEGER, created_at TEXT, updated_at TEXT);
	CREATE TABLE cart_items(user_id TEXT, product_id TEXT, qty INTEGER,
	  added_at TEXT DEFAULT CURRENT_TIMESTAMP, updated_at TEXT, PRIMARY KEY(user_id, product_id));
	CREATE TABLE orders(id TEXT PRIMARY KEY, user_id TEXT, delivery_address TEXT,
	  total NUMERIC, status TEXT, payment_status TEXT, created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	CREATE TABLE order_items(order_id TEXT, product_id TEXT, name TEXT, price NUMERIC,
	  qty INTEGER, item_total NUMERIC, PRIMARY KEY(order_id, product_id));

	INSERT INTO categories(id,name) VALUES ('solar-panels','Solar Panels');
	INSERT INTO products(id,category_id,name,description,price,images_json,active,created_at) VALUES
	  ('panel-450w','solar-panels','450W Monocrystalline Panel','Mono panel',45000,'[]',1,'now'),
	  ('inv-3kw','solar-panels','3kW Hybrid Inverter','Hybrid inverter',85000,'[]',1,'now'),
	  ('bat-200ah','solar-panels','200Ah LiFePO4 Battery','Lithium battery',96000,'[]',0,'now');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func newCartSvc(t *testing.T) (*services.CartService, *sqlx.DB) {
	t.Helper()
	db := memdb(t)
	return services.NewCartService(repos.NewCartRepo(db), repos.NewProductRepo(db)), db
}

func TestCart_AddItemIncrementsPerCall(t *testing.T) {
	svc, _ := newCartSvc(t)

	for i := 0; i < 3; i++ {
		if err := svc.AddItem("u-1", "panel-450w"); err != nil {
			t.Fatal(err)
		}
	}

	cv, err := svc.View("u-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 1 {
		t.Fatalf("want one line, got %d", len(cv.Items))
	}
	if cv.Items[0].Qty != 3 {
		t.Fatalf("want qty=3 after 3 adds, got %d", cv.Items[0].Qty)
	}
	if cv.ItemCount != 3 {
		t.Fatalf("want badge count 3, got %d", cv.ItemCount)
	}
}

func TestCart_AddUnknownProduct(t *testing.T) {
	svc, _ := newCartSvc(t)
	if err := svc.AddItem("u-1", "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCart_AddInactiveProduct(t *testing.T) {
	svc, _ := newCartSvc(t)
	if err := svc.AddItem("u-1", "bat-200ah"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for inactive product, got %v", err)
	}
}

func TestCart_ViewTotalAndBadge(t *testing.T) {
	svc, _ := newCartSvc(t)

	for i := 0; i < 2; i++ {
		if err := svc.AddItem("u-1", "panel-450w"); err != nil {
			t.Fatal(err)
		}
	}
	if err := svc.AddItem("u-1", "inv-3kw"); err != nil {
		t.Fatal(err)
	}

	cv, err := svc.View("u-1")
	if err != nil {
		t.Fatal(err)
	}
	want := decimal.NewFromInt(2*45000 + 85000)
	if !cv.Total.Equal(want) {
		t.Fatalf("want total %s, got %s", want, cv.Total)
	}
	if cv.ItemCount != 3 {
		t.Fatalf("want badge count 3, got %d", cv.ItemCount)
	}
}

func TestCart_ViewEmpty(t *testing.T) {
	svc, _ := newCartSvc(t)
	cv, err := svc.View("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 0 || !cv.Total.IsZero() || cv.ItemCount != 0 {
		t.Fatalf("want empty view, got %+v", cv)
	}
}

func TestCart_SetQuantity(t *testing.T) {
	svc, _ := newCartSvc(t)
	if err := svc.AddItem("u-1", "panel-450w"); err != nil {
		t.Fatal(err)
	}

	// overwrite
	if err := svc.SetQuantity("u-1", "panel-450w", 5); err != nil {
		t.Fatal(err)
	}
	cv, _ := svc.View("u-1")
	if cv.Items[0].Qty != 5 {
		t.Fatalf("want qty=5, got %d", cv.Items[0].Qty)
	}

	// zero removes the line
	if err := svc.SetQuantity("u-1", "panel-450w", 0); err != nil {
		t.Fatal(err)
	}
	cv, _ = svc.View("u-1")
	if len(cv.Items) != 0 {
		t.Fatalf("want empty cart after qty=0, got %+v", cv.Items)
	}

	// negative rejected
	if err := svc.SetQuantity("u-1", "panel-450w", -1); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}

	// absent line is not a silent no-op
	if err := svc.SetQuantity("u-1", "inv-3kw", 2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for absent line, got %v", err)
	}
}

func TestCart_RemoveReportsEmpty(t *testing.T) {
	svc, _ := newCartSvc(t)
	if err := svc.AddItem("u-1", "panel-450w"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddItem("u-1", "inv-3kw"); err != nil {
		t.Fatal(err)
	}

	empty, err := svc.RemoveItem("u-1", "panel-450w")
	if err != nil {
		t.Fatal(err)
	}
	if empty {
		t.Fatal("cart still has a line, should not report empty")
	}

	empty, err = svc.RemoveItem("u-1", "inv-3kw")
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Fatal("cart is empty, caller should be told")
	}

	if _, err := svc.RemoveItem("u-1", "inv-3kw"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound on double remove, got %v", err)
	}
}

func TestCart_OwnersDoNotShare(t *testing.T) {
	svc, _ := newCartSvc(t)
	if err := svc.AddItem("u-1", "panel-450w"); err != nil {
		t.Fatal(err)
	}
	cv, err := svc.View("u-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 0 {
		t.Fatalf("u-2 should have an empty cart, got %+v", cv.Items)
	}
}
