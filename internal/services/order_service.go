package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"solarmart/internal/domain"
	"solarmart/internal/repos"
)

type OrderService struct {
	Carts  *repos.CartRepo
	Prods  *repos.ProductRepo
	Orders *repos.OrderRepo
}

func NewOrderService(carts *repos.CartRepo, prods *repos.ProductRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Carts: carts, Prods: prods, Orders: orders}
}

// Place materializes the user's cart into an immutable order. Every line
// is resolved against the live catalog; name and price are frozen into
// the snapshot at this moment. The order insert and the cart clear
// commit in one transaction, so there is no partial checkout.
func (s *OrderService) Place(userID, deliveryAddress string) (domain.Order, error) {
	lines, err := s.Carts.Items(userID)
	if err != nil {
		return domain.Order{}, err
	}
	if len(lines) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(lines))
	for _, ln := range lines {
		p, err := s.Prods.Get(ln.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Order{}, domain.ErrProductUnavailable
			}
			return domain.Order{}, err
		}
		if !p.Active {
			return domain.Order{}, domain.ErrProductUnavailable
		}
		itemTotal := p.Price.Mul(decimal.NewFromInt(int64(ln.Qty)))
		items = append(items, domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       ln.Qty,
			ItemTotal: itemTotal,
		})
		total = total.Add(itemTotal)
	}

	o := domain.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		DeliveryAddress: deliveryAddress,
		Total:           total,
		Status:          domain.OrderPending,
		PaymentStatus:   domain.PaymentPending,
		Items:           items,
	}

	tx, err := s.Orders.Begin()
	if err != nil {
		return domain.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.Orders.CreateTx(tx, o); err != nil {
		return domain.Order{}, err
	}
	if err := s.Carts.ClearTx(tx, userID); err != nil {
		return domain.Order{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Order{}, err
	}

	return s.Orders.Get(o.ID)
}

// RecordPaymentResult applies an external payment outcome. Re-applying
// the outcome an order already has is a no-op; applying the opposite
// outcome to a resolved order is rejected rather than overwritten.
func (s *OrderService) RecordPaymentResult(orderID string, success bool) (domain.Order, error) {
	o, err := s.Orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}

	want := domain.PaymentFailed
	status := domain.OrderFailed
	if success {
		want = domain.PaymentSuccess
		status = domain.OrderPaid
	}

	switch o.PaymentStatus {
	case want:
		return o, nil
	case domain.PaymentPending:
		if err := s.Orders.SetPayment(orderID, status, want); err != nil {
			return domain.Order{}, err
		}
		return s.Orders.Get(orderID)
	default:
		return domain.Order{}, domain.ErrPaymentResolved
	}
}

// RetryPayment re-enters a failed order into Pending so the payment
// step can run again. Any other state cannot be retried.
func (s *OrderService) RetryPayment(orderID string) (domain.Order, error) {
	o, err := s.Orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if o.PaymentStatus != domain.PaymentFailed {
		return domain.Order{}, domain.ErrPaymentResolved
	}
	if err := s.Orders.SetPayment(orderID, domain.OrderPending, domain.PaymentPending); err != nil {
		return domain.Order{}, err
	}
	return s.Orders.Get(orderID)
}

// Reorder re-adds a past order's lines to the user's current cart by
// product id. The cart is priced from the catalog as it stands today;
// the snapshot prices stay in the old order and are not carried over.
func (s *OrderService) Reorder(orderID, userID string) error {
	o, err := s.Orders.Get(orderID)
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return domain.ErrNotFound
	}
	for _, it := range o.Items {
		p, err := s.Prods.Get(it.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrProductUnavailable
			}
			return err
		}
		if !p.Active {
			return domain.ErrProductUnavailable
		}
	}
	for _, it := range o.Items {
		for i := 0; i < it.Qty; i++ {
			if err := s.Carts.IncrementItem(userID, it.ProductID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *OrderService) Get(orderID string) (domain.Order, error) {
	return s.Orders.Get(orderID)
}

func (s *OrderService) ListByUser(userID string) ([]domain.Order, error) {
	return s.Orders.ListByUser(userID)
}
