package services

import (
	"github.com/shopspring/decimal"

	"solarmart/internal/domain"
	"solarmart/internal/repos"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// CartView is the cart joined against live catalog prices. ItemCount is
// the total quantity across lines (the cart badge number).
type CartView struct {
	Items     []repos.CartItemRow `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	ItemCount int                 `json:"itemCount"`
}

// AddItem puts one more unit of productID in the user's cart. Adding a
// product already in the cart increments its line rather than appending
// a duplicate.
func (s *CartService) AddItem(userID, productID string) error {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	if !p.Active {
		return domain.ErrNotFound
	}
	return s.Carts.IncrementItem(userID, productID)
}

// SetQuantity overwrites a line's quantity. Zero removes the line; a
// negative quantity is rejected; a line that was never added is
// ErrNotFound rather than a silent no-op.
func (s *CartService) SetQuantity(userID, productID string, qty int) error {
	if qty < 0 {
		return domain.ErrInvalidQuantity
	}
	if qty == 0 {
		_, err := s.RemoveItem(userID, productID)
		return err
	}
	return s.Carts.SetQty(userID, productID, qty)
}

// RemoveItem deletes a line and reports whether the cart is now empty.
func (s *CartService) RemoveItem(userID, productID string) (empty bool, err error) {
	if err := s.Carts.Remove(userID, productID); err != nil {
		return false, err
	}
	lines, err := s.Carts.Items(userID)
	if err != nil {
		return false, err
	}
	return len(lines) == 0, nil
}

// View returns the cart priced from the catalog as it stands now. An
// empty or never-created cart is an empty list with a zero total.
func (s *CartService) View(userID string) (CartView, error) {
	items, err := s.Carts.View(userID)
	if err != nil {
		return CartView{}, err
	}
	total := decimal.Zero
	count := 0
	for _, it := range items {
		total = total.Add(it.Subtotal)
		count += it.Qty
	}
	return CartView{Items: items, Total: total, ItemCount: count}, nil
}

func (s *CartService) Clear(userID string) error {
	return s.Carts.Clear(userID)
}
