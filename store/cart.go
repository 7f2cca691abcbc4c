package store

import "github.com/amancoderhub/EMS-Event-management-System/models"

// AddToCart bumps the quantity of an existing line for product.ID or appends
// a new line copied from product.
func (s *Store) AddToCart(product models.Product, vendorID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Cart {
		if s.state.Cart[i].ProductID == product.ID {
			s.state.Cart[i].Qty++
			return
		}
	}
	s.state.Cart = append(s.state.Cart, models.CartLine{
		ProductID: product.ID,
		VendorID:  vendorID,
		Name:      product.Name,
		Price:     product.Price,
		Emoji:     product.Emoji,
		Qty:       1,
	})
}

// RemoveFromCart drops the line for productID if there is one.
func (s *Store) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLineLocked(productID)
}

// UpdateQty sets the quantity of a line; qty below 1 removes it.
func (s *Store) UpdateQty(productID int64, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty < 1 {
		s.removeLineLocked(productID)
		return
	}
	for i := range s.state.Cart {
		if s.state.Cart[i].ProductID == productID {
			s.state.Cart[i].Qty = qty
			return
		}
	}
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Cart = []models.CartLine{}
}

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartLine{}, s.state.Cart...)
}

func (s *Store) removeLineLocked(productID int64) {
	kept := make([]models.CartLine, 0, len(s.state.Cart))
	for _, l := range s.state.Cart {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	s.state.Cart = kept
}
