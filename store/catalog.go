package store

import (
	"github.com/amancoderhub/EMS-Event-management-System/models"
	"go.uber.org/zap"
)

// CategoryAll matches every vendor in Vendors.
const CategoryAll = "All"

// GetVendor looks up a vendor by id.
func (s *Store) GetVendor(id int64) (models.Vendor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.state.Vendors {
		if v.ID == id {
			return cloneVendor(v), true
		}
	}
	return models.Vendor{}, false
}

// Vendors returns the vendors in category, or all of them for "" or CategoryAll.
func (s *Store) Vendors(category string) []models.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Vendor{}
	for _, v := range s.state.Vendors {
		if category == "" || category == CategoryAll || v.Category == category {
			out = append(out, cloneVendor(v))
		}
	}
	return out
}

// Categories lists the distinct vendor categories in first-seen order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, v := range s.state.Vendors {
		if !seen[v.Category] {
			seen[v.Category] = true
			out = append(out, v.Category)
		}
	}
	return out
}

// DeleteVendor removes the vendor and its catalogue. Orders and memberships
// that reference it keep their copies.
func (s *Store) DeleteVendor(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.state.Vendors {
		if v.ID == id {
			s.state.Vendors = append(s.state.Vendors[:i:i], s.state.Vendors[i+1:]...)
			s.logger.Info("Vendor deleted", zap.Int64("id", id))
			return true
		}
	}
	return false
}

// AddProduct appends product to the vendor's catalogue under a fresh id and
// returns the stored product. Unknown vendors and negative prices are refused.
func (s *Store) AddProduct(vendorID int64, product models.Product) (models.Product, bool) {
	if product.Price < 0 {
		return models.Product{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.vendorLocked(vendorID)
	if v == nil {
		return models.Product{}, false
	}
	product.ID = s.nextIDLocked()
	v.Products = append(v.Products, product)
	return product, true
}

// DeleteProduct removes productID from the vendor's catalogue.
func (s *Store) DeleteProduct(vendorID, productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.vendorLocked(vendorID)
	if v == nil {
		return false
	}
	for i, p := range v.Products {
		if p.ID == productID {
			v.Products = append(v.Products[:i:i], v.Products[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateProduct replaces the catalogue entry whose id equals product.ID.
// Existing cart lines and orders keep the values they copied.
func (s *Store) UpdateProduct(vendorID int64, product models.Product) bool {
	if product.Price < 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.vendorLocked(vendorID)
	if v == nil {
		return false
	}
	for i := range v.Products {
		if v.Products[i].ID == product.ID {
			v.Products[i] = product
			return true
		}
	}
	return false
}

func (s *Store) vendorLocked(id int64) *models.Vendor {
	for i := range s.state.Vendors {
		if s.state.Vendors[i].ID == id {
			return &s.state.Vendors[i]
		}
	}
	return nil
}
