package models

// Product is an item a vendor sells.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Emoji string  `json:"emoji"`
}

// Vendor is a service provider with its own product catalogue.
type Vendor struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Category string    `json:"category"`
	Contact  string    `json:"contact"`
	Desc     string    `json:"desc"`
	Products []Product `json:"products"`
}

// HasProduct reports whether productID is in the vendor's catalogue.
func (v Vendor) HasProduct(productID int64) bool {
	for _, p := range v.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Membership is a paid vendor plan. VendorID is not kept in sync with the
// vendor collection.
type Membership struct {
	ID       int64   `json:"id"`
	VendorID int64   `json:"vendor_id"`
	Plan     string  `json:"plan"`
	Price    float64 `json:"price"`
	No       string  `json:"no"`
}

// Membership plans offered to vendors.
const (
	Plan6Months = "6 months"
	Plan1Year   = "1 year"
	Plan2Years  = "2 years"
)
