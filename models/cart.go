package models

// CartLine is a copy of a product taken when it was first added to the cart.
type CartLine struct {
	ProductID int64   `json:"product_id"`
	VendorID  int64   `json:"vendor_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Emoji     string  `json:"emoji"`
	Qty       int     `json:"qty"`
}

// LineTotal is price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Qty)
}

// CartTotal sums the line totals.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}

// CartCount sums the quantities.
func CartCount(lines []CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Qty
	}
	return n
}
