package router

import (
	"fmt"

	"github.com/amancoderhub/EMS-Event-management-System/models"
)

// Page identifies a screen of the storefront.
type Page int

const (
	Home Page = iota
	AdminLogin
	VendorLogin
	VendorSignup
	UserLogin
	UserSignup

	UserPortal
	VendorBrowse
	Products
	Cart
	Checkout
	Success
	OrderStatus
	GuestList
	RequestItem

	VendorHome
	YourItems
	AddItem
	Transactions
	ProductStatus

	AdminDash
	MaintainUser
	MaintainVendor
	Membership
	AllOrders

	pageCount
)

var pageNames = [pageCount]string{
	Home:           "home",
	AdminLogin:     "adminLogin",
	VendorLogin:    "vendorLogin",
	VendorSignup:   "vendorSignup",
	UserLogin:      "userLogin",
	UserSignup:     "userSignup",
	UserPortal:     "userPortal",
	VendorBrowse:   "vendorBrowse",
	Products:       "products",
	Cart:           "cart",
	Checkout:       "checkout",
	Success:        "success",
	OrderStatus:    "orderStatus",
	GuestList:      "guestList",
	RequestItem:    "requestItem",
	VendorHome:     "vendorHome",
	YourItems:      "yourItems",
	AddItem:        "addItem",
	Transactions:   "transactions",
	ProductStatus:  "productStatus",
	AdminDash:      "adminDash",
	MaintainUser:   "maintainUser",
	MaintainVendor: "maintainVendor",
	Membership:     "membership",
	AllOrders:      "allOrders",
}

// Pages returns every page in declaration order.
func Pages() []Page {
	out := make([]Page, pageCount)
	for i := range out {
		out[i] = Page(i)
	}
	return out
}

func (p Page) String() string {
	if p < 0 || p >= pageCount {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pageNames[p]
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	return p >= 0 && p < pageCount
}

// ParsePage maps a page name back to its Page.
func ParsePage(name string) (Page, error) {
	for i, n := range pageNames {
		if n == name {
			return Page(i), nil
		}
	}
	return Home, fmt.Errorf("unknown page %q", name)
}

// MarshalText encodes the page by name.
func (p Page) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown page %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a page name.
func (p *Page) UnmarshalText(text []byte) error {
	parsed, err := ParsePage(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// RequiredRoles lists the roles allowed to open p. Nil means anyone.
func RequiredRoles(p Page) []models.Role {
	switch {
	case p == RequestItem:
		return []models.Role{models.RoleUser, models.RoleVendor}
	case p >= UserPortal && p <= GuestList:
		return []models.Role{models.RoleUser}
	case p >= VendorHome && p <= ProductStatus:
		return []models.Role{models.RoleVendor}
	case p >= AdminDash && p <= AllOrders:
		return []models.Role{models.RoleAdmin}
	}
	return nil
}

// LoginPage is where a visitor lacking role is sent.
func LoginPage(role models.Role) Page {
	switch role {
	case models.RoleAdmin:
		return AdminLogin
	case models.RoleVendor:
		return VendorLogin
	}
	return UserLogin
}

// LandingPage is the home screen for a session of role.
func LandingPage(role models.Role) Page {
	switch role {
	case models.RoleAdmin:
		return AdminDash
	case models.RoleVendor:
		return VendorHome
	case models.RoleUser:
		return UserPortal
	}
	return Home
}
