// Package views builds the data each page renders from a store snapshot.
package views

import (
	"fmt"

	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/amancoderhub/EMS-Event-management-System/router"
	"github.com/amancoderhub/EMS-Event-management-System/store"
)

// Nav is the navbar state shown on every page.
type Nav struct {
	Session   *models.Session `json:"session"`
	Theme     models.Theme    `json:"theme"`
	CartCount int             `json:"cart_count"`
	Landing   router.Page     `json:"landing"`
}

// View is a rendered page: the route it was built for plus page data.
type View struct {
	Route router.Route `json:"route"`
	Nav   Nav          `json:"nav"`
	Data  any          `json:"data"`
}

// Tile is a dashboard shortcut to another page.
type Tile struct {
	Label string      `json:"label"`
	Page  router.Page `json:"page"`
}

// Stat is a labelled counter on a dashboard.
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type HomeData struct {
	Categories []string `json:"categories"`
}

type AuthData struct {
	Role   models.Role `json:"role"`
	Signup bool        `json:"signup"`
}

type UserPortalData struct {
	Name  string `json:"name"`
	Stats []Stat `json:"stats"`
	Tiles []Tile `json:"tiles"`
}

type VendorBrowseData struct {
	Categories []string        `json:"categories"`
	Vendors    []models.Vendor `json:"vendors"`
}

// ProductsData has a nil Vendor when the selected vendor no longer exists.
type ProductsData struct {
	Vendor    *models.Vendor `json:"vendor"`
	CartCount int            `json:"cart_count"`
}

type CartData struct {
	Lines []models.CartLine `json:"lines"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

type CheckoutData struct {
	Lines          []models.CartLine `json:"lines"`
	Total          float64           `json:"total"`
	PaymentMethods []string          `json:"payment_methods"`
}

type SuccessData struct {
	Order *models.Order `json:"order"`
}

type OrdersData struct {
	Orders   []models.Order       `json:"orders"`
	Statuses []models.OrderStatus `json:"statuses,omitempty"`
}

type GuestListData struct {
	Guests []models.Guest `json:"guests"`
}

type RequestItemData struct {
	Requests []models.ItemRequest `json:"requests"`
}

type VendorHomeData struct {
	Vendor *models.Vendor `json:"vendor"`
	Stats  []Stat         `json:"stats"`
	Tiles  []Tile         `json:"tiles"`
}

type YourItemsData struct {
	Products []models.Product `json:"products"`
}

type AddItemData struct {
	VendorID int64 `json:"vendor_id"`
}

// Transaction is an order trimmed to the lines one vendor supplied. Total
// covers only those lines; OrderTotal is what the customer paid overall.
type Transaction struct {
	OrderID    string             `json:"order_id"`
	Customer   string             `json:"customer"`
	Items      []models.CartLine  `json:"items"`
	Total      float64            `json:"total"`
	OrderTotal float64            `json:"order_total"`
	Status     models.OrderStatus `json:"status"`
}

type TransactionsData struct {
	Transactions []Transaction `json:"transactions"`
}

type AdminDashData struct {
	Tiles []Tile `json:"tiles"`
}

type MaintainUserData struct {
	Users []models.User `json:"users"`
}

type VendorRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Products int    `json:"products"`
}

type MaintainVendorData struct {
	Vendors []VendorRow `json:"vendors"`
}

// MembershipRow has an empty VendorName when the vendor was deleted.
type MembershipRow struct {
	models.Membership
	VendorName string `json:"vendor_name"`
}

type MembershipData struct {
	Vendors     []VendorRow     `json:"vendors"`
	Memberships []MembershipRow `json:"memberships"`
	Plans       []string        `json:"plans"`
}

// Build renders route against st. The route is assumed to have passed the
// router's guard already.
func Build(route router.Route, st store.State) (View, error) {
	v := View{Route: route, Nav: nav(st)}
	var sessID int64
	if st.Session != nil {
		sessID = st.Session.ID
	}

	switch route.Page {
	case router.Home:
		v.Data = HomeData{Categories: categories(st.Vendors)}
	case router.AdminLogin:
		v.Data = AuthData{Role: models.RoleAdmin}
	case router.VendorLogin:
		v.Data = AuthData{Role: models.RoleVendor}
	case router.VendorSignup:
		v.Data = AuthData{Role: models.RoleVendor, Signup: true}
	case router.UserLogin:
		v.Data = AuthData{Role: models.RoleUser}
	case router.UserSignup:
		v.Data = AuthData{Role: models.RoleUser, Signup: true}

	case router.UserPortal:
		v.Data = userPortal(st, sessID)
	case router.VendorBrowse:
		v.Data = VendorBrowseData{Categories: append([]string{store.CategoryAll}, categories(st.Vendors)...), Vendors: st.Vendors}
	case router.Products:
		v.Data = ProductsData{Vendor: findVendor(st.Vendors, route.VendorID), CartCount: models.CartCount(st.Cart)}
	case router.Cart:
		v.Data = CartData{Lines: st.Cart, Count: models.CartCount(st.Cart), Total: models.CartTotal(st.Cart)}
	case router.Checkout:
		v.Data = CheckoutData{Lines: st.Cart, Total: models.CartTotal(st.Cart), PaymentMethods: PaymentMethods()}
	case router.Success:
		v.Data = SuccessData{Order: findOrder(st.Orders, route.OrderID)}
	case router.OrderStatus:
		v.Data = OrdersData{Orders: ordersFor(st.Orders, sessID)}
	case router.GuestList:
		v.Data = GuestListData{Guests: st.Guests}
	case router.RequestItem:
		v.Data = RequestItemData{Requests: requestsFor(st.Requests, sessID)}

	case router.VendorHome:
		v.Data = vendorHome(st, sessID)
	case router.YourItems:
		var products []models.Product
		if vendor := findVendor(st.Vendors, sessID); vendor != nil {
			products = vendor.Products
		}
		v.Data = YourItemsData{Products: products}
	case router.AddItem:
		v.Data = AddItemData{VendorID: sessID}
	case router.Transactions:
		v.Data = TransactionsData{Transactions: transactions(st, sessID)}
	case router.ProductStatus:
		v.Data = OrdersData{Orders: st.Orders, Statuses: models.OrderStatuses()}

	case router.AdminDash:
		v.Data = AdminDashData{Tiles: []Tile{
			{Label: "Maintain Users", Page: router.MaintainUser},
			{Label: "Maintain Vendors", Page: router.MaintainVendor},
			{Label: "Memberships", Page: router.Membership},
			{Label: "All Orders", Page: router.AllOrders},
		}}
	case router.MaintainUser:
		v.Data = MaintainUserData{Users: st.Users}
	case router.MaintainVendor:
		v.Data = MaintainVendorData{Vendors: vendorRows(st.Vendors)}
	case router.Membership:
		v.Data = membership(st)
	case router.AllOrders:
		v.Data = OrdersData{Orders: st.Orders}

	default:
		return View{}, fmt.Errorf("no view for page %s", route.Page)
	}
	return v, nil
}

// PaymentMethods are the options offered at checkout.
func PaymentMethods() []string {
	return []string{"Cash", "UPI"}
}

func nav(st store.State) Nav {
	n := Nav{Session: st.Session, Theme: st.Theme, CartCount: models.CartCount(st.Cart), Landing: router.Home}
	if st.Session != nil {
		n.Landing = router.LandingPage(st.Session.Role)
	}
	return n
}

func userPortal(st store.State, userID int64) UserPortalData {
	var name string
	if st.Session != nil {
		name = st.Session.Name
	}
	return UserPortalData{
		Name: name,
		Stats: []Stat{
			{Label: "Cart Items", Value: len(st.Cart)},
			{Label: "Orders", Value: len(ordersFor(st.Orders, userID))},
			{Label: "Vendors", Value: len(st.Vendors)},
		},
		Tiles: []Tile{
			{Label: "Browse Vendors", Page: router.VendorBrowse},
			{Label: "My Cart", Page: router.Cart},
			{Label: "Order Status", Page: router.OrderStatus},
			{Label: "Guest List", Page: router.GuestList},
			{Label: "Request Item", Page: router.RequestItem},
		},
	}
}

func vendorHome(st store.State, vendorID int64) VendorHomeData {
	vendor := findVendor(st.Vendors, vendorID)
	products := 0
	if vendor != nil {
		products = len(vendor.Products)
	}
	return VendorHomeData{
		Vendor: vendor,
		Stats: []Stat{
			{Label: "Products", Value: products},
			{Label: "Total Orders", Value: len(st.Orders)},
			{Label: "Requests", Value: len(st.Requests)},
		},
		Tiles: []Tile{
			{Label: "My Products", Page: router.YourItems},
			{Label: "Add New Item", Page: router.AddItem},
			{Label: "Transactions", Page: router.Transactions},
			{Label: "Request Items", Page: router.RequestItem},
		},
	}
}

func transactions(st store.State, vendorID int64) []Transaction {
	vendor := findVendor(st.Vendors, vendorID)
	if vendor == nil {
		return nil
	}
	var out []Transaction
	for _, o := range st.Orders {
		var lines []models.CartLine
		for _, item := range o.Items {
			if vendor.HasProduct(item.ProductID) {
				lines = append(lines, item)
			}
		}
		if len(lines) == 0 {
			continue
		}
		out = append(out, Transaction{
			OrderID:    o.ID,
			Customer:   o.Name,
			Items:      lines,
			Total:      models.CartTotal(lines),
			OrderTotal: o.Total,
			Status:     o.Status,
		})
	}
	return out
}

func membership(st store.State) MembershipData {
	rows := make([]MembershipRow, 0, len(st.Memberships))
	for _, m := range st.Memberships {
		row := MembershipRow{Membership: m}
		if v := findVendor(st.Vendors, m.VendorID); v != nil {
			row.VendorName = v.Name
		}
		rows = append(rows, row)
	}
	return MembershipData{
		Vendors:     vendorRows(st.Vendors),
		Memberships: rows,
		Plans:       []string{models.Plan6Months, models.Plan1Year, models.Plan2Years},
	}
}

func vendorRows(vendors []models.Vendor) []VendorRow {
	rows := make([]VendorRow, 0, len(vendors))
	for _, v := range vendors {
		rows = append(rows, VendorRow{ID: v.ID, Name: v.Name, Email: v.Email, Category: v.Category, Products: len(v.Products)})
	}
	return rows
}

func categories(vendors []models.Vendor) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range vendors {
		if !seen[v.Category] {
			seen[v.Category] = true
			out = append(out, v.Category)
		}
	}
	return out
}

func findVendor(vendors []models.Vendor, id int64) *models.Vendor {
	for i := range vendors {
		if vendors[i].ID == id {
			return &vendors[i]
		}
	}
	return nil
}

func findOrder(orders []models.Order, id string) *models.Order {
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i]
		}
	}
	return nil
}

func ordersFor(orders []models.Order, userID int64) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func requestsFor(requests []models.ItemRequest, userID int64) []models.ItemRequest {
	out := []models.ItemRequest{}
	for _, r := range requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}
