package views

import (
	"context"
	"testing"

	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/amancoderhub/EMS-Event-management-System/router"
	"github.com/amancoderhub/EMS-Event-management-System/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.Deps{BcryptCost: bcrypt.MinCost})
}

func placeThaliOrder(t *testing.T, s *store.Store, userID int64) string {
	t.Helper()
	v, ok := s.GetVendor(1)
	require.True(t, ok)
	s.AddToCart(v.Products[0], v.ID)
	return s.PlaceOrder(context.Background(), models.OrderDetails{
		UserID: userID, Name: "Alice", Email: "user@ems.com", Number: "9876543210",
		Address: "1 Lane", City: "Pune", State: "MH", PinCode: "411001", PaymentMethod: "UPI",
	})
}

func TestBuild_EveryPageHasData(t *testing.T) {
	s := newStore(t)
	for _, p := range router.Pages() {
		v, err := Build(router.Route{Page: p}, s.Snapshot())
		require.NoError(t, err, p.String())
		assert.NotNil(t, v.Data, p.String())
	}

	_, err := Build(router.Route{Page: router.Page(-1)}, s.Snapshot())
	assert.Error(t, err)
}

func TestBuild_Nav(t *testing.T) {
	s := newStore(t)
	require.True(t, s.Login(models.RoleUser, "user@ems.com", "user123"))
	v, _ := s.GetVendor(1)
	s.AddToCart(v.Products[0], 1)
	s.AddToCart(v.Products[0], 1)
	s.AddToCart(v.Products[1], 1)

	view, err := Build(router.Route{Page: router.Home}, s.Snapshot())

	require.NoError(t, err)
	assert.Equal(t, 3, view.Nav.CartCount)
	assert.Equal(t, router.UserPortal, view.Nav.Landing)
	assert.Equal(t, models.ThemeDark, view.Nav.Theme)
}

func TestBuild_UserPortalStats(t *testing.T) {
	s := newStore(t)
	require.True(t, s.Login(models.RoleUser, "user@ems.com", "user123"))
	placeThaliOrder(t, s, 1)
	placeThaliOrder(t, s, 2)

	view, err := Build(router.Route{Page: router.UserPortal}, s.Snapshot())

	require.NoError(t, err)
	data := view.Data.(UserPortalData)
	assert.Equal(t, "Alice", data.Name)
	assert.Equal(t, []Stat{{"Cart Items", 0}, {"Orders", 1}, {"Vendors", 4}}, data.Stats)
}

func TestBuild_ProductsForDeletedVendor(t *testing.T) {
	s := newStore(t)
	require.True(t, s.DeleteVendor(2))

	view, err := Build(router.Route{Page: router.Products, VendorID: 2}, s.Snapshot())

	require.NoError(t, err)
	assert.Nil(t, view.Data.(ProductsData).Vendor)
}

func TestBuild_SuccessFindsOrder(t *testing.T) {
	s := newStore(t)
	id := placeThaliOrder(t, s, 1)

	view, err := Build(router.Route{Page: router.Success, OrderID: id}, s.Snapshot())

	require.NoError(t, err)
	order := view.Data.(SuccessData).Order
	require.NotNil(t, order)
	assert.Equal(t, 350.0, order.Total)
	assert.Equal(t, "UPI", order.PaymentMethod)
}

func TestBuild_TransactionsOnlyVendorLines(t *testing.T) {
	s := newStore(t)
	require.True(t, s.Login(models.RoleVendor, "bloom@ems.com", "bloom123"))
	thali, _ := s.GetVendor(1)
	rose, _ := s.GetVendor(2)
	s.AddToCart(thali.Products[0], 1)
	s.AddToCart(rose.Products[0], 2)
	s.PlaceOrder(context.Background(), models.OrderDetails{UserID: 1, Name: "Alice"})
	placeThaliOrder(t, s, 1)

	view, err := Build(router.Route{Page: router.Transactions}, s.Snapshot())

	require.NoError(t, err)
	tx := view.Data.(TransactionsData).Transactions
	require.Len(t, tx, 1)
	require.Len(t, tx[0].Items, 1)
	assert.Equal(t, "Rose Centrepiece", tx[0].Items[0].Name)
	assert.Equal(t, "Alice", tx[0].Customer)
	assert.Equal(t, 1200.0, tx[0].Total)
	assert.Equal(t, 1550.0, tx[0].OrderTotal)
}

func TestBuild_MembershipDanglingVendor(t *testing.T) {
	s := newStore(t)
	s.AddMembership(models.Membership{VendorID: 3, Plan: models.Plan1Year, Price: 9000})
	s.AddMembership(models.Membership{VendorID: 4, Plan: models.Plan2Years, Price: 15000})
	require.True(t, s.DeleteVendor(4))

	view, err := Build(router.Route{Page: router.Membership}, s.Snapshot())

	require.NoError(t, err)
	data := view.Data.(MembershipData)
	require.Len(t, data.Memberships, 2)
	assert.Equal(t, "Glitter Decorations", data.Memberships[0].VendorName)
	assert.Equal(t, "", data.Memberships[1].VendorName)
	assert.Len(t, data.Vendors, 3)
}

func TestBuild_VendorBrowseStartsWithAll(t *testing.T) {
	s := newStore(t)

	view, err := Build(router.Route{Page: router.VendorBrowse}, s.Snapshot())

	require.NoError(t, err)
	data := view.Data.(VendorBrowseData)
	assert.Equal(t, []string{store.CategoryAll, "Catering", "Florist", "Decoration", "Lighting"}, data.Categories)
	assert.Len(t, data.Vendors, 4)
}
