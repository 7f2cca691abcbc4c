package router

import (
	"encoding/json"
	"testing"

	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	sess *models.Session
}

func (f *fakeSessions) Session() *models.Session { return f.sess }

func as(role models.Role) *fakeSessions {
	return &fakeSessions{sess: &models.Session{Role: role, ID: 1, Name: "Tester"}}
}

func TestNew_StartsHome(t *testing.T) {
	r := New(&fakeSessions{}, nil)
	assert.Equal(t, Route{Page: Home}, r.Current())
}

func TestNavigate_VendorPageAsUserRedirects(t *testing.T) {
	r := New(as(models.RoleUser), nil)
	r.Navigate(Route{Page: Cart})

	got := r.Navigate(Route{Page: YourItems})

	assert.Equal(t, Route{Page: VendorLogin}, got)
	assert.Equal(t, VendorLogin, r.Current().Page)
}

func TestNavigate_GuardTable(t *testing.T) {
	tests := []struct {
		name string
		sess *models.Session
		page Page
		want Page
	}{
		{"public page without session", nil, UserSignup, UserSignup},
		{"user page without session", nil, Checkout, UserLogin},
		{"admin page as vendor", &models.Session{Role: models.RoleVendor}, AllOrders, AdminLogin},
		{"admin page as admin", &models.Session{Role: models.RoleAdmin}, Membership, Membership},
		{"user page as admin", &models.Session{Role: models.RoleAdmin}, OrderStatus, UserLogin},
		{"vendor page as vendor", &models.Session{Role: models.RoleVendor}, ProductStatus, ProductStatus},
		{"request item as user", &models.Session{Role: models.RoleUser}, RequestItem, RequestItem},
		{"request item as vendor", &models.Session{Role: models.RoleVendor}, RequestItem, RequestItem},
		{"request item as admin", &models.Session{Role: models.RoleAdmin}, RequestItem, VendorLogin},
		{"request item without session", nil, RequestItem, VendorLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeSessions{sess: tt.sess}, nil)
			assert.Equal(t, tt.want, r.Navigate(Route{Page: tt.page}).Page)
		})
	}
}

func TestNavigate_KeepsRouteParams(t *testing.T) {
	r := New(as(models.RoleUser), nil)

	got := r.Navigate(Route{Page: Products, VendorID: 3})
	assert.Equal(t, Route{Page: Products, VendorID: 3}, got)

	got = r.Navigate(Route{Page: Success, OrderID: "ORD-1"})
	assert.Equal(t, "ORD-1", got.OrderID)
}

func TestNavigate_RedirectDropsParams(t *testing.T) {
	r := New(&fakeSessions{}, nil)

	got := r.Navigate(Route{Page: Products, VendorID: 3})

	assert.Equal(t, Route{Page: UserLogin}, got)
}

func TestNavigate_InvalidPageGoesHome(t *testing.T) {
	r := New(as(models.RoleUser), nil)
	r.Navigate(Route{Page: Cart})

	assert.Equal(t, Route{Page: Home}, r.Navigate(Route{Page: Page(99)}))
}

func TestHome_LandingPerRole(t *testing.T) {
	sessions := &fakeSessions{}
	r := New(sessions, nil)

	assert.Equal(t, Home, r.Home().Page)
	for role, want := range map[models.Role]Page{
		models.RoleUser:   UserPortal,
		models.RoleVendor: VendorHome,
		models.RoleAdmin:  AdminDash,
	} {
		sessions.sess = &models.Session{Role: role}
		assert.Equal(t, want, r.Home().Page, role)
	}
}

func TestParsePage(t *testing.T) {
	for _, p := range Pages() {
		parsed, err := ParsePage(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
	assert.Len(t, Pages(), 25)

	_, err := ParsePage("vendorHom")
	assert.Error(t, err)
}

func TestPage_JSON(t *testing.T) {
	b, err := json.Marshal(Route{Page: AllOrders})
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":"allOrders"}`, string(b))

	var r Route
	require.NoError(t, json.Unmarshal([]byte(`{"page":"products","vendor_id":2}`), &r))
	assert.Equal(t, Route{Page: Products, VendorID: 2}, r)

	assert.Error(t, json.Unmarshal([]byte(`{"page":"nowhere"}`), &r))
}

func TestRequiredRoles(t *testing.T) {
	assert.Nil(t, RequiredRoles(Home))
	assert.Nil(t, RequiredRoles(VendorSignup))
	assert.Equal(t, []models.Role{models.RoleUser}, RequiredRoles(GuestList))
	assert.Equal(t, []models.Role{models.RoleVendor}, RequiredRoles(VendorHome))
	assert.Equal(t, []models.Role{models.RoleAdmin}, RequiredRoles(AdminDash))
	assert.ElementsMatch(t, []models.Role{models.RoleUser, models.RoleVendor}, RequiredRoles(RequestItem))
}
