package controllers

import (
	"net/http"

	apperrors "github.com/amancoderhub/EMS-Event-management-System/common/errors"
	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/amancoderhub/EMS-Event-management-System/notify"
	"github.com/amancoderhub/EMS-Event-management-System/store"
	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

type MembershipRequest struct {
	VendorID int64    `json:"vendor_id" binding:"required"`
	Plan     string   `json:"plan" binding:"required,oneof='6 months' '1 year' '2 years'"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
}

type UpdatePlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof='6 months' '1 year' '2 years'"`
}

// AdminController serves the maintenance screens.
type AdminController struct {
	store   *store.Store
	toaster *notify.Toaster
}

func NewAdminController(s *store.Store, t *notify.Toaster) *AdminController {
	return &AdminController{store: s, toaster: t}
}

// ListUsers handles GET /admin/users.
func (ac *AdminController) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": ac.store.Users()})
}

// CreateUser handles POST /admin/users. The admin session is kept.
func (ac *AdminController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	user, ok := ac.store.CreateUser(req.Name, req.Email, req.Password)
	if !ok {
		fail(c, apperrors.ErrEmailTaken)
		return
	}
	ac.toaster.Show("User added!")
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// DeleteUser handles DELETE /admin/users/:id.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if !ac.store.DeleteUser(id) {
		fail(c, apperrors.ErrNotFound.WithMessage("User not found"))
		return
	}
	ac.toaster.Show("User removed")
	c.JSON(http.StatusOK, gin.H{"message": "User removed"})
}

// ListVendors handles GET /admin/vendors.
func (ac *AdminController) ListVendors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vendors": ac.store.Vendors(store.CategoryAll)})
}

// DeleteVendor handles DELETE /admin/vendors/:id. Orders and memberships
// referencing the vendor are kept.
func (ac *AdminController) DeleteVendor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if !ac.store.DeleteVendor(id) {
		fail(c, apperrors.ErrVendorNotFound)
		return
	}
	ac.toaster.Show("Vendor removed")
	c.JSON(http.StatusOK, gin.H{"message": "Vendor removed"})
}

// ListMemberships handles GET /admin/memberships.
func (ac *AdminController) ListMemberships(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"memberships": ac.store.Memberships()})
}

// AddMembership handles POST /admin/memberships.
func (ac *AdminController) AddMembership(c *gin.Context) {
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}
	if _, ok := ac.store.GetVendor(req.VendorID); !ok {
		fail(c, apperrors.ErrVendorNotFound)
		return
	}

	m := ac.store.AddMembership(models.Membership{VendorID: req.VendorID, Plan: req.Plan, Price: *req.Price})
	ac.toaster.Show("Membership added!")
	c.JSON(http.StatusCreated, gin.H{"membership": m})
}

// UpdateMembership handles PUT /admin/memberships/:no.
func (ac *AdminController) UpdateMembership(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}
	if !ac.store.UpdateMembershipPlan(c.Param("no"), req.Plan) {
		fail(c, apperrors.ErrNotFound.WithMessage("Membership not found"))
		return
	}
	ac.toaster.Show("Membership updated!")
	m, _ := ac.store.Membership(c.Param("no"))
	c.JSON(http.StatusOK, gin.H{"membership": m})
}

// ListOrders handles GET /admin/orders.
func (ac *AdminController) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": ac.store.Orders()})
}
