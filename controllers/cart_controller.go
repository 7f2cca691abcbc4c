package controllers

import (
	"net/http"

	apperrors "github.com/amancoderhub/EMS-Event-management-System/common/errors"
	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/amancoderhub/EMS-Event-management-System/notify"
	"github.com/amancoderhub/EMS-Event-management-System/store"
	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	VendorID  int64 `json:"vendor_id" binding:"required"`
	ProductID int64 `json:"product_id" binding:"required"`
}

type UpdateQtyRequest struct {
	Qty *int `json:"qty" binding:"required"`
}

// CartController serves the shopping cart.
type CartController struct {
	store   *store.Store
	toaster *notify.Toaster
}

func NewCartController(s *store.Store, t *notify.Toaster) *CartController {
	return &CartController{store: s, toaster: t}
}

func (cc *CartController) respond(c *gin.Context, status int) {
	lines := cc.store.Cart()
	c.JSON(status, gin.H{
		"lines": lines,
		"count": models.CartCount(lines),
		"total": models.CartTotal(lines),
	})
}

// GetCart handles GET /cart.
func (cc *CartController) GetCart(c *gin.Context) {
	cc.respond(c, http.StatusOK)
}

// AddItem handles POST /cart/items. The product is copied from the vendor's
// current catalogue.
func (cc *CartController) AddItem(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	vendor, ok := cc.store.GetVendor(req.VendorID)
	if !ok {
		fail(c, apperrors.ErrVendorNotFound)
		return
	}
	for _, p := range vendor.Products {
		if p.ID == req.ProductID {
			cc.store.AddToCart(p, vendor.ID)
			cc.toaster.Show(p.Name + " added to cart!")
			cc.respond(c, http.StatusOK)
			return
		}
	}
	fail(c, apperrors.ErrProductNotFound)
}

// UpdateQty handles PUT /cart/items/:product_id. A qty below 1 removes the line.
func (cc *CartController) UpdateQty(c *gin.Context) {
	productID, ok := paramID(c, "product_id")
	if !ok {
		return
	}
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}
	cc.store.UpdateQty(productID, *req.Qty)
	cc.respond(c, http.StatusOK)
}

// RemoveItem handles DELETE /cart/items/:product_id.
func (cc *CartController) RemoveItem(c *gin.Context) {
	productID, ok := paramID(c, "product_id")
	if !ok {
		return
	}
	cc.store.RemoveFromCart(productID)
	cc.respond(c, http.StatusOK)
}

// Clear handles DELETE /cart.
func (cc *CartController) Clear(c *gin.Context) {
	cc.store.ClearCart()
	cc.toaster.Show("Cart cleared")
	cc.respond(c, http.StatusOK)
}
