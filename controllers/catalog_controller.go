package controllers

import (
	"net/http"

	apperrors "github.com/amancoderhub/EMS-Event-management-System/common/errors"
	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/amancoderhub/EMS-Event-management-System/notify"
	"github.com/amancoderhub/EMS-Event-management-System/store"
	"github.com/gin-gonic/gin"
)

type ProductRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required,gte=0"`
	Emoji string   `json:"emoji"`
}

func (r ProductRequest) product(id int64) models.Product {
	emoji := r.Emoji
	if emoji == "" {
		emoji = "📦"
	}
	return models.Product{ID: id, Name: r.Name, Price: *r.Price, Emoji: emoji}
}

// CatalogController serves vendor browsing and the vendor's own catalogue.
type CatalogController struct {
	store   *store.Store
	toaster *notify.Toaster
}

func NewCatalogController(s *store.Store, t *notify.Toaster) *CatalogController {
	return &CatalogController{store: s, toaster: t}
}

// ListVendors handles GET /vendors?category=.
func (cc *CatalogController) ListVendors(c *gin.Context) {
	category := c.DefaultQuery("category", store.CategoryAll)
	c.JSON(http.StatusOK, gin.H{
		"vendors":    cc.store.Vendors(category),
		"categories": cc.store.Categories(),
	})
}

// GetVendor handles GET /vendors/:id.
func (cc *CatalogController) GetVendor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	vendor, found := cc.store.GetVendor(id)
	if !found {
		fail(c, apperrors.ErrVendorNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// ListProducts handles GET /vendor/products.
func (cc *CatalogController) ListProducts(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	vendor, found := cc.store.GetVendor(sess.ID)
	if !found {
		fail(c, apperrors.ErrVendorNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": vendor.Products})
}

// AddProduct handles POST /vendor/products.
func (cc *CatalogController) AddProduct(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.ErrValidation.Wrap(err).WithMessage("All fields required"))
		return
	}

	product, added := cc.store.AddProduct(sess.ID, req.product(0))
	if !added {
		fail(c, apperrors.ErrVendorNotFound)
		return
	}
	cc.toaster.Show(product.Name + " added!")
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct handles PUT /vendor/products/:id.
func (cc *CatalogController) UpdateProduct(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.ErrValidation.Wrap(err).WithMessage("All fields required"))
		return
	}

	product := req.product(id)
	if !cc.store.UpdateProduct(sess.ID, product) {
		fail(c, apperrors.ErrProductNotFound)
		return
	}
	cc.toaster.Show("Updated!")
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct handles DELETE /vendor/products/:id.
func (cc *CatalogController) DeleteProduct(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if !cc.store.DeleteProduct(sess.ID, id) {
		fail(c, apperrors.ErrProductNotFound)
		return
	}
	cc.toaster.Show("Product deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// Transactions handles GET /vendor/transactions.
func (cc *CatalogController) Transactions(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": cc.store.VendorTransactions(sess.ID)})
}
