package controllers

import (
	"net/http"

	apperrors "github.com/amancoderhub/EMS-Event-management-System/common/errors"
	"github.com/amancoderhub/EMS-Event-management-System/common/logger"
	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/amancoderhub/EMS-Event-management-System/notify"
	"github.com/amancoderhub/EMS-Event-management-System/router"
	"github.com/amancoderhub/EMS-Event-management-System/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type GuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	RSVP  string `json:"rsvp"`
	Table string `json:"table"`
}

type ItemRequestRequest struct {
	Item string `json:"item" binding:"required"`
	Desc string `json:"desc"`
}

// OrderController handles checkout, order tracking, guests and item requests.
type OrderController struct {
	store   *store.Store
	router  *router.Router
	toaster *notify.Toaster
}

func NewOrderController(s *store.Store, r *router.Router, t *notify.Toaster) *OrderController {
	return &OrderController{store: s, router: r, toaster: t}
}

// Checkout handles POST /checkout: validates the delivery details, places the
// order and moves the router to the success page.
func (oc *OrderController) Checkout(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var details models.OrderDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		invalidInput(c, err)
		return
	}
	details.UserID = sess.ID
	if details.PaymentMethod == "" {
		details.PaymentMethod = "Cash"
	}

	if msg := store.ValidateCheckout(details); msg != "" {
		fail(c, apperrors.ErrValidation.WithMessage(msg))
		return
	}

	id := oc.store.PlaceOrder(c.Request.Context(), details)
	order, _ := oc.store.Order(id)
	logger.Info(c, "Checkout completed", zap.String("order_id", id))

	oc.toaster.Show("Order placed successfully!")
	route := oc.router.Navigate(router.Route{Page: router.Success, OrderID: id})
	c.JSON(http.StatusCreated, gin.H{"order": order, "route": route})
}

// ListOrders handles GET /orders for the logged-in user.
func (oc *OrderController) ListOrders(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	orders := oc.store.OrdersForUser(sess.ID)
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateStatus handles PUT /orders/:id/status.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	if !oc.store.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status) {
		fail(c, apperrors.ErrOrderNotFound)
		return
	}
	oc.toaster.Show("Status updated!")
	order, _ := oc.store.Order(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ListGuests handles GET /guests.
func (oc *OrderController) ListGuests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"guests": oc.store.Guests()})
}

// AddGuest handles POST /guests.
func (oc *OrderController) AddGuest(c *gin.Context) {
	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.ErrValidation.Wrap(err).WithMessage("Name and email are required"))
		return
	}

	guest, ok := oc.store.AddGuest(models.Guest{Name: req.Name, Email: req.Email, RSVP: req.RSVP, Table: req.Table})
	if !ok {
		fail(c, apperrors.ErrValidation.WithMessage("Name and email are required"))
		return
	}
	oc.toaster.Show("Guest added!")
	c.JSON(http.StatusCreated, gin.H{"guest": guest})
}

// ListRequests handles GET /requests for the logged-in user or vendor.
func (oc *OrderController) ListRequests(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": oc.store.RequestsForUser(sess.ID)})
}

// AddRequest handles POST /requests.
func (oc *OrderController) AddRequest(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var req ItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.ErrValidation.Wrap(err).WithMessage("Item name is required"))
		return
	}

	saved := oc.store.AddRequest(models.ItemRequest{Item: req.Item, Desc: req.Desc, UserID: sess.ID})
	oc.toaster.Show("Request submitted!")
	c.JSON(http.StatusCreated, gin.H{"request": saved})
}
