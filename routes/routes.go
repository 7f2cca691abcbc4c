package routes

import (
	"net/http"

	"github.com/amancoderhub/EMS-Event-management-System/controllers"
	"github.com/amancoderhub/EMS-Event-management-System/middleware"
	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the routes dispatch to.
type Controllers struct {
	Session *controllers.SessionController
	Catalog *controllers.CatalogController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Admin   *controllers.AdminController
	Page    *controllers.PageController
}

// Register wires every endpoint onto r. Login and signup share loginLimiter.
func Register(r *gin.Engine, ctl Controllers, sessions middleware.SessionReader, loginLimiter *middleware.RateLimiter) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "ems"})
	})

	limited := middleware.RateLimit(loginLimiter)
	r.GET("/session", ctl.Session.GetSession)
	r.POST("/session/login", limited, ctl.Session.Login)
	r.POST("/session/logout", ctl.Session.Logout)
	r.POST("/signup/user", limited, ctl.Session.SignupUser)
	r.POST("/signup/vendor", limited, ctl.Session.SignupVendor)

	r.GET("/vendors", ctl.Catalog.ListVendors)
	r.GET("/vendors/:id", ctl.Catalog.GetVendor)

	r.GET("/page", ctl.Page.GetPage)
	r.POST("/navigate", ctl.Page.Navigate)
	r.POST("/navigate/home", ctl.Page.GoHome)
	r.GET("/theme", ctl.Page.GetTheme)
	r.POST("/theme/toggle", ctl.Page.ToggleTheme)
	r.GET("/toast", ctl.Page.GetToast)

	user := r.Group("")
	user.Use(middleware.RequireRole(sessions, models.RoleUser))
	user.GET("/cart", ctl.Cart.GetCart)
	user.DELETE("/cart", ctl.Cart.Clear)
	user.POST("/cart/items", ctl.Cart.AddItem)
	user.PUT("/cart/items/:product_id", ctl.Cart.UpdateQty)
	user.DELETE("/cart/items/:product_id", ctl.Cart.RemoveItem)
	user.POST("/checkout", ctl.Order.Checkout)
	user.GET("/orders", ctl.Order.ListOrders)
	user.GET("/guests", ctl.Order.ListGuests)
	user.POST("/guests", ctl.Order.AddGuest)

	requests := r.Group("/requests")
	requests.Use(middleware.RequireRole(sessions, models.RoleUser, models.RoleVendor))
	requests.GET("", ctl.Order.ListRequests)
	requests.POST("", ctl.Order.AddRequest)

	vendor := r.Group("/vendor")
	vendor.Use(middleware.RequireRole(sessions, models.RoleVendor))
	vendor.GET("/products", ctl.Catalog.ListProducts)
	vendor.POST("/products", ctl.Catalog.AddProduct)
	vendor.PUT("/products/:id", ctl.Catalog.UpdateProduct)
	vendor.DELETE("/products/:id", ctl.Catalog.DeleteProduct)
	vendor.GET("/transactions", ctl.Catalog.Transactions)

	r.PUT("/orders/:id/status", middleware.RequireRole(sessions, models.RoleVendor, models.RoleAdmin), ctl.Order.UpdateStatus)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(sessions, models.RoleAdmin))
	admin.GET("/users", ctl.Admin.ListUsers)
	admin.POST("/users", ctl.Admin.CreateUser)
	admin.DELETE("/users/:id", ctl.Admin.DeleteUser)
	admin.GET("/vendors", ctl.Admin.ListVendors)
	admin.DELETE("/vendors/:id", ctl.Admin.DeleteVendor)
	admin.GET("/memberships", ctl.Admin.ListMemberships)
	admin.POST("/memberships", ctl.Admin.AddMembership)
	admin.PUT("/memberships/:no", ctl.Admin.UpdateMembership)
	admin.GET("/orders", ctl.Admin.ListOrders)
}
