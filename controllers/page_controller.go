package controllers

import (
	"net/http"

	"github.com/amancoderhub/EMS-Event-management-System/notify"
	"github.com/amancoderhub/EMS-Event-management-System/router"
	"github.com/amancoderhub/EMS-Event-management-System/store"
	"github.com/amancoderhub/EMS-Event-management-System/views"
	"github.com/gin-gonic/gin"
)

// PageController exposes the router, the current view, the theme and the
// notification area.
type PageController struct {
	store   *store.Store
	router  *router.Router
	toaster *notify.Toaster
}

func NewPageController(s *store.Store, r *router.Router, t *notify.Toaster) *PageController {
	return &PageController{store: s, router: r, toaster: t}
}

func (pc *PageController) render(c *gin.Context, route router.Route) {
	view, err := views.Build(route, pc.store.Snapshot())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetPage handles GET /page.
func (pc *PageController) GetPage(c *gin.Context) {
	pc.render(c, pc.router.Current())
}

// Navigate handles POST /navigate. The guard may land on a login page
// instead of the requested one.
func (pc *PageController) Navigate(c *gin.Context) {
	var route router.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		invalidInput(c, err)
		return
	}
	pc.render(c, pc.router.Navigate(route))
}

// GoHome handles POST /navigate/home.
func (pc *PageController) GoHome(c *gin.Context) {
	pc.render(c, pc.router.Home())
}

// GetTheme handles GET /theme.
func (pc *PageController) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": pc.store.Theme()})
}

// ToggleTheme handles POST /theme/toggle.
func (pc *PageController) ToggleTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": pc.store.ToggleTheme(c.Request.Context())})
}

// GetToast handles GET /toast.
func (pc *PageController) GetToast(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toast": pc.toaster.Current()})
}
