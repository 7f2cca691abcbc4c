package router

import (
	"sync"

	"github.com/amancoderhub/EMS-Event-management-System/models"
	"go.uber.org/zap"
)

// SessionReader exposes the active session. *store.Store satisfies it.
type SessionReader interface {
	Session() *models.Session
}

// Route is a page plus the parameters it is opened with.
type Route struct {
	Page     Page   `json:"page"`
	VendorID int64  `json:"vendor_id,omitempty"`
	OrderID  string `json:"order_id,omitempty"`
}

// Router tracks the current route and enforces the role guard.
type Router struct {
	mu       sync.RWMutex
	current  Route
	sessions SessionReader
	logger   *zap.Logger
}

// New returns a Router positioned on the home page.
func New(sessions SessionReader, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		current:  Route{Page: Home},
		sessions: sessions,
		logger:   logger,
	}
}

// Navigate moves to route when the session may open it. Otherwise the router
// lands on the login page for the required role and the requested route is
// dropped. The route actually reached is returned.
func (r *Router) Navigate(route Route) Route {
	if !route.Page.Valid() {
		route = Route{Page: Home}
	}
	next := r.guard(route)

	r.mu.Lock()
	r.current = next
	r.mu.Unlock()

	if next.Page != route.Page {
		r.logger.Debug("Navigation redirected",
			zap.Stringer("requested", route.Page),
			zap.Stringer("page", next.Page),
		)
	}
	return next
}

// Home navigates to the landing page of the current session.
func (r *Router) Home() Route {
	var role models.Role
	if sess := r.sessions.Session(); sess != nil {
		role = sess.Role
	}
	return r.Navigate(Route{Page: LandingPage(role)})
}

// Current returns the route the router is on.
func (r *Router) Current() Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Allowed reports whether sess may open p.
func Allowed(p Page, sess *models.Session) bool {
	roles := RequiredRoles(p)
	if roles == nil {
		return true
	}
	if sess == nil {
		return false
	}
	for _, role := range roles {
		if sess.Role == role {
			return true
		}
	}
	return false
}

func (r *Router) guard(route Route) Route {
	sess := r.sessions.Session()
	if Allowed(route.Page, sess) {
		return route
	}
	roles := RequiredRoles(route.Page)
	if len(roles) > 1 {
		// Shared pages send strangers to the vendor login.
		return Route{Page: VendorLogin}
	}
	return Route{Page: LoginPage(roles[0])}
}
