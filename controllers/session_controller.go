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

type LoginRequest struct {
	Role     models.Role `json:"role" binding:"required,oneof=user vendor admin"`
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Category string `json:"category"`
}

// SessionController handles login, logout and signup.
type SessionController struct {
	store   *store.Store
	router  *router.Router
	toaster *notify.Toaster
}

func NewSessionController(s *store.Store, r *router.Router, t *notify.Toaster) *SessionController {
	return &SessionController{store: s, router: r, toaster: t}
}

// GetSession handles GET /session.
func (sc *SessionController) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": sc.store.Session()})
}

// Login handles POST /session/login.
func (sc *SessionController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	if !sc.store.Login(req.Role, req.Email, req.Password) {
		logger.Warn(c, "Login failed", zap.String("role", string(req.Role)))
		fail(c, apperrors.ErrInvalidCredentials)
		return
	}

	if req.Role == models.RoleAdmin {
		sc.toaster.Show("Welcome Admin!")
	} else {
		sc.toaster.Show("Welcome back!")
	}
	c.JSON(http.StatusOK, gin.H{"session": sc.store.Session(), "route": sc.router.Home()})
}

// Logout handles POST /session/logout.
func (sc *SessionController) Logout(c *gin.Context) {
	sc.store.Logout()
	route := sc.router.Navigate(router.Route{Page: router.Home})
	c.JSON(http.StatusOK, gin.H{"session": nil, "route": route})
}

// SignupUser handles POST /signup/user.
func (sc *SessionController) SignupUser(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.ErrValidation.Wrap(err).WithMessage("All fields are required"))
		return
	}

	if !sc.store.SignupUser(req.Name, req.Email, req.Password) {
		fail(c, apperrors.ErrEmailTaken)
		return
	}
	sc.toaster.Show("Account created!")
	c.JSON(http.StatusCreated, gin.H{"session": sc.store.Session(), "route": sc.router.Home()})
}

// SignupVendor handles POST /signup/vendor. Category defaults to Catering.
func (sc *SessionController) SignupVendor(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.ErrValidation.Wrap(err).WithMessage("All fields are required"))
		return
	}
	if req.Category == "" {
		req.Category = "Catering"
	}

	if !sc.store.SignupVendor(req.Name, req.Email, req.Password, req.Category) {
		fail(c, apperrors.ErrEmailTaken)
		return
	}
	sc.toaster.Show("Account created!")
	c.JSON(http.StatusCreated, gin.H{"session": sc.store.Session(), "route": sc.router.Home()})
}
