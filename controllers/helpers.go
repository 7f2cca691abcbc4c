package controllers

import (
	"strconv"

	apperrors "github.com/amancoderhub/EMS-Event-management-System/common/errors"
	"github.com/amancoderhub/EMS-Event-management-System/middleware"
	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/gin-gonic/gin"
)

// fail attaches err for ErrorMiddleware to render.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func invalidInput(c *gin.Context, err error) {
	fail(c, apperrors.ErrBadRequest.Wrap(err).WithMessage("Invalid request"))
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		fail(c, apperrors.ErrBadRequest.Wrap(err).WithMessage("Invalid "+name))
		return 0, false
	}
	return id, true
}

// session returns the session admitted by RequireRole.
func session(c *gin.Context) (*models.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		fail(c, apperrors.ErrUnauthorized)
	}
	return sess, ok
}
