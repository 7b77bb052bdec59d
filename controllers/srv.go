// controllers/srv.go
package controllers

import (
	"errors"
	"net/http"

	"olilab_backend/app"
	"olilab_backend/core"

	"github.com/gin-gonic/gin"
)

// Srv bundles what every controller needs.
type Srv struct {
	Core *core.Service
}

func GetSrv(a *app.App) *Srv {
	return &Srv{Core: a.Core}
}

// fail maps domain errors onto the response table: not-found is 404,
// validation and conflict are 400, anything else is a 500.
func (s *Srv) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrConflict):
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}
