// controllers/data_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DataController struct{ *Srv }

func NewDataController(s *Srv) *DataController { return &DataController{Srv: s} }

// GetData returns the whole document in one response; the frontend hydrates
// from it on load.
func (dc *DataController) GetData(c *gin.Context) {
	state, err := dc.Core.Snapshot(c.Request.Context())
	if err != nil {
		dc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
