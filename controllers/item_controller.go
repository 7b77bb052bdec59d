// controllers/item_controller.go
package controllers

import (
	"net/http"

	"olilab_backend/app"
	"olilab_backend/core"

	"github.com/gin-gonic/gin"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

func (ic *ItemController) CreateItem(c *gin.Context) {
	var in core.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	item, err := ic.Core.AddItem(c.Request.Context(), in)
	if err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ic *ItemController) ImportItems(c *gin.Context) {
	var in []core.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	items, err := ic.Core.ImportItems(c.Request.Context(), in)
	if err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, items)
}

func (ic *ItemController) EditItem(c *gin.Context) {
	var in core.EditItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	item, err := ic.Core.EditItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if err := ic.Core.DeleteItem(c.Request.Context(), id); err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"id": id})
}
