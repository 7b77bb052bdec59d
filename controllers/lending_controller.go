// controllers/lending_controller.go
package controllers

import (
	"net/http"

	"olilab_backend/app"
	"olilab_backend/core"

	"github.com/gin-gonic/gin"
)

type LendingController struct{ *Srv }

func NewLendingController(s *Srv) *LendingController { return &LendingController{Srv: s} }

func (lc *LendingController) RequestBorrow(c *gin.Context) {
	var in core.BorrowInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	logEntry, notif, err := lc.Core.RequestBorrow(c.Request.Context(), in)
	if err != nil {
		lc.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"newLog": logEntry, "newNotification": notif})
}

func (lc *LendingController) ApproveBorrow(c *gin.Context) {
	logEntry, item, err := lc.Core.ApproveBorrow(c.Request.Context(), c.Param("id"))
	if err != nil {
		lc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"updatedLog": logEntry, "updatedItem": item})
}

func (lc *LendingController) DenyBorrow(c *gin.Context) {
	var in struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	logEntry, err := lc.Core.DenyBorrow(c.Request.Context(), c.Param("id"), in.Reason)
	if err != nil {
		lc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, logEntry)
}

func (lc *LendingController) RequestReturn(c *gin.Context) {
	logEntry, notif, err := lc.Core.RequestReturn(c.Request.Context(), c.Param("id"))
	if err != nil {
		lc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"updatedLog": logEntry, "newNotification": notif})
}

func (lc *LendingController) CompleteReturn(c *gin.Context) {
	var in struct {
		BorrowLogID string `json:"borrowLogId" binding:"required"`
		AdminNotes  string `json:"adminNotes"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	res, err := lc.Core.CompleteReturn(c.Request.Context(), in.BorrowLogID, in.AdminNotes)
	if err != nil {
		lc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
