// controllers/suggestion_controller.go
package controllers

import (
	"net/http"

	"olilab_backend/app"
	"olilab_backend/core"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct{ *Srv }

func NewSuggestionController(s *Srv) *SuggestionController { return &SuggestionController{Srv: s} }

func (sc *SuggestionController) AddSuggestion(c *gin.Context) {
	var in core.SuggestionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	sg, err := sc.Core.AddSuggestion(c.Request.Context(), in)
	if err != nil {
		sc.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sg)
}

func (sc *SuggestionController) ApproveAsItem(c *gin.Context) {
	var in struct {
		Category      string `json:"category" binding:"required"`
		TotalQuantity int    `json:"totalQuantity" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	sg, item, err := sc.Core.ApproveAsItem(c.Request.Context(), c.Param("id"), in.Category, in.TotalQuantity)
	if err != nil {
		sc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"updatedSuggestion": sg, "newItem": item})
}

func (sc *SuggestionController) ApproveAsFeature(c *gin.Context) {
	sg, err := sc.Core.ApproveAsFeature(c.Request.Context(), c.Param("id"))
	if err != nil {
		sc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sg)
}

func (sc *SuggestionController) DenySuggestion(c *gin.Context) {
	var in struct {
		AdminID string `json:"adminId" binding:"required"`
		Reason  string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	sg, comment, err := sc.Core.DenySuggestion(c.Request.Context(), c.Param("id"), in.AdminID, in.Reason)
	if err != nil {
		sc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"updatedSuggestion": sg, "newComment": comment})
}

func (sc *SuggestionController) AddComment(c *gin.Context) {
	var in core.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	comment, err := sc.Core.AddComment(c.Request.Context(), in)
	if err != nil {
		sc.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
