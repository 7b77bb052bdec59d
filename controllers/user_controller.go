// controllers/user_controller.go
package controllers

import (
	"net/http"

	"olilab_backend/app"
	"olilab_backend/core"

	"github.com/gin-gonic/gin"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

func (uc *UserController) Register(c *gin.Context) {
	var in core.RegisterUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	user, notif, err := uc.Core.RegisterUser(c.Request.Context(), in)
	if err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"newUser": user, "newNotification": notif})
}

func (uc *UserController) EditUser(c *gin.Context) {
	var in core.EditUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	user, err := uc.Core.EditUser(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := uc.Core.DeleteUser(c.Request.Context(), id); err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"id": id})
}

func (uc *UserController) ApproveUser(c *gin.Context) {
	user, err := uc.Core.ApproveUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) DenyUser(c *gin.Context) {
	user, err := uc.Core.DenyUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
