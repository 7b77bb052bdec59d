package routes

import (
	"olilab_backend/app"
	"olilab_backend/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	dataCtl := controllers.NewDataController(s)
	itemCtl := controllers.NewItemController(s)
	userCtl := controllers.NewUserController(s)
	lendCtl := controllers.NewLendingController(s)
	suggCtl := controllers.NewSuggestionController(s)

	api := r.Group("/api")

	// Full snapshot for app hydration
	api.GET("/data", dataCtl.GetData)

	// ------------------------------
	// Inventory
	// ------------------------------
	items := api.Group("/items")
	{
		items.POST("", itemCtl.CreateItem)
		items.POST("/import", itemCtl.ImportItems)
		items.PUT("/:id", itemCtl.EditItem)
		items.DELETE("/:id", itemCtl.DeleteItem)
	}

	// ------------------------------
	// Users
	// ------------------------------
	users := api.Group("/users")
	{
		users.POST("", userCtl.Register)
		users.PUT("/:id", userCtl.EditUser)
		users.DELETE("/:id", userCtl.DeleteUser)
		users.POST("/:id/approve", userCtl.ApproveUser)
		users.POST("/:id/deny", userCtl.DenyUser)
	}

	// ------------------------------
	// Lending
	// ------------------------------
	api.POST("/borrow", lendCtl.RequestBorrow)
	api.POST("/return", lendCtl.CompleteReturn)
	logs := api.Group("/logs")
	{
		logs.POST("/:id/approve", lendCtl.ApproveBorrow)
		logs.POST("/:id/deny", lendCtl.DenyBorrow)
		logs.POST("/:id/request-return", lendCtl.RequestReturn)
	}

	// ------------------------------
	// Suggestions & comments
	// ------------------------------
	suggestions := api.Group("/suggestions")
	{
		suggestions.POST("", suggCtl.AddSuggestion)
		suggestions.POST("/:id/approve-item", suggCtl.ApproveAsItem)
		suggestions.POST("/:id/approve-feature", suggCtl.ApproveAsFeature)
		suggestions.POST("/:id/deny", suggCtl.DenySuggestion)
	}
	api.POST("/comments", suggCtl.AddComment)
}
