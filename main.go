package main

import (
	"log"

	"olilab_backend/app"
	"olilab_backend/config"
	"olilab_backend/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	addr := ":" + application.Config.Port
	log.Printf("listening on %s", addr)
	_ = r.Run(addr)
}
