package main

import (
	"log"

	"internlink/config"
	"internlink/database"
	"internlink/route"
)

func main() {
	config.LoadEnv()
	cfg := config.New()

	db := database.Connect(cfg.MongoURI, cfg.MongoDB)

	app := config.NewFiberApp()
	route.SetupRoutes(app, db, cfg)

	log.Printf("Server is running on port: %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
