package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"shotflow/editor-service/config"
	"shotflow/editor-service/handlers"
	"shotflow/editor-service/middleware"
)

func main() {
	config.InitLogger()

	app := fiber.New()

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Allow all origins for development
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Sequence editor service is healthy",
		})
	})

	// API v1 routes
	apiV1 := app.Group("/api/v1")

	// Edit operation previews: caller posts the shot list, gets the delta.
	sequence := apiV1.Group("/sequence")
	sequence.Post("/move", handlers.MoveShot)
	sequence.Post("/trim", handlers.TrimShot)
	sequence.Post("/split", handlers.SplitShot)
	sequence.Post("/ripple", handlers.RippleEditShot)
	sequence.Post("/roll", handlers.RollEditShots)
	sequence.Post("/slip", handlers.SlipEditShot)
	sequence.Post("/slide", handlers.SlideEditShot)

	// Timeline lookups
	sequence.Post("/shot-at-frame", handlers.ShotAtFrame)
	sequence.Post("/edge", handlers.DetectShotEdge)

	// Layer composition
	layers := sequence.Group("/layers")
	layers.Post("/transition", handlers.AddTransitionLayer)
	layers.Post("/text", handlers.AddTextLayer)
	layers.Post("/keyframe", handlers.AddKeyframeLayer)
	layers.Post("/remove", handlers.RemoveShotLayer)
	layers.Post("/reorder", handlers.ReorderShotLayer)

	// Selection arithmetic
	apiV1.Post("/selection/tool", handlers.SelectTool)

	addr := config.ListenAddr()
	config.Log.Infof("Starting sequence editor service on %s...", addr)
	log.Fatal(app.Listen(addr))
}
