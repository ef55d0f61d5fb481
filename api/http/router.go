package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/avikamggh/ai-interviewer/api/http/handlers"
	wsapi "github.com/avikamggh/ai-interviewer/api/ws"
)

// Register wires all routes onto the given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, interview *handlers.InterviewHandler, socket *wsapi.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Resume upload and interview preparation
	ig := v1.Group("/interview")
	ig.Post("/upload", interview.Upload)

	// Interview event channel
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/interview", websocket.New(socket.Serve))
}
