package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Assistant Routes ---
	assistant := api.Group("/assistant", middleware.JWTMiddleware, middleware.MerchantRequired)
	assistant.Post("/chat", handlers.HandleAssistantChat)
	assistant.Get("/history", handlers.HandleAssistantHistory)
}
