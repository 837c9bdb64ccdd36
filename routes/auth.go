package routes

import (
	auth_handlers "evently.app/handlers/auth" // İsim çakışmasını önlemek için alias

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(api fiber.Router) {
	authHandler := auth_handlers.NewAuthHandler()

	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/send-verification-code", authHandler.SendVerificationCode)
	api.Post("/verify-code", authHandler.VerifyCode)
}
