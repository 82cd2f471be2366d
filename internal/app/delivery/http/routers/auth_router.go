package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/register/doctor", authController.RegisterDoctor)
	router.Post("/register/patient", authController.RegisterPatient)
	router.Post("/login/{role}", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
