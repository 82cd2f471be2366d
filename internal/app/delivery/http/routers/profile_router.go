package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", profileController.Get)
	router.Put("/doctor", profileController.UpdateDoctor)
	router.Put("/patient", profileController.UpdatePatient)
	router.Delete("/", profileController.Delete)
	router.Post("/picture", profileController.UploadPicture)
}
