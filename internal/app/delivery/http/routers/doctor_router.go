package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", doctorController.Search)
	router.Get("/{doctorID}", doctorController.FindByID)
}
