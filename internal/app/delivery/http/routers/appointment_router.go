package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", appointmentController.Book)
	router.Post("/available-times", appointmentController.Availability)
	router.Put("/{appointmentID}/complete", appointmentController.Complete)
	router.Delete("/{appointmentID}", appointmentController.Cancel)
}
