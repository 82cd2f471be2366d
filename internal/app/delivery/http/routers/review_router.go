package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReviewRoutes(router chi.Router, middlewares *middlewares.Middlewares, reviewController *controllers.ReviewController) {
	router.Use(middlewares.Authenticate)
	router.Get("/reviewable", reviewController.ListReviewable)
	router.Post("/", reviewController.Submit)
}
