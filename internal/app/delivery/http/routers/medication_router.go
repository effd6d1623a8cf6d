package routers

import (
	"preop-service/internal/app/delivery/http/controllers"
	"preop-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMedicationRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicationController *controllers.MedicationController) {
	router.Get("/", medicationController.Search)
}
