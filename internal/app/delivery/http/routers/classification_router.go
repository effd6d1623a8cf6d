package routers

import (
	"fmt"
	"preop-service/internal/app/delivery/http/controllers"
	"preop-service/internal/app/delivery/http/middlewares"
	"preop-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachClassificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, classificationController *controllers.ClassificationController) {
	router.Post(fmt.Sprintf("/%s", constvars.ResourceRiskClassifications), classificationController.Classify)
	router.Get(fmt.Sprintf("/%s", constvars.ResourceActivities), classificationController.FindActivities)
}
