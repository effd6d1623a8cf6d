package routers

import (
	"fmt"
	"preop-service/internal/app/config"
	"preop-service/internal/app/delivery/http/controllers"
	"preop-service/internal/app/delivery/http/middlewares"
	"preop-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	questionnaireController *controllers.QuestionnaireController,
	classificationController *controllers.ClassificationController,
	medicationController *controllers.MedicationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXAPIKey, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route(fmt.Sprintf("/%s", constvars.ResourceQuestionnaires), func(r chi.Router) {
				attachQuestionnaireRoutes(r, middlewares, questionnaireController)
			})

			attachClassificationRoutes(r, middlewares, classificationController)

			r.Route(fmt.Sprintf("/%s", constvars.ResourceMedications), func(r chi.Router) {
				attachMedicationRoutes(r, middlewares, medicationController)
			})
		})
	})
}
