package routers

import (
	"preop-service/internal/app/delivery/http/controllers"
	"preop-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Submission is open to patients; everything else is for physicians.
func attachQuestionnaireRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionnaireController *controllers.QuestionnaireController) {
	router.Post("/", questionnaireController.Submit)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequirePhysicianAPIKey)
		r.Get("/", questionnaireController.FindAll)
		r.Get("/{questionnaire_id}", questionnaireController.FindByID)
		r.Get("/{questionnaire_id}/summary", questionnaireController.FindSummaryByID)
		r.Patch("/{questionnaire_id}/review", questionnaireController.MarkReviewed)
		r.Put("/{questionnaire_id}/treatment", questionnaireController.UpdateTreatment)
	})
}
