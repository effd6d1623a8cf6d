package responses

import "preop-service/internal/pkg/asa"

type RiskClassification struct {
	BMI                    float64             `json:"bmi"`
	BMIAvailable           bool                `json:"bmi_available"`
	FunctionalLevel        int                 `json:"functional_level"`
	FunctionalClass        asa.FunctionalClass `json:"functional_class"`
	Category               asa.Category        `json:"category"`
	Description            string              `json:"description"`
	UnrecognizedActivities []string            `json:"unrecognized_activities,omitempty"`
}

type Medication struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
