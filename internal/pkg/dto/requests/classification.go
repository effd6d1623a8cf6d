package requests

// ClassifyRisk accepts unknown activity tags; they simply count as level 0.
type ClassifyRisk struct {
	WeightKg                 string   `json:"weight_kg" validate:"max=20"`
	HeightCm                 string   `json:"height_cm" validate:"max=20"`
	TakesMedicationRegularly bool     `json:"takes_medication_regularly"`
	PhysicalActivities       []string `json:"physical_activities" validate:"max=50,dive,max=50"`
}
