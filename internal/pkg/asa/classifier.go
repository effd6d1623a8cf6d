// Package asa derives the physical metrics of a preoperative intake and
// assigns an ASA physical status category from them.
//
// Every function is pure and total: missing or malformed answers degrade to
// the sentinels bmi = 0 and level = 0 instead of failing, so classification
// always completes. Callers must read those sentinels and Undetermined as
// "insufficient data", never as clinical findings.
package asa

// IntakeRecord holds the answers the classifier reads. Weight and height are
// kept as the raw strings the patient typed.
type IntakeRecord struct {
	WeightKg                 string
	HeightCm                 string
	TakesMedicationRegularly bool
	PhysicalActivities       []ActivityTag
}

// Classification bundles the derived metrics with the resulting category.
type Classification struct {
	BMI             float64  `json:"bmi"`
	FunctionalLevel int      `json:"functional_level"`
	Category        Category `json:"category"`
}

// Classify evaluates the rules in a fixed order; the first match wins.
func Classify(record *IntakeRecord) Category {
	return Assess(record).Category
}

// Assess computes BMI, functional level and category in one pass.
func Assess(record *IntakeRecord) Classification {
	if record == nil {
		return Classification{Category: Undetermined}
	}
	bmi := ComputeBMI(record.WeightKg, record.HeightCm)
	level := ActivityLevel(record.PhysicalActivities)
	return Classification{
		BMI:             bmi,
		FunctionalLevel: level,
		Category:        classify(record.TakesMedicationRegularly, level, bmi),
	}
}

// A medicated patient at exactly level 5 fails the ASA II exclusion and lands
// in ASA III. Keep it that way.
func classify(takesMedication bool, level int, bmi float64) Category {
	switch {
	case !takesMedication && level >= 7 && bmi < 30:
		return ASAI
	case level >= 5 && !(takesMedication && level <= 5):
		return ASAII
	case takesMedication && level <= 5:
		return ASAIII
	default:
		return ASAIV
	}
}
