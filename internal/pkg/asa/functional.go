package asa

import "fmt"

// FunctionalClass groups the activity level into five bands for reports.
type FunctionalClass int

const (
	FunctionalClassI FunctionalClass = iota + 1
	FunctionalClassII
	FunctionalClassIII
	FunctionalClassIV
	FunctionalClassV
)

var functionalClassLabels = map[FunctionalClass]string{
	FunctionalClassI:   "Class I (Excellent)",
	FunctionalClassII:  "Class II (Good)",
	FunctionalClassIII: "Class III (Moderate)",
	FunctionalClassIV:  "Class IV (Limited)",
	FunctionalClassV:   "Class V (Very limited)",
}

func (f FunctionalClass) String() string {
	if label, ok := functionalClassLabels[f]; ok {
		return label
	}
	return functionalClassLabels[FunctionalClassV]
}

func (f FunctionalClass) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FunctionalClass) UnmarshalText(text []byte) error {
	for class, label := range functionalClassLabels {
		if label == string(text) {
			*f = class
			return nil
		}
	}
	return fmt.Errorf("asa: unknown functional class %q", string(text))
}

// FunctionalClassForLevel maps an activity level onto its band.
func FunctionalClassForLevel(level int) FunctionalClass {
	switch {
	case level >= 9:
		return FunctionalClassI
	case level >= 6:
		return FunctionalClassII
	case level >= 4:
		return FunctionalClassIII
	case level >= 2:
		return FunctionalClassIV
	default:
		return FunctionalClassV
	}
}

func ClassifyFunctional(activities []ActivityTag) FunctionalClass {
	return FunctionalClassForLevel(ActivityLevel(activities))
}
