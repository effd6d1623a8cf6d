package asa

import "fmt"

// Category is an ASA physical status class. The zero value is Undetermined.
type Category int

const (
	Undetermined Category = iota
	ASAI
	ASAII
	ASAIII
	ASAIV
)

const (
	DescriptionASAI         = "healthy patient"
	DescriptionASAII        = "patient with mild systemic disease"
	DescriptionASAIII       = "patient with severe systemic disease"
	DescriptionASAIV        = "patient with severe systemic disease that is a constant threat to life"
	DescriptionUndetermined = "undetermined"
)

var categoryNames = map[Category]string{
	Undetermined: "UNDETERMINED",
	ASAI:         "ASA I",
	ASAII:        "ASA II",
	ASAIII:       "ASA III",
	ASAIV:        "ASA IV",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[Undetermined]
}

// Determined reports whether enough data existed to classify.
func (c Category) Determined() bool {
	return c >= ASAI && c <= ASAIV
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	category, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("asa: unknown category %q", string(text))
	}
	*c = category
	return nil
}

func ParseCategory(s string) (Category, bool) {
	for category, name := range categoryNames {
		if name == s {
			return category, true
		}
	}
	return Undetermined, false
}

// Describe returns the clinical wording for a category.
func Describe(c Category) string {
	switch c {
	case ASAI:
		return DescriptionASAI
	case ASAII:
		return DescriptionASAII
	case ASAIII:
		return DescriptionASAIII
	case ASAIV:
		return DescriptionASAIV
	default:
		return DescriptionUndetermined
	}
}
