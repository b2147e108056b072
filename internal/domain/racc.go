package domain

// RACCUnit is the unit a category's reference amount is expressed in.
type RACCUnit string

const (
	RACCGrams       RACCUnit = "g"
	RACCMilliliters RACCUnit = "mL"
)

// RACCCategory is one Reference Amount Customarily Consumed entry from
// 21 CFR 101.12 Table 2. Reference data only; never mutated at runtime.
type RACCCategory struct {
	ID               string        `json:"id"`
	Description      string        `json:"description"`
	ReferenceAmount  float64       `json:"referenceAmount"`
	Unit             RACCUnit      `json:"unit"`
	HouseholdMeasure string        `json:"householdMeasure"`
	EligibleFormats  []LabelFormat `json:"eligibleFormats,omitempty"`
	Citation         string        `json:"citation"`
}
