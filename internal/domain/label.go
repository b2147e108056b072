package domain

import "strconv"

// LabelFormat identifies the panel layout declared for a label.
type LabelFormat string

const (
	FormatStandardVertical LabelFormat = "standard_vertical"
	FormatTabular          LabelFormat = "tabular"
	FormatLinear           LabelFormat = "linear"
	FormatSimplified       LabelFormat = "simplified"
)

// ValidFormat reports whether f is one of the recognized panel layouts.
func ValidFormat(f LabelFormat) bool {
	switch f {
	case FormatStandardVertical, FormatTabular, FormatLinear, FormatSimplified:
		return true
	}
	return false
}

// LabelData is the full input to label validation: raw nutrient amounts
// plus the declaration metadata a finished label carries. Optional fields
// are pointers or zero values; the core treats absence as "not declared",
// never as an error.
type LabelData struct {
	NutritionData          *NutritionData `json:"nutritionData" binding:"required"`
	ServingSizeG           float64        `json:"servingSizeG"`
	ServingSizeHousehold   string         `json:"servingSizeHousehold,omitempty"`
	ServingsPerContainer   *float64       `json:"servingsPerContainer,omitempty"`
	Format                 LabelFormat    `json:"format"`
	PackageSurfaceAreaSqIn *float64       `json:"packageSurfaceAreaSqIn,omitempty"`
	ClaimStatements        []string       `json:"claimStatements,omitempty"`
	RACCCategoryID         string         `json:"raccCategoryId,omitempty"`
	TotalProductWeightG    *float64       `json:"totalProductWeightG,omitempty"`
}

// FormatAmount renders a numeric amount without trailing zeros
// (4.50 prints as "4.5", 5.0 as "5").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
