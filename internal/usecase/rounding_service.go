package usecase

import (
	"math"

	"github.com/labelforge/backend/internal/domain"
)

// roundingBand declares one magnitude band of a nutrient's rounding rule:
// amounts strictly below Below round to the nearest Increment. The final
// band of every rule uses Below = +Inf.
type roundingBand struct {
	Below     float64
	Increment float64
}

// nutrientRounding is the full rounding rule for one nutrient.
// Amounts below ZeroBelow declare "0". When LessThanBelow is nonzero,
// amounts in [ZeroBelow, LessThanBelow) declare "less than LessThanBelow"
// instead of a rounded number. Everything else falls through the bands.
type nutrientRounding struct {
	ZeroBelow     float64
	LessThanBelow float64
	Bands         []roundingBand
}

// nutrientRoundingTable encodes the declaration increments of
// 21 CFR 101.9(c) for all 15 panel nutrients. A regulation change is an
// edit to this table, not to the engine.
var nutrientRoundingTable = map[domain.Nutrient]nutrientRounding{
	// Calories: <5 declares 0, nearest 5 up to 50, nearest 10 above.
	domain.NutrientCalories: {
		ZeroBelow: 5,
		Bands:     []roundingBand{{Below: 50, Increment: 5}, {Below: math.Inf(1), Increment: 10}},
	},
	// Fat family: <0.5 g declares 0, nearest 0.5 g below 5 g, nearest 1 g above.
	domain.NutrientTotalFat: {
		ZeroBelow: 0.5,
		Bands:     []roundingBand{{Below: 5, Increment: 0.5}, {Below: math.Inf(1), Increment: 1}},
	},
	domain.NutrientSaturatedFat: {
		ZeroBelow: 0.5,
		Bands:     []roundingBand{{Below: 5, Increment: 0.5}, {Below: math.Inf(1), Increment: 1}},
	},
	domain.NutrientTransFat: {
		ZeroBelow: 0.5,
		Bands:     []roundingBand{{Below: 5, Increment: 0.5}, {Below: math.Inf(1), Increment: 1}},
	},
	// Cholesterol: <2 mg declares 0, 2-5 mg declares "less than 5",
	// nearest 5 mg above.
	domain.NutrientCholesterol: {
		ZeroBelow:     2,
		LessThanBelow: 5,
		Bands:         []roundingBand{{Below: math.Inf(1), Increment: 5}},
	},
	// Sodium and potassium: <5 mg declares 0, nearest 5 mg below 140 mg,
	// nearest 10 mg above.
	domain.NutrientSodium: {
		ZeroBelow: 5,
		Bands:     []roundingBand{{Below: 140, Increment: 5}, {Below: math.Inf(1), Increment: 10}},
	},
	domain.NutrientPotassium: {
		ZeroBelow: 5,
		Bands:     []roundingBand{{Below: 140, Increment: 5}, {Below: math.Inf(1), Increment: 10}},
	},
	// Carbohydrate family and protein: <0.5 g declares 0, 0.5-1 g declares
	// "less than 1", nearest 1 g above.
	domain.NutrientTotalCarbohydrates: {
		ZeroBelow:     0.5,
		LessThanBelow: 1,
		Bands:         []roundingBand{{Below: math.Inf(1), Increment: 1}},
	},
	domain.NutrientDietaryFiber: {
		ZeroBelow:     0.5,
		LessThanBelow: 1,
		Bands:         []roundingBand{{Below: math.Inf(1), Increment: 1}},
	},
	domain.NutrientTotalSugars: {
		ZeroBelow:     0.5,
		LessThanBelow: 1,
		Bands:         []roundingBand{{Below: math.Inf(1), Increment: 1}},
	},
	domain.NutrientAddedSugars: {
		ZeroBelow:     0.5,
		LessThanBelow: 1,
		Bands:         []roundingBand{{Below: math.Inf(1), Increment: 1}},
	},
	domain.NutrientProtein: {
		ZeroBelow:     0.5,
		LessThanBelow: 1,
		Bands:         []roundingBand{{Below: math.Inf(1), Increment: 1}},
	},
	// Micronutrients: vitamin D and iron declare to the nearest 0.1 unit,
	// calcium to the nearest 10 mg.
	domain.NutrientVitaminD: {
		ZeroBelow: 0.05,
		Bands:     []roundingBand{{Below: math.Inf(1), Increment: 0.1}},
	},
	domain.NutrientCalcium: {
		ZeroBelow: 5,
		Bands:     []roundingBand{{Below: math.Inf(1), Increment: 10}},
	},
	domain.NutrientIron: {
		ZeroBelow: 0.05,
		Bands:     []roundingBand{{Below: math.Inf(1), Increment: 0.1}},
	},
}

// RoundingService converts raw per-serving nutrient amounts into the
// values a Nutrition Facts Panel is permitted to declare. All methods are
// pure and safe for concurrent use.
type RoundingService struct{}

// NewRoundingService creates a rounding service.
func NewRoundingService() *RoundingService {
	return &RoundingService{}
}

// Round translates one raw nutrient amount into its declared label value.
// Negative amounts declare zero. Rounding is idempotent: feeding the
// returned Amount back through Round reproduces the same declaration.
func (s *RoundingService) Round(n domain.Nutrient, raw float64) domain.RoundedValue {
	rule, ok := nutrientRoundingTable[n]
	if !ok {
		// Unknown key: declare the raw amount unchanged.
		return domain.RoundedValue{Amount: raw, Qualifier: domain.QualifierExact}
	}

	if raw < rule.ZeroBelow {
		return domain.RoundedValue{Amount: 0, Qualifier: domain.QualifierZero}
	}
	if rule.LessThanBelow > 0 && raw < rule.LessThanBelow {
		return domain.RoundedValue{Amount: rule.LessThanBelow, Qualifier: domain.QualifierLessThan}
	}
	for _, band := range rule.Bands {
		if raw < band.Below {
			return domain.RoundedValue{
				Amount:    roundToIncrement(raw, band.Increment),
				Qualifier: domain.QualifierExact,
			}
		}
	}
	return domain.RoundedValue{Amount: raw, Qualifier: domain.QualifierExact}
}

// RoundAll rounds every measured nutrient in the input. Unmeasured
// nutrients stay nil in the output.
func (s *RoundingService) RoundAll(data *domain.NutritionData) *domain.RoundedNutritionData {
	rounded := &domain.RoundedNutritionData{}
	if data == nil {
		return rounded
	}
	for _, n := range domain.AllNutrients {
		if raw, ok := data.Get(n); ok {
			rounded.Set(n, s.Round(n, raw))
		}
	}
	return rounded
}

// roundToIncrement rounds half-up to the nearest multiple of inc, then
// snaps to 6 decimal places to shed float noise from the division.
func roundToIncrement(v, inc float64) float64 {
	r := math.Floor(v/inc+0.5) * inc
	return math.Round(r*1e6) / 1e6
}
