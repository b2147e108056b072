package usecase

import (
	"math"

	"github.com/labelforge/backend/internal/domain"
)

// dailyValueTable holds the FDA reference daily intake amounts for adults
// and children 4 or more years of age (21 CFR 101.9(c)(8) and (c)(9),
// 2016 revision). Amounts are in each nutrient's declaration unit.
// Trans fat, total sugars, and protein carry no reference value; %DV is
// not declared for them.
var dailyValueTable = map[domain.Nutrient]float64{
	domain.NutrientCalories:           2000,
	domain.NutrientTotalFat:           78,
	domain.NutrientSaturatedFat:       20,
	domain.NutrientCholesterol:        300,
	domain.NutrientSodium:             2300,
	domain.NutrientTotalCarbohydrates: 275,
	domain.NutrientDietaryFiber:       28,
	domain.NutrientAddedSugars:        50,
	domain.NutrientVitaminD:           20,
	domain.NutrientCalcium:            1300,
	domain.NutrientIron:               18,
	domain.NutrientPotassium:          4700,
}

// DailyValue returns the reference daily intake for a nutrient and
// whether one is defined. Absence is a valid state, not an error.
func DailyValue(n domain.Nutrient) (float64, bool) {
	dv, ok := dailyValueTable[n]
	return dv, ok
}

// PercentDV computes the percent Daily Value for a per-serving amount,
// rounded half-up to the nearest whole percent. It returns 0 when the
// amount is zero or negative or when the nutrient has no reference value.
func PercentDV(n domain.Nutrient, amount float64) int {
	if amount <= 0 {
		return 0
	}
	dv, ok := dailyValueTable[n]
	if !ok || dv <= 0 {
		return 0
	}
	return int(math.Floor(amount/dv*100 + 0.5))
}
