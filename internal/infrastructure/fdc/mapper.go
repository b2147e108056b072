package fdc

import "github.com/labelforge/backend/internal/domain"

// FoodData Central nutrient IDs for the 15 Nutrition Facts Panel nutrients.
const (
	NutrientIDEnergy       = 1008 // Energy (kcal)
	NutrientIDTotalFat     = 1004 // Total lipid (fat), g
	NutrientIDSaturatedFat = 1258 // Fatty acids, total saturated, g
	NutrientIDTransFat     = 1257 // Fatty acids, total trans, g
	NutrientIDCholesterol  = 1253 // Cholesterol, mg
	NutrientIDSodium       = 1093 // Sodium, Na, mg
	NutrientIDCarbohydrate = 1005 // Carbohydrate, by difference, g
	NutrientIDDietaryFiber = 1079 // Fiber, total dietary, g
	NutrientIDTotalSugars  = 2000 // Total sugars, g
	NutrientIDAddedSugars  = 1235 // Sugars, added, g
	NutrientIDProtein      = 1003 // Protein, g
	NutrientIDVitaminD     = 1114 // Vitamin D (D2 + D3), mcg
	NutrientIDCalcium      = 1087 // Calcium, Ca, mg
	NutrientIDIron         = 1089 // Iron, Fe, mg
	NutrientIDPotassium    = 1092 // Potassium, K, mg
)

// nutrientIDMap maps FDC nutrient IDs to label nutrient keys.
var nutrientIDMap = map[int]domain.Nutrient{
	NutrientIDEnergy:       domain.NutrientCalories,
	NutrientIDTotalFat:     domain.NutrientTotalFat,
	NutrientIDSaturatedFat: domain.NutrientSaturatedFat,
	NutrientIDTransFat:     domain.NutrientTransFat,
	NutrientIDCholesterol:  domain.NutrientCholesterol,
	NutrientIDSodium:       domain.NutrientSodium,
	NutrientIDCarbohydrate: domain.NutrientTotalCarbohydrates,
	NutrientIDDietaryFiber: domain.NutrientDietaryFiber,
	NutrientIDTotalSugars:  domain.NutrientTotalSugars,
	NutrientIDAddedSugars:  domain.NutrientAddedSugars,
	NutrientIDProtein:      domain.NutrientProtein,
	NutrientIDVitaminD:     domain.NutrientVitaminD,
	NutrientIDCalcium:      domain.NutrientCalcium,
	NutrientIDIron:         domain.NutrientIron,
	NutrientIDPotassium:    domain.NutrientPotassium,
}

// MapToNutritionData converts an FDC food record into raw label nutrient
// amounts. FDC amounts are per 100 g of the food; the caller is
// responsible for scaling to the declared serving before validation.
// Nutrients absent from the record stay nil ("not measured").
func MapToNutritionData(food *domain.FDCFood) *domain.NutritionData {
	data := &domain.NutritionData{}
	if food == nil {
		return data
	}
	for _, row := range food.Nutrients {
		if key, ok := nutrientIDMap[row.Nutrient.ID]; ok {
			data.Set(key, row.Amount)
		}
	}
	return data
}

// FindNutrientAmount finds a nutrient amount by FDC nutrient ID.
func FindNutrientAmount(nutrients []domain.FDCNutrient, nutrientID int) (float64, bool) {
	for _, row := range nutrients {
		if row.Nutrient.ID == nutrientID {
			return row.Amount, true
		}
	}
	return 0, false
}
