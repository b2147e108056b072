package usecase

import "github.com/labelforge/backend/internal/domain"

// RuleCatalog is the full set of compliance rules the orchestrator
// evaluates. The default catalog is process-wide immutable data.
type RuleCatalog struct {
	Format      domain.FormatRule
	ServingSize domain.ServingSizeRule
	Mandatory   domain.MandatoryNutrientsRule
	Claims      []domain.ClaimRule
}

// defaultCatalog is built once at init and never mutated.
var defaultCatalog = RuleCatalog{
	Format: domain.FormatRule{
		ID:   "format-package-area",
		Name: "Label format for package size",
		CFR:  "21 CFR 101.9(d)(11), 101.9(j)(13)",
		// Checked top-down; the first band the package area reaches wins.
		AreaBand: []domain.FormatAreaBand{
			{MinArea: 40, Format: domain.FormatStandardVertical},
			{MinArea: 20, Format: domain.FormatTabular},
			{MinArea: 12, Format: domain.FormatLinear},
			{MinArea: 0, Format: domain.FormatSimplified},
		},
	},
	ServingSize: domain.ServingSizeRule{
		ID:   "serving-size-increments",
		Name: "Serving size declaration increments",
		CFR:  "21 CFR 101.9(b)(5)",
	},
	Mandatory: domain.MandatoryNutrientsRule{
		ID:        "mandatory-nutrients-standard",
		Name:      "Mandatory nutrient declarations",
		CFR:       "21 CFR 101.9(c)",
		Nutrients: domain.AllNutrients,
	},
	Claims: []domain.ClaimRule{
		// "Free" claims: absolute de minimis maximums per serving.
		{
			ID: "claim-calorie-free", Name: "Calorie free", CFR: "21 CFR 101.60(b)(1)",
			Family: domain.ClaimFree, Nutrient: domain.NutrientCalories, MaxAmount: 5,
			Terms: []string{"calorie free", "zero calorie", "no calories"},
		},
		{
			ID: "claim-sugar-free", Name: "Sugar free", CFR: "21 CFR 101.60(c)(1)",
			Family: domain.ClaimFree, Nutrient: domain.NutrientTotalSugars, MaxAmount: 0.5,
			Terms: []string{"sugar free", "sugarless", "zero sugar", "no sugar"},
		},
		{
			ID: "claim-fat-free", Name: "Fat free", CFR: "21 CFR 101.62(b)(1)",
			Family: domain.ClaimFree, Nutrient: domain.NutrientTotalFat, MaxAmount: 0.5,
			Terms: []string{"fat free", "nonfat", "zero fat", "no fat"},
		},
		{
			ID: "claim-saturated-fat-free", Name: "Saturated fat free", CFR: "21 CFR 101.62(c)(1)",
			Family: domain.ClaimFree, Nutrient: domain.NutrientSaturatedFat, MaxAmount: 0.5,
			Terms: []string{"saturated fat free"},
		},
		{
			ID: "claim-cholesterol-free", Name: "Cholesterol free", CFR: "21 CFR 101.62(d)(1)",
			Family: domain.ClaimFree, Nutrient: domain.NutrientCholesterol, MaxAmount: 2,
			Terms: []string{"cholesterol free", "zero cholesterol", "no cholesterol"},
		},
		{
			ID: "claim-sodium-free", Name: "Sodium free", CFR: "21 CFR 101.61(b)(1)",
			Family: domain.ClaimFree, Nutrient: domain.NutrientSodium, MaxAmount: 5,
			Terms: []string{"sodium free", "salt free", "zero sodium"},
		},

		// "Low" claims: per-RACC maximums.
		{
			ID: "claim-low-calorie", Name: "Low calorie", CFR: "21 CFR 101.60(b)(2)",
			Family: domain.ClaimLow, Nutrient: domain.NutrientCalories, MaxAmount: 40,
			Terms: []string{"low calorie", "low in calories"},
		},
		{
			ID: "claim-low-fat", Name: "Low fat", CFR: "21 CFR 101.62(b)(2)",
			Family: domain.ClaimLow, Nutrient: domain.NutrientTotalFat, MaxAmount: 3,
			Terms: []string{"low fat", "low in fat"},
		},
		{
			ID: "claim-low-saturated-fat", Name: "Low saturated fat", CFR: "21 CFR 101.62(c)(2)",
			Family: domain.ClaimLow, Nutrient: domain.NutrientSaturatedFat, MaxAmount: 1,
			Terms: []string{"low saturated fat", "low in saturated fat"},
		},
		{
			ID: "claim-low-cholesterol", Name: "Low cholesterol", CFR: "21 CFR 101.62(d)(2)",
			Family: domain.ClaimLow, Nutrient: domain.NutrientCholesterol, MaxAmount: 20,
			Terms: []string{"low cholesterol", "low in cholesterol"},
		},
		{
			ID: "claim-very-low-sodium", Name: "Very low sodium", CFR: "21 CFR 101.61(b)(3)",
			Family: domain.ClaimLow, Nutrient: domain.NutrientSodium, MaxAmount: 35,
			Terms: []string{"very low sodium"},
		},
		{
			ID: "claim-low-sodium", Name: "Low sodium", CFR: "21 CFR 101.61(b)(4)",
			Family: domain.ClaimLow, Nutrient: domain.NutrientSodium, MaxAmount: 140,
			Terms: []string{"low sodium", "low in sodium"},
		},

		// "Good source" claims: 10-19% DV per serving.
		{
			ID: "claim-good-source-fiber", Name: "Good source of fiber", CFR: "21 CFR 101.54(c)",
			Family: domain.ClaimGoodSource, Nutrient: domain.NutrientDietaryFiber,
			Terms: []string{"good source of fiber", "good source of dietary fiber", "contains fiber"},
		},
		{
			ID: "claim-good-source-protein", Name: "Good source of protein", CFR: "21 CFR 101.54(c)",
			Family: domain.ClaimGoodSource, Nutrient: domain.NutrientProtein,
			Terms: []string{"good source of protein", "contains protein"},
		},
		{
			ID: "claim-good-source-vitamin-d", Name: "Good source of vitamin D", CFR: "21 CFR 101.54(c)",
			Family: domain.ClaimGoodSource, Nutrient: domain.NutrientVitaminD,
			Terms: []string{"good source of vitamin d"},
		},
		{
			ID: "claim-good-source-calcium", Name: "Good source of calcium", CFR: "21 CFR 101.54(c)",
			Family: domain.ClaimGoodSource, Nutrient: domain.NutrientCalcium,
			Terms: []string{"good source of calcium"},
		},
		{
			ID: "claim-good-source-iron", Name: "Good source of iron", CFR: "21 CFR 101.54(c)",
			Family: domain.ClaimGoodSource, Nutrient: domain.NutrientIron,
			Terms: []string{"good source of iron"},
		},
		{
			ID: "claim-good-source-potassium", Name: "Good source of potassium", CFR: "21 CFR 101.54(c)",
			Family: domain.ClaimGoodSource, Nutrient: domain.NutrientPotassium,
			Terms: []string{"good source of potassium"},
		},

		// "High" claims: 20% DV or more per serving.
		{
			ID: "claim-high-fiber", Name: "High in fiber", CFR: "21 CFR 101.54(b)",
			Family: domain.ClaimHigh, Nutrient: domain.NutrientDietaryFiber,
			Terms: []string{"high in fiber", "high fiber", "excellent source of fiber", "rich in fiber"},
		},
		{
			ID: "claim-high-protein", Name: "High in protein", CFR: "21 CFR 101.54(b)",
			Family: domain.ClaimHigh, Nutrient: domain.NutrientProtein,
			Terms: []string{"high in protein", "high protein", "excellent source of protein", "rich in protein"},
		},
		{
			ID: "claim-high-vitamin-d", Name: "High in vitamin D", CFR: "21 CFR 101.54(b)",
			Family: domain.ClaimHigh, Nutrient: domain.NutrientVitaminD,
			Terms: []string{"high in vitamin d", "excellent source of vitamin d"},
		},
		{
			ID: "claim-high-calcium", Name: "High in calcium", CFR: "21 CFR 101.54(b)",
			Family: domain.ClaimHigh, Nutrient: domain.NutrientCalcium,
			Terms: []string{"high in calcium", "excellent source of calcium", "rich in calcium"},
		},
		{
			ID: "claim-high-iron", Name: "High in iron", CFR: "21 CFR 101.54(b)",
			Family: domain.ClaimHigh, Nutrient: domain.NutrientIron,
			Terms: []string{"high in iron", "excellent source of iron", "rich in iron"},
		},
		{
			ID: "claim-high-potassium", Name: "High in potassium", CFR: "21 CFR 101.54(b)",
			Family: domain.ClaimHigh, Nutrient: domain.NutrientPotassium,
			Terms: []string{"high in potassium", "excellent source of potassium", "rich in potassium"},
		},

		// Composite claim.
		{
			ID: "claim-healthy", Name: "Healthy", CFR: "21 CFR 101.65(d)",
			Family: domain.ClaimHealthy,
			Terms:  []string{"healthy"},
		},
	},
}

// DefaultCatalog returns the built-in compliance rule catalog.
func DefaultCatalog() RuleCatalog {
	return defaultCatalog
}
