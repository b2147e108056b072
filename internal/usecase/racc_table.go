package usecase

import "github.com/labelforge/backend/internal/domain"

// raccCatalog holds representative Reference Amounts Customarily Consumed
// from 21 CFR 101.12 Table 2. Reference data: loaded once, never mutated.
var raccCatalog = []domain.RACCCategory{
	{
		ID:               "cereal-ready-to-eat",
		Description:      "Breakfast cereals, ready-to-eat (medium density)",
		ReferenceAmount:  40,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "1 cup",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "milk",
		Description:      "Milk, milk-based drinks",
		ReferenceAmount:  240,
		Unit:             domain.RACCMilliliters,
		HouseholdMeasure: "1 cup",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "yogurt",
		Description:      "Yogurt",
		ReferenceAmount:  170,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "1 container",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "cheese-hard",
		Description:      "Cheese, all others except cottage",
		ReferenceAmount:  30,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "1 slice",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "carbonated-beverage",
		Description:      "Carbonated and noncarbonated beverages",
		ReferenceAmount:  360,
		Unit:             domain.RACCMilliliters,
		HouseholdMeasure: "12 fl oz",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "juice",
		Description:      "Juices, nectars, fruit drinks",
		ReferenceAmount:  240,
		Unit:             domain.RACCMilliliters,
		HouseholdMeasure: "8 fl oz",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "snack-chips",
		Description:      "Chips, crisps, extruded snacks, pretzels",
		ReferenceAmount:  30,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "1 oz",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "crackers",
		Description:      "Crackers, all varieties",
		ReferenceAmount:  30,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "5 crackers",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "cookies",
		Description:      "Cookies",
		ReferenceAmount:  30,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "3 cookies",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "bread",
		Description:      "Breads, rolls, bagels",
		ReferenceAmount:  50,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "2 slices",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "ice-cream",
		Description:      "Ice cream, frozen yogurt, sherbet",
		ReferenceAmount:  90,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "2/3 cup",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "salad-dressing",
		Description:      "Salad dressings, mayonnaise-type dressings",
		ReferenceAmount:  30,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "2 tbsp",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "condiment-sauce",
		Description:      "Major condiments (ketchup, mustard, steak sauce)",
		ReferenceAmount:  15,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "1 tbsp",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "soup",
		Description:      "Soups, all varieties",
		ReferenceAmount:  245,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "1 cup",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "entree-mixed-dish",
		Description:      "Mixed dishes, measurable with a cup (casseroles, stews)",
		ReferenceAmount:  245,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "1 cup",
		Citation:         "21 CFR 101.12 Table 2",
	},
	{
		ID:               "candy-chocolate",
		Description:      "Chocolate and candy bars",
		ReferenceAmount:  40,
		Unit:             domain.RACCGrams,
		HouseholdMeasure: "1 bar",
		Citation:         "21 CFR 101.12 Table 2",
	},
}
