package domain

// Nutrient identifies one of the 15 nutrients that appear on a
// Nutrition Facts Panel under 21 CFR 101.9(c).
type Nutrient string

const (
	NutrientCalories           Nutrient = "calories"
	NutrientTotalFat           Nutrient = "totalFat"
	NutrientSaturatedFat       Nutrient = "saturatedFat"
	NutrientTransFat           Nutrient = "transFat"
	NutrientCholesterol        Nutrient = "cholesterol"
	NutrientSodium             Nutrient = "sodium"
	NutrientTotalCarbohydrates Nutrient = "totalCarbohydrates"
	NutrientDietaryFiber       Nutrient = "dietaryFiber"
	NutrientTotalSugars        Nutrient = "totalSugars"
	NutrientAddedSugars        Nutrient = "addedSugars"
	NutrientProtein            Nutrient = "protein"
	NutrientVitaminD           Nutrient = "vitaminD"
	NutrientCalcium            Nutrient = "calcium"
	NutrientIron               Nutrient = "iron"
	NutrientPotassium          Nutrient = "potassium"
)

// AllNutrients lists the 15 panel nutrients in mandatory declaration order.
// The order is significant: mandatory-nutrient findings and rounded output
// follow it.
var AllNutrients = []Nutrient{
	NutrientCalories,
	NutrientTotalFat,
	NutrientSaturatedFat,
	NutrientTransFat,
	NutrientCholesterol,
	NutrientSodium,
	NutrientTotalCarbohydrates,
	NutrientDietaryFiber,
	NutrientTotalSugars,
	NutrientAddedSugars,
	NutrientProtein,
	NutrientVitaminD,
	NutrientCalcium,
	NutrientIron,
	NutrientPotassium,
}

// nutrientDisplayNames maps nutrient keys to the names printed on labels
// and used in validation messages.
var nutrientDisplayNames = map[Nutrient]string{
	NutrientCalories:           "Calories",
	NutrientTotalFat:           "Total Fat",
	NutrientSaturatedFat:       "Saturated Fat",
	NutrientTransFat:           "Trans Fat",
	NutrientCholesterol:        "Cholesterol",
	NutrientSodium:             "Sodium",
	NutrientTotalCarbohydrates: "Total Carbohydrates",
	NutrientDietaryFiber:       "Dietary Fiber",
	NutrientTotalSugars:        "Total Sugars",
	NutrientAddedSugars:        "Added Sugars",
	NutrientProtein:            "Protein",
	NutrientVitaminD:           "Vitamin D",
	NutrientCalcium:            "Calcium",
	NutrientIron:               "Iron",
	NutrientPotassium:          "Potassium",
}

// nutrientUnits maps nutrient keys to their declaration units.
var nutrientUnits = map[Nutrient]string{
	NutrientCalories:           "kcal",
	NutrientTotalFat:           "g",
	NutrientSaturatedFat:       "g",
	NutrientTransFat:           "g",
	NutrientCholesterol:        "mg",
	NutrientSodium:             "mg",
	NutrientTotalCarbohydrates: "g",
	NutrientDietaryFiber:       "g",
	NutrientTotalSugars:        "g",
	NutrientAddedSugars:        "g",
	NutrientProtein:            "g",
	NutrientVitaminD:           "mcg",
	NutrientCalcium:            "mg",
	NutrientIron:               "mg",
	NutrientPotassium:          "mg",
}

// DisplayName returns the label-facing name for the nutrient.
func (n Nutrient) DisplayName() string {
	if name, ok := nutrientDisplayNames[n]; ok {
		return name
	}
	return string(n)
}

// Unit returns the declaration unit for the nutrient (kcal, g, mg, mcg).
func (n Nutrient) Unit() string {
	return nutrientUnits[n]
}

// NutritionData holds raw per-declared-serving amounts for the 15 panel
// nutrients. A nil field means "not measured" and is distinct from zero.
type NutritionData struct {
	Calories           *float64 `json:"calories"`
	TotalFat           *float64 `json:"totalFat"`
	SaturatedFat       *float64 `json:"saturatedFat"`
	TransFat           *float64 `json:"transFat"`
	Cholesterol        *float64 `json:"cholesterol"`
	Sodium             *float64 `json:"sodium"`
	TotalCarbohydrates *float64 `json:"totalCarbohydrates"`
	DietaryFiber       *float64 `json:"dietaryFiber"`
	TotalSugars        *float64 `json:"totalSugars"`
	AddedSugars        *float64 `json:"addedSugars"`
	Protein            *float64 `json:"protein"`
	VitaminD           *float64 `json:"vitaminD"`
	Calcium            *float64 `json:"calcium"`
	Iron               *float64 `json:"iron"`
	Potassium          *float64 `json:"potassium"`
}

// Get returns the raw amount for a nutrient key and whether it was measured.
func (d *NutritionData) Get(n Nutrient) (float64, bool) {
	p := d.field(n)
	if p == nil || *p == nil {
		return 0, false
	}
	return **p, true
}

// Set assigns the raw amount for a nutrient key.
func (d *NutritionData) Set(n Nutrient, value float64) {
	if p := d.field(n); p != nil {
		v := value
		*p = &v
	}
}

func (d *NutritionData) field(n Nutrient) **float64 {
	switch n {
	case NutrientCalories:
		return &d.Calories
	case NutrientTotalFat:
		return &d.TotalFat
	case NutrientSaturatedFat:
		return &d.SaturatedFat
	case NutrientTransFat:
		return &d.TransFat
	case NutrientCholesterol:
		return &d.Cholesterol
	case NutrientSodium:
		return &d.Sodium
	case NutrientTotalCarbohydrates:
		return &d.TotalCarbohydrates
	case NutrientDietaryFiber:
		return &d.DietaryFiber
	case NutrientTotalSugars:
		return &d.TotalSugars
	case NutrientAddedSugars:
		return &d.AddedSugars
	case NutrientProtein:
		return &d.Protein
	case NutrientVitaminD:
		return &d.VitaminD
	case NutrientCalcium:
		return &d.Calcium
	case NutrientIron:
		return &d.Iron
	case NutrientPotassium:
		return &d.Potassium
	}
	return nil
}

// RoundedQualifier distinguishes the three ways a declared value can print.
type RoundedQualifier string

const (
	// QualifierExact declares the rounded numeric amount as-is.
	QualifierExact RoundedQualifier = "exact"
	// QualifierZero declares "0" (amount fell below the de minimis threshold).
	QualifierZero RoundedQualifier = "zero"
	// QualifierLessThan declares "less than N" where N is Amount.
	QualifierLessThan RoundedQualifier = "less_than"
)

// RoundedValue is a single declared label value produced by the rounding
// engine. Amount always carries the declarable numeric component, so
// re-rounding Amount reproduces the same declaration.
type RoundedValue struct {
	Amount    float64          `json:"amount"`
	Qualifier RoundedQualifier `json:"qualifier"`
}

// Display renders the value the way it prints on the panel.
func (v RoundedValue) Display() string {
	switch v.Qualifier {
	case QualifierZero:
		return "0"
	case QualifierLessThan:
		return "less than " + FormatAmount(v.Amount)
	default:
		return FormatAmount(v.Amount)
	}
}

// RoundedNutritionData mirrors NutritionData with declared label values.
// A nil field mirrors an unmeasured input.
type RoundedNutritionData struct {
	Calories           *RoundedValue `json:"calories"`
	TotalFat           *RoundedValue `json:"totalFat"`
	SaturatedFat       *RoundedValue `json:"saturatedFat"`
	TransFat           *RoundedValue `json:"transFat"`
	Cholesterol        *RoundedValue `json:"cholesterol"`
	Sodium             *RoundedValue `json:"sodium"`
	TotalCarbohydrates *RoundedValue `json:"totalCarbohydrates"`
	DietaryFiber       *RoundedValue `json:"dietaryFiber"`
	TotalSugars        *RoundedValue `json:"totalSugars"`
	AddedSugars        *RoundedValue `json:"addedSugars"`
	Protein            *RoundedValue `json:"protein"`
	VitaminD           *RoundedValue `json:"vitaminD"`
	Calcium            *RoundedValue `json:"calcium"`
	Iron               *RoundedValue `json:"iron"`
	Potassium          *RoundedValue `json:"potassium"`
}

// Get returns the rounded value for a nutrient key, or nil if unmeasured.
func (d *RoundedNutritionData) Get(n Nutrient) *RoundedValue {
	if p := d.field(n); p != nil {
		return *p
	}
	return nil
}

// Set assigns the rounded value for a nutrient key.
func (d *RoundedNutritionData) Set(n Nutrient, value RoundedValue) {
	if p := d.field(n); p != nil {
		v := value
		*p = &v
	}
}

func (d *RoundedNutritionData) field(n Nutrient) **RoundedValue {
	switch n {
	case NutrientCalories:
		return &d.Calories
	case NutrientTotalFat:
		return &d.TotalFat
	case NutrientSaturatedFat:
		return &d.SaturatedFat
	case NutrientTransFat:
		return &d.TransFat
	case NutrientCholesterol:
		return &d.Cholesterol
	case NutrientSodium:
		return &d.Sodium
	case NutrientTotalCarbohydrates:
		return &d.TotalCarbohydrates
	case NutrientDietaryFiber:
		return &d.DietaryFiber
	case NutrientTotalSugars:
		return &d.TotalSugars
	case NutrientAddedSugars:
		return &d.AddedSugars
	case NutrientProtein:
		return &d.Protein
	case NutrientVitaminD:
		return &d.VitaminD
	case NutrientCalcium:
		return &d.Calcium
	case NutrientIron:
		return &d.Iron
	case NutrientPotassium:
		return &d.Potassium
	}
	return nil
}
