package domain

// ComplianceRule is the closed set of rule variants the validation
// orchestrator evaluates. Each rule family carries its own strongly typed
// requirements; evaluation dispatches on the concrete type, so an
// unhandled family is a compile-time gap, not a silent lookup miss.
type ComplianceRule interface {
	RuleID() string
	RuleName() string
	RuleType() RuleType
	Citation() string
	complianceRule()
}

// FormatRule maps package surface area bands to the panel layout a label
// is expected to use. Bands are checked in declared order; the first band
// whose MinArea the package meets wins.
type FormatRule struct {
	ID       string
	Name     string
	CFR      string
	AreaBand []FormatAreaBand
}

// FormatAreaBand pairs a minimum package surface area (sq in, inclusive)
// with the expected layout at or above it.
type FormatAreaBand struct {
	MinArea float64
	Format  LabelFormat
}

// ServingSizeRule declares the magnitude-banded increments serving-size
// grams and servings-per-container must round to.
type ServingSizeRule struct {
	ID   string
	Name string
	CFR  string
}

// MandatoryNutrientsRule lists the nutrients every panel must declare, in
// declaration order.
type MandatoryNutrientsRule struct {
	ID        string
	Name      string
	CFR       string
	Nutrients []Nutrient
}

// ClaimFamily identifies how a nutrient content claim is adjudicated.
type ClaimFamily string

const (
	// ClaimFree passes when the amount is at or below an absolute maximum.
	ClaimFree ClaimFamily = "free"
	// ClaimLow passes when the amount is at or below a (higher) maximum.
	ClaimLow ClaimFamily = "low"
	// ClaimGoodSource passes when %DV is in [10, 20).
	ClaimGoodSource ClaimFamily = "good_source"
	// ClaimHigh passes when %DV is 20 or more.
	ClaimHigh ClaimFamily = "high"
	// ClaimHealthy is the composite added-sugars/sodium/saturated-fat test.
	ClaimHealthy ClaimFamily = "healthy"
)

// ClaimRule gates one family of nutrient content claims. Terms are
// matched case-insensitively as substrings of the label's free-text claim
// statements. MaxAmount applies to the free and low families only.
type ClaimRule struct {
	ID        string
	Name      string
	CFR       string
	Family    ClaimFamily
	Nutrient  Nutrient
	MaxAmount float64
	Terms     []string
}

func (r FormatRule) RuleID() string             { return r.ID }
func (r FormatRule) RuleName() string           { return r.Name }
func (r FormatRule) RuleType() RuleType         { return RuleTypeFormat }
func (r FormatRule) Citation() string           { return r.CFR }
func (FormatRule) complianceRule()              {}
func (r ServingSizeRule) RuleID() string        { return r.ID }
func (r ServingSizeRule) RuleName() string      { return r.Name }
func (r ServingSizeRule) RuleType() RuleType    { return RuleTypeServingSize }
func (r ServingSizeRule) Citation() string      { return r.CFR }
func (ServingSizeRule) complianceRule()         {}
func (r MandatoryNutrientsRule) RuleID() string { return r.ID }
func (r MandatoryNutrientsRule) RuleName() string {
	return r.Name
}
func (r MandatoryNutrientsRule) RuleType() RuleType { return RuleTypeMandatoryNutrients }
func (r MandatoryNutrientsRule) Citation() string   { return r.CFR }
func (MandatoryNutrientsRule) complianceRule()      {}
func (r ClaimRule) RuleID() string                  { return r.ID }
func (r ClaimRule) RuleName() string                { return r.Name }
func (r ClaimRule) RuleType() RuleType              { return RuleTypeClaim }
func (r ClaimRule) Citation() string                { return r.CFR }
func (ClaimRule) complianceRule()                   {}
