package domain

import "time"

// RuleType categorizes a validation finding by the family of rule that
// produced it.
type RuleType string

const (
	RuleTypeFormat             RuleType = "format"
	RuleTypeServingSize        RuleType = "serving_size"
	RuleTypeMandatoryNutrients RuleType = "mandatory_nutrients"
	RuleTypeClaim              RuleType = "nutrient_content_claim"
	RuleTypeRACC               RuleType = "racc_validation"
)

// ValidationStatus is the pass/fail outcome of a single rule.
type ValidationStatus string

const (
	StatusPass ValidationStatus = "pass"
	StatusFail ValidationStatus = "fail"
)

// Severity ranks a finding. Error blocks label approval in caller
// workflows, warning is surfaced without blocking, info is confirmatory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// OverallStatus summarizes a whole compliance report.
type OverallStatus string

const (
	OverallCompliant    OverallStatus = "compliant"
	OverallWarnings     OverallStatus = "warnings"
	OverallErrors       OverallStatus = "errors"
	OverallNotValidated OverallStatus = "not_validated"
)

// ResultDetails is the closed set of structured payloads a
// ValidationResult can carry. Each rule family has its own concrete type;
// there is no open-ended map.
type ResultDetails interface {
	resultDetails()
}

// FormatDetails accompanies format findings.
type FormatDetails struct {
	DeclaredFormat         LabelFormat `json:"declaredFormat"`
	RecommendedFormat      LabelFormat `json:"recommendedFormat,omitempty"`
	PackageSurfaceAreaSqIn *float64    `json:"packageSurfaceAreaSqIn,omitempty"`
}

// ServingSizeDetails accompanies serving-size and servings-per-container
// rounding findings.
type ServingSizeDetails struct {
	Field         string  `json:"field"`
	DeclaredValue float64 `json:"declaredValue"`
	ExpectedValue float64 `json:"expectedValue"`
}

// MissingNutrientsDetails accompanies the aggregated mandatory-nutrient
// finding and names every nutrient absent from the input.
type MissingNutrientsDetails struct {
	MissingNutrients []string `json:"missingNutrients"`
}

// ClaimDetails accompanies nutrient-content-claim findings. The original
// claim text is always echoed for traceability.
type ClaimDetails struct {
	Claim        string   `json:"claim"`
	Nutrient     Nutrient `json:"nutrient,omitempty"`
	CurrentValue *float64 `json:"currentValue,omitempty"`
	MaxAllowed   *float64 `json:"maxAllowed,omitempty"`
	PercentDV    *int     `json:"percentDV,omitempty"`
	Violations   []string `json:"violations,omitempty"`
}

// RACCDetails accompanies RACC-derived serving recommendations.
type RACCDetails struct {
	CategoryID       string  `json:"categoryId"`
	ReferenceAmount  float64 `json:"referenceAmount"`
	DeclaredValue    float64 `json:"declaredValue"`
	RecommendedValue float64 `json:"recommendedValue"`
	DeviationPercent float64 `json:"deviationPercent"`
}

func (FormatDetails) resultDetails()           {}
func (ServingSizeDetails) resultDetails()      {}
func (MissingNutrientsDetails) resultDetails() {}
func (ClaimDetails) resultDetails()            {}
func (RACCDetails) resultDetails()             {}

// ValidationResult is one finding produced by one rule evaluation.
// Invariant: a failing result carries error or warning severity, never
// info; a passing result carries info.
type ValidationResult struct {
	RuleID   string           `json:"ruleId"`
	RuleName string           `json:"ruleName"`
	RuleType RuleType         `json:"ruleType"`
	Status   ValidationStatus `json:"status"`
	Severity Severity         `json:"severity"`
	Message  string           `json:"message"`
	Citation string           `json:"citation,omitempty"`
	Details  ResultDetails    `json:"details,omitempty"`
}

// ServingSizeValidation is the RACC sub-report optionally attached to a
// compliance report when a category id and serving size were supplied.
type ServingSizeValidation struct {
	CategoryID             string   `json:"categoryId"`
	ReferenceAmount        float64  `json:"referenceAmount"`
	ReferenceUnit          string   `json:"referenceUnit"`
	RecommendedServingSize *float64 `json:"recommendedServingSizeG,omitempty"`
	RecommendedServings    *float64 `json:"recommendedServingsPerContainer,omitempty"`
}

// ComplianceReport is the aggregate outcome of validating one label.
// It is a pure derived value: counts and overall status are computed from
// the result list exactly once and must not be re-derived by callers.
type ComplianceReport struct {
	OverallStatus         OverallStatus          `json:"overallStatus"`
	Results               []ValidationResult     `json:"results"`
	ErrorsCount           int                    `json:"errorsCount"`
	WarningsCount         int                    `json:"warningsCount"`
	ValidatedAt           time.Time              `json:"validatedAt"`
	LabelFormat           LabelFormat            `json:"labelFormat"`
	ServingSizeValidation *ServingSizeValidation `json:"servingSizeValidation,omitempty"`
}
