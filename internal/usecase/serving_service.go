package usecase

import (
	"fmt"
	"math"

	"github.com/labelforge/backend/internal/domain"
)

// Serving declaration increments (21 CFR 101.9(b)(5)): values below 2
// declare to the nearest 0.1, values from 2 to 5 to the nearest 0.5,
// values of 5 or more to the nearest whole unit. The identical bands
// apply to serving size grams and to servings per container.
const (
	servingFineBandMax   = 2.0
	servingMediumBandMax = 5.0
	servingTolerance     = 0.01
)

// RACC divergence ladder: a declared value within raccInfoPercent of the
// category recommendation is confirmed, within raccWarnPercent it draws a
// warning, beyond that an error.
const (
	raccInfoPercent = 10.0
	raccWarnPercent = 50.0
)

// ServingSizeInput carries the declared serving fields of a label.
type ServingSizeInput struct {
	ServingSizeG         float64
	ServingSizeHousehold string
	ServingsPerContainer *float64
	RACCCategoryID       string
	TotalProductWeightG  *float64
}

// ServingSizeService validates declared serving sizes against the
// regulation's rounding increments and against the RACC catalog.
type ServingSizeService struct {
	categories map[string]domain.RACCCategory
	rule       domain.ServingSizeRule
}

// NewServingSizeService creates a serving-size validator over the default
// RACC catalog.
func NewServingSizeService() *ServingSizeService {
	categories := make(map[string]domain.RACCCategory, len(raccCatalog))
	for _, c := range raccCatalog {
		categories[c.ID] = c
	}
	return &ServingSizeService{
		categories: categories,
		rule:       DefaultCatalog().ServingSize,
	}
}

// LookupRACC resolves an RACC category by id.
func (s *ServingSizeService) LookupRACC(id string) (domain.RACCCategory, bool) {
	c, ok := s.categories[id]
	return c, ok
}

// ListRACCCategories returns the full RACC catalog in its declared order.
func (s *ServingSizeService) ListRACCCategories() []domain.RACCCategory {
	return raccCatalog
}

// ExpectedServingValue rounds a declared serving value to the increment
// the regulation requires for its magnitude.
func ExpectedServingValue(v float64) float64 {
	switch {
	case v < servingFineBandMax:
		return roundToIncrement(v, 0.1)
	case v < servingMediumBandMax:
		return roundToIncrement(v, 0.5)
	default:
		return roundToIncrement(v, 1)
	}
}

// ValidateServingSize checks a label's serving declarations: gram
// increments, servings-per-container increments, and household measure
// presence. RACC-derived checks are separate (ValidateRACC).
func (s *ServingSizeService) ValidateServingSize(input ServingSizeInput) []domain.ValidationResult {
	var results []domain.ValidationResult

	results = append(results, s.checkIncrement(
		"serving-size-increments", "Serving size declaration increments",
		"serving_size_g", "Serving size", "g", input.ServingSizeG))

	if input.ServingsPerContainer != nil {
		results = append(results, s.checkIncrement(
			"servings-per-container-increments", "Servings per container declaration increments",
			"servings_per_container", "Servings per container", "", *input.ServingsPerContainer))
	}

	if input.ServingSizeHousehold == "" {
		results = append(results, domain.ValidationResult{
			RuleID:   "household-measure-presence",
			RuleName: "Household measure declaration",
			RuleType: domain.RuleTypeServingSize,
			Status:   domain.StatusFail,
			Severity: domain.SeverityWarning,
			Message:  "No household measure declared; serving size should carry a common household measure (e.g. \"1 cup\").",
			Citation: "21 CFR 101.9(b)(7)",
		})
	} else {
		results = append(results, domain.ValidationResult{
			RuleID:   "household-measure-presence",
			RuleName: "Household measure declaration",
			RuleType: domain.RuleTypeServingSize,
			Status:   domain.StatusPass,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("Household measure declared: %q.", input.ServingSizeHousehold),
			Citation: "21 CFR 101.9(b)(7)",
		})
	}

	return results
}

// checkIncrement verifies one declared value against the serving
// increment bands. Mismatches are errors: an off-increment declaration is
// non-compliant on its face.
func (s *ServingSizeService) checkIncrement(ruleID, ruleName, field, label, unit string, declared float64) domain.ValidationResult {
	expected := ExpectedServingValue(declared)
	suffix := unit
	if suffix != "" {
		suffix = " " + suffix
	}

	if math.Abs(declared-expected) < servingTolerance {
		return domain.ValidationResult{
			RuleID:   ruleID,
			RuleName: ruleName,
			RuleType: domain.RuleTypeServingSize,
			Status:   domain.StatusPass,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("%s %s%s is declared at a permitted increment.", label, domain.FormatAmount(declared), suffix),
			Citation: s.rule.CFR,
			Details:  domain.ServingSizeDetails{Field: field, DeclaredValue: declared, ExpectedValue: expected},
		}
	}
	return domain.ValidationResult{
		RuleID:   ruleID,
		RuleName: ruleName,
		RuleType: domain.RuleTypeServingSize,
		Status:   domain.StatusFail,
		Severity: domain.SeverityError,
		Message: fmt.Sprintf("%s %s%s is not at a permitted increment; it should be declared as %s%s.",
			label, domain.FormatAmount(declared), suffix, domain.FormatAmount(expected), suffix),
		Citation: s.rule.CFR,
		Details:  domain.ServingSizeDetails{Field: field, DeclaredValue: declared, ExpectedValue: expected},
	}
}

// ValidateRACC compares declared serving size and servings per container
// against the recommendation derived from the food's RACC category.
// Returns the findings plus the sub-report summary for the compliance
// report. An unknown category id yields a single warning, not an error:
// catalog gaps are a data problem, not a label defect.
func (s *ServingSizeService) ValidateRACC(input ServingSizeInput) ([]domain.ValidationResult, *domain.ServingSizeValidation) {
	category, ok := s.categories[input.RACCCategoryID]
	if !ok {
		return []domain.ValidationResult{{
			RuleID:   "racc-category",
			RuleName: "RACC category reference",
			RuleType: domain.RuleTypeRACC,
			Status:   domain.StatusFail,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("RACC category %q is not in the reference catalog; serving size could not be checked against a reference amount.", input.RACCCategoryID),
		}}, nil
	}

	summary := &domain.ServingSizeValidation{
		CategoryID:      category.ID,
		ReferenceAmount: category.ReferenceAmount,
		ReferenceUnit:   string(category.Unit),
	}

	var results []domain.ValidationResult

	// Serving size vs. the category reference amount. The declared size
	// should sit at the RACC, rounded to a permitted increment.
	recommendedServing := ExpectedServingValue(category.ReferenceAmount)
	summary.RecommendedServingSize = &recommendedServing
	results = append(results, s.divergenceResult(
		"racc-serving-size", "Serving size vs. reference amount",
		fmt.Sprintf("Serving size %s g", domain.FormatAmount(input.ServingSizeG)),
		category, input.ServingSizeG, recommendedServing))

	// Servings per container vs. the count implied by total product weight.
	if input.TotalProductWeightG != nil && *input.TotalProductWeightG > 0 {
		recommendedServings := ExpectedServingValue(*input.TotalProductWeightG / category.ReferenceAmount)
		summary.RecommendedServings = &recommendedServings
		if input.ServingsPerContainer != nil {
			results = append(results, s.divergenceResult(
				"racc-servings-per-container", "Servings per container vs. reference amount",
				fmt.Sprintf("Servings per container %s", domain.FormatAmount(*input.ServingsPerContainer)),
				category, *input.ServingsPerContainer, recommendedServings))
		} else {
			results = append(results, domain.ValidationResult{
				RuleID:   "racc-servings-per-container",
				RuleName: "Servings per container vs. reference amount",
				RuleType: domain.RuleTypeRACC,
				Status:   domain.StatusPass,
				Severity: domain.SeverityInfo,
				Message: fmt.Sprintf("Based on the %s reference amount (%s %s), the container holds about %s servings.",
					category.Description, domain.FormatAmount(category.ReferenceAmount), category.Unit, domain.FormatAmount(recommendedServings)),
				Citation: category.Citation,
				Details: domain.RACCDetails{
					CategoryID:       category.ID,
					ReferenceAmount:  category.ReferenceAmount,
					RecommendedValue: recommendedServings,
				},
			})
		}
	}

	return results, summary
}

// divergenceResult grades how far a declared value sits from the
// RACC-derived recommendation: within 10% confirms, within 50% warns,
// beyond that errors.
func (s *ServingSizeService) divergenceResult(ruleID, ruleName, declaredLabel string, category domain.RACCCategory, declared, recommended float64) domain.ValidationResult {
	deviation := 100.0
	if recommended > 0 {
		deviation = math.Abs(declared-recommended) / recommended * 100
	}
	deviation = math.Round(deviation*10) / 10

	details := domain.RACCDetails{
		CategoryID:       category.ID,
		ReferenceAmount:  category.ReferenceAmount,
		DeclaredValue:    declared,
		RecommendedValue: recommended,
		DeviationPercent: deviation,
	}

	switch {
	case deviation <= raccInfoPercent:
		return domain.ValidationResult{
			RuleID:   ruleID,
			RuleName: ruleName,
			RuleType: domain.RuleTypeRACC,
			Status:   domain.StatusPass,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("%s is consistent with the %s reference amount.", declaredLabel, category.Description),
			Citation: category.Citation,
			Details:  details,
		}
	case deviation <= raccWarnPercent:
		return domain.ValidationResult{
			RuleID:   ruleID,
			RuleName: ruleName,
			RuleType: domain.RuleTypeRACC,
			Status:   domain.StatusFail,
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("%s deviates %.1f%% from the recommended %s for the %s category.",
				declaredLabel, deviation, domain.FormatAmount(recommended), category.Description),
			Citation: category.Citation,
			Details:  details,
		}
	default:
		return domain.ValidationResult{
			RuleID:   ruleID,
			RuleName: ruleName,
			RuleType: domain.RuleTypeRACC,
			Status:   domain.StatusFail,
			Severity: domain.SeverityError,
			Message: fmt.Sprintf("%s deviates %.1f%% from the recommended %s for the %s category; the declaration is not defensible against the reference amount.",
				declaredLabel, deviation, domain.FormatAmount(recommended), category.Description),
			Citation: category.Citation,
			Details:  details,
		}
	}
}
