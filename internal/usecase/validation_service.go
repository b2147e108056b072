package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/labelforge/backend/internal/domain"
)

// "Healthy" composite thresholds (%DV per serving, 21 CFR 101.65(d)).
const (
	healthyMaxAddedSugarsDV  = 20
	healthyMaxSodiumDV       = 30
	healthyMaxSaturatedFatDV = 20
)

// %DV bands for source-level claims (21 CFR 101.54).
const (
	goodSourceMinDV = 10
	highMinDV       = 20
)

// ValidationService is the single entry point other subsystems call to
// validate a label. It composes the format, serving-size, mandatory-
// nutrient, claim, and RACC checks and aggregates their findings into one
// compliance report. All methods are pure: no I/O, no shared state.
type ValidationService struct {
	servingService *ServingSizeService
	catalog        RuleCatalog
}

// NewValidationService creates a validation service over the default rule
// catalog.
func NewValidationService(servingService *ServingSizeService) *ValidationService {
	return &ValidationService{
		servingService: servingService,
		catalog:        DefaultCatalog(),
	}
}

// ValidateLabel runs every applicable check against the label and returns
// the aggregated compliance report. The only error conditions are
// structural caller bugs (nil label, missing nutrition data, unrecognized
// format); incomplete regulatory data always becomes findings, never
// errors.
func (s *ValidationService) ValidateLabel(label *domain.LabelData) (*domain.ComplianceReport, error) {
	if label == nil {
		return nil, domain.ErrInvalidLabel
	}
	if label.NutritionData == nil {
		return nil, domain.ErrMissingNutritionData
	}
	if !domain.ValidFormat(label.Format) {
		return nil, fmt.Errorf("%w: unrecognized format %q", domain.ErrInvalidLabel, label.Format)
	}

	// Evaluation order is fixed so reports are byte-for-byte deterministic.
	results := []domain.ValidationResult{s.validateFormat(label)}

	servingInput := ServingSizeInput{
		ServingSizeG:         label.ServingSizeG,
		ServingSizeHousehold: label.ServingSizeHousehold,
		ServingsPerContainer: label.ServingsPerContainer,
		RACCCategoryID:       label.RACCCategoryID,
		TotalProductWeightG:  label.TotalProductWeightG,
	}
	results = append(results, s.servingService.ValidateServingSize(servingInput)...)
	results = append(results, s.validateMandatoryNutrients(label.NutritionData))

	if len(label.ClaimStatements) > 0 {
		results = append(results, s.validateClaims(label.ClaimStatements, label.NutritionData)...)
	}

	var servingSummary *domain.ServingSizeValidation
	if label.RACCCategoryID != "" && label.ServingSizeG > 0 {
		raccResults, summary := s.servingService.ValidateRACC(servingInput)
		results = append(results, raccResults...)
		servingSummary = summary
	}

	report := &domain.ComplianceReport{
		Results:               results,
		ValidatedAt:           time.Now().UTC(),
		LabelFormat:           label.Format,
		ServingSizeValidation: servingSummary,
	}
	for _, r := range results {
		if r.Status != domain.StatusFail {
			continue
		}
		switch r.Severity {
		case domain.SeverityError:
			report.ErrorsCount++
		case domain.SeverityWarning:
			report.WarningsCount++
		}
	}
	switch {
	case report.ErrorsCount > 0:
		report.OverallStatus = domain.OverallErrors
	case report.WarningsCount > 0:
		report.OverallStatus = domain.OverallWarnings
	default:
		report.OverallStatus = domain.OverallCompliant
	}

	return report, nil
}

// validateFormat checks the declared panel layout against the package
// surface area bands.
func (s *ValidationService) validateFormat(label *domain.LabelData) domain.ValidationResult {
	rule := s.catalog.Format

	if label.PackageSurfaceAreaSqIn == nil {
		return domain.ValidationResult{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			RuleType: domain.RuleTypeFormat,
			Status:   domain.StatusFail,
			Severity: domain.SeverityWarning,
			Message:  "No package surface area provided; format appropriateness could not be assessed.",
			Citation: rule.CFR,
			Details:  domain.FormatDetails{DeclaredFormat: label.Format},
		}
	}

	area := *label.PackageSurfaceAreaSqIn
	recommended := recommendedFormat(rule, area)
	details := domain.FormatDetails{
		DeclaredFormat:         label.Format,
		RecommendedFormat:      recommended,
		PackageSurfaceAreaSqIn: label.PackageSurfaceAreaSqIn,
	}

	if label.Format == recommended {
		return domain.ValidationResult{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			RuleType: domain.RuleTypeFormat,
			Status:   domain.StatusPass,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("Format %q is appropriate for a %s sq in package.", label.Format, domain.FormatAmount(area)),
			Citation: rule.CFR,
			Details:  details,
		}
	}
	return domain.ValidationResult{
		RuleID:   rule.ID,
		RuleName: rule.Name,
		RuleType: domain.RuleTypeFormat,
		Status:   domain.StatusFail,
		Severity: domain.SeverityWarning,
		Message: fmt.Sprintf("Format %q is not the expected layout for a %s sq in package; %q is recommended.",
			label.Format, domain.FormatAmount(area), recommended),
		Citation: rule.CFR,
		Details:  details,
	}
}

// recommendedFormat picks the first area band the package reaches. Bands
// are declared largest-first, so overlapping ranges resolve to the most
// specific layout.
func recommendedFormat(rule domain.FormatRule, area float64) domain.LabelFormat {
	for _, band := range rule.AreaBand {
		if area >= band.MinArea {
			return band.Format
		}
	}
	return rule.AreaBand[len(rule.AreaBand)-1].Format
}

// validateMandatoryNutrients produces a single aggregated finding: pass
// when every required nutrient is measured, otherwise one error naming
// all of the missing ones.
func (s *ValidationService) validateMandatoryNutrients(data *domain.NutritionData) domain.ValidationResult {
	rule := s.catalog.Mandatory

	var missing []string
	for _, n := range rule.Nutrients {
		if _, ok := data.Get(n); !ok {
			missing = append(missing, n.DisplayName())
		}
	}

	if len(missing) == 0 {
		return domain.ValidationResult{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			RuleType: domain.RuleTypeMandatoryNutrients,
			Status:   domain.StatusPass,
			Severity: domain.SeverityInfo,
			Message:  "All 15 mandatory nutrients are declared.",
			Citation: rule.CFR,
		}
	}
	return domain.ValidationResult{
		RuleID:   rule.ID,
		RuleName: rule.Name,
		RuleType: domain.RuleTypeMandatoryNutrients,
		Status:   domain.StatusFail,
		Severity: domain.SeverityError,
		Message:  fmt.Sprintf("Missing mandatory nutrient declarations: %s.", strings.Join(missing, ", ")),
		Citation: rule.CFR,
		Details:  domain.MissingNutrientsDetails{MissingNutrients: missing},
	}
}

// validateClaims matches each free-text claim statement against the claim
// catalog and evaluates every rule it matches. A statement matching no
// rule is an unrecognized claim (warning), not an error.
func (s *ValidationService) validateClaims(statements []string, data *domain.NutritionData) []domain.ValidationResult {
	var results []domain.ValidationResult

	for _, statement := range statements {
		lower := strings.ToLower(statement)
		matchedAny := false

		for _, rule := range s.catalog.Claims {
			for _, term := range rule.Terms {
				if strings.Contains(lower, term) {
					matchedAny = true
					results = append(results, s.evaluateClaim(rule, statement, data))
					break
				}
			}
		}

		if !matchedAny {
			results = append(results, domain.ValidationResult{
				RuleID:   "claim-unrecognized",
				RuleName: "Nutrient content claim recognition",
				RuleType: domain.RuleTypeClaim,
				Status:   domain.StatusFail,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("Unrecognized claim %q; it could not be matched against any defined nutrient content claim.", statement),
				Details:  domain.ClaimDetails{Claim: statement},
			})
		}
	}

	return results
}

// evaluateClaim adjudicates one matched claim rule against the measured
// nutrient amounts. An unsatisfied threshold is an error (a false claim
// is non-compliant on its face); data gaps that prevent adjudication are
// warnings.
func (s *ValidationService) evaluateClaim(rule domain.ClaimRule, statement string, data *domain.NutritionData) domain.ValidationResult {
	base := domain.ValidationResult{
		RuleID:   rule.ID,
		RuleName: rule.Name,
		RuleType: domain.RuleTypeClaim,
		Citation: rule.CFR,
	}

	switch rule.Family {
	case domain.ClaimFree, domain.ClaimLow:
		amount, ok := data.Get(rule.Nutrient)
		if !ok {
			base.Status = domain.StatusFail
			base.Severity = domain.SeverityWarning
			base.Message = fmt.Sprintf("Cannot validate claim %q: %s is not measured.", statement, rule.Nutrient.DisplayName())
			base.Details = domain.ClaimDetails{Claim: statement, Nutrient: rule.Nutrient}
			return base
		}
		maxAllowed := rule.MaxAmount
		details := domain.ClaimDetails{Claim: statement, Nutrient: rule.Nutrient, CurrentValue: &amount, MaxAllowed: &maxAllowed}
		if amount <= rule.MaxAmount {
			base.Status = domain.StatusPass
			base.Severity = domain.SeverityInfo
			base.Message = fmt.Sprintf("Claim %q is supported: %s is %s %s (maximum %s %s).",
				statement, rule.Nutrient.DisplayName(), domain.FormatAmount(amount), rule.Nutrient.Unit(),
				domain.FormatAmount(rule.MaxAmount), rule.Nutrient.Unit())
		} else {
			base.Status = domain.StatusFail
			base.Severity = domain.SeverityError
			base.Message = fmt.Sprintf("Claim %q is not supported: %s is %s %s but must not exceed %s %s.",
				statement, rule.Nutrient.DisplayName(), domain.FormatAmount(amount), rule.Nutrient.Unit(),
				domain.FormatAmount(rule.MaxAmount), rule.Nutrient.Unit())
		}
		base.Details = details
		return base

	case domain.ClaimGoodSource, domain.ClaimHigh:
		if _, ok := DailyValue(rule.Nutrient); !ok {
			base.Status = domain.StatusFail
			base.Severity = domain.SeverityWarning
			base.Message = fmt.Sprintf("Cannot validate claim %q: %s has no Daily Value reference.", statement, rule.Nutrient.DisplayName())
			base.Details = domain.ClaimDetails{Claim: statement, Nutrient: rule.Nutrient}
			return base
		}
		amount, ok := data.Get(rule.Nutrient)
		if !ok {
			base.Status = domain.StatusFail
			base.Severity = domain.SeverityWarning
			base.Message = fmt.Sprintf("Cannot validate claim %q: %s is not measured.", statement, rule.Nutrient.DisplayName())
			base.Details = domain.ClaimDetails{Claim: statement, Nutrient: rule.Nutrient}
			return base
		}
		pdv := PercentDV(rule.Nutrient, amount)
		details := domain.ClaimDetails{Claim: statement, Nutrient: rule.Nutrient, CurrentValue: &amount, PercentDV: &pdv}

		if rule.Family == domain.ClaimGoodSource {
			if pdv >= goodSourceMinDV && pdv < highMinDV {
				base.Status = domain.StatusPass
				base.Severity = domain.SeverityInfo
				base.Message = fmt.Sprintf("Claim %q is supported: %s provides %d%% DV (good source range is 10-19%%).",
					statement, rule.Nutrient.DisplayName(), pdv)
			} else {
				base.Status = domain.StatusFail
				base.Severity = domain.SeverityError
				base.Message = fmt.Sprintf("Claim %q is not supported: %s provides %d%% DV; a good source claim requires 10-19%%.",
					statement, rule.Nutrient.DisplayName(), pdv)
			}
		} else {
			if pdv >= highMinDV {
				base.Status = domain.StatusPass
				base.Severity = domain.SeverityInfo
				base.Message = fmt.Sprintf("Claim %q is supported: %s provides %d%% DV (high claims require 20%% or more).",
					statement, rule.Nutrient.DisplayName(), pdv)
			} else {
				base.Status = domain.StatusFail
				base.Severity = domain.SeverityError
				base.Message = fmt.Sprintf("Claim %q is not supported: %s provides %d%% DV; a high claim requires 20%% or more.",
					statement, rule.Nutrient.DisplayName(), pdv)
			}
		}
		base.Details = details
		return base

	case domain.ClaimHealthy:
		return s.evaluateHealthyClaim(base, statement, data)
	}

	// Unreachable with the closed family set; kept so a new family fails
	// loudly instead of silently passing.
	base.Status = domain.StatusFail
	base.Severity = domain.SeverityWarning
	base.Message = fmt.Sprintf("Claim %q matched rule %q with unsupported family %q.", statement, rule.ID, rule.Family)
	base.Details = domain.ClaimDetails{Claim: statement}
	return base
}

// evaluateHealthyClaim checks the composite "healthy" conditions: added
// sugars, sodium, and saturated fat must all sit under their %DV caps
// simultaneously. The failure message names every violated sub-condition.
func (s *ValidationService) evaluateHealthyClaim(base domain.ValidationResult, statement string, data *domain.NutritionData) domain.ValidationResult {
	type condition struct {
		nutrient domain.Nutrient
		maxDV    int
	}
	conditions := []condition{
		{domain.NutrientAddedSugars, healthyMaxAddedSugarsDV},
		{domain.NutrientSodium, healthyMaxSodiumDV},
		{domain.NutrientSaturatedFat, healthyMaxSaturatedFatDV},
	}

	var unmeasured, violations []string
	for _, c := range conditions {
		amount, ok := data.Get(c.nutrient)
		if !ok {
			unmeasured = append(unmeasured, c.nutrient.DisplayName())
			continue
		}
		if pdv := PercentDV(c.nutrient, amount); pdv > c.maxDV {
			violations = append(violations,
				fmt.Sprintf("%s is %d%% DV (maximum %d%%)", c.nutrient.DisplayName(), pdv, c.maxDV))
		}
	}

	if len(unmeasured) > 0 {
		base.Status = domain.StatusFail
		base.Severity = domain.SeverityWarning
		base.Message = fmt.Sprintf("Cannot fully validate claim %q: %s not measured.", statement, strings.Join(unmeasured, ", "))
		base.Details = domain.ClaimDetails{Claim: statement, Violations: violations}
		return base
	}
	if len(violations) > 0 {
		base.Status = domain.StatusFail
		base.Severity = domain.SeverityError
		base.Message = fmt.Sprintf("Claim %q is not supported: %s.", statement, strings.Join(violations, "; "))
		base.Details = domain.ClaimDetails{Claim: statement, Violations: violations}
		return base
	}
	base.Status = domain.StatusPass
	base.Severity = domain.SeverityInfo
	base.Message = fmt.Sprintf("Claim %q is supported: added sugars, sodium, and saturated fat are all within the healthy thresholds.", statement)
	base.Details = domain.ClaimDetails{Claim: statement}
	return base
}
