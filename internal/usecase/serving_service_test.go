package usecase

import (
	"math"
	"strings"
	"testing"

	"github.com/labelforge/backend/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestExpectedServingValue(t *testing.T) {
	tests := []struct {
		declared float64
		expected float64
	}{
		{1.23, 1.2}, // below 2: nearest 0.1
		{3.1, 3.0},  // 2 to 5: nearest 0.5 (round(6.2)/2)
		{3.4, 3.5},  // 2 to 5: nearest 0.5 (round(6.8)/2)
		{7.4, 7},    // 5 and up: nearest whole
		{2.3, 2.5},  // 2 to 5: nearest 0.5 (round(4.6)/2)
		{0.37, 0.4},
		{150, 150},
	}

	for _, tt := range tests {
		if got := ExpectedServingValue(tt.declared); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("ExpectedServingValue(%v) = %v, want %v", tt.declared, got, tt.expected)
		}
	}
}

func TestValidateServingSize(t *testing.T) {
	svc := NewServingSizeService()

	t.Run("serving size at a permitted increment passes", func(t *testing.T) {
		results := svc.ValidateServingSize(ServingSizeInput{
			ServingSizeG:         30,
			ServingSizeHousehold: "1 cup",
		})

		r := findResult(t, results, "serving-size-increments")
		if r.Status != domain.StatusPass || r.Severity != domain.SeverityInfo {
			t.Errorf("serving size result = %s/%s, want pass/info", r.Status, r.Severity)
		}
	})

	t.Run("off-increment serving size fails with the expected value", func(t *testing.T) {
		results := svc.ValidateServingSize(ServingSizeInput{
			ServingSizeG:         3.1,
			ServingSizeHousehold: "1 cup",
		})

		r := findResult(t, results, "serving-size-increments")
		if r.Status != domain.StatusFail || r.Severity != domain.SeverityError {
			t.Fatalf("serving size result = %s/%s, want fail/error", r.Status, r.Severity)
		}
		if !strings.Contains(r.Message, "3") {
			t.Errorf("message %q should name the expected value 3", r.Message)
		}
		details, ok := r.Details.(domain.ServingSizeDetails)
		if !ok {
			t.Fatalf("details type = %T, want ServingSizeDetails", r.Details)
		}
		if math.Abs(details.ExpectedValue-3.0) > 1e-9 {
			t.Errorf("ExpectedValue = %v, want 3.0", details.ExpectedValue)
		}
	})

	t.Run("off-increment servings per container fails", func(t *testing.T) {
		results := svc.ValidateServingSize(ServingSizeInput{
			ServingSizeG:         30,
			ServingSizeHousehold: "1 cup",
			ServingsPerContainer: fptr(2.3),
		})

		r := findResult(t, results, "servings-per-container-increments")
		if r.Status != domain.StatusFail || r.Severity != domain.SeverityError {
			t.Fatalf("servings result = %s/%s, want fail/error", r.Status, r.Severity)
		}
		details := r.Details.(domain.ServingSizeDetails)
		if math.Abs(details.ExpectedValue-2.5) > 1e-9 {
			t.Errorf("ExpectedValue = %v, want 2.5", details.ExpectedValue)
		}
	})

	t.Run("missing household measure warns", func(t *testing.T) {
		results := svc.ValidateServingSize(ServingSizeInput{ServingSizeG: 30})

		r := findResult(t, results, "household-measure-presence")
		if r.Status != domain.StatusFail || r.Severity != domain.SeverityWarning {
			t.Errorf("household result = %s/%s, want fail/warning", r.Status, r.Severity)
		}
	})
}

func TestValidateRACC(t *testing.T) {
	svc := NewServingSizeService()

	t.Run("serving size at the reference amount is confirmed", func(t *testing.T) {
		results, summary := svc.ValidateRACC(ServingSizeInput{
			ServingSizeG:   30,
			RACCCategoryID: "snack-chips",
		})

		r := findResult(t, results, "racc-serving-size")
		if r.Status != domain.StatusPass || r.Severity != domain.SeverityInfo {
			t.Errorf("racc serving result = %s/%s, want pass/info", r.Status, r.Severity)
		}
		if summary == nil || summary.ReferenceAmount != 30 {
			t.Errorf("summary = %+v, want reference amount 30", summary)
		}
	})

	t.Run("moderate divergence warns", func(t *testing.T) {
		results, _ := svc.ValidateRACC(ServingSizeInput{
			ServingSizeG:   40, // 33.3% over the 30 g reference
			RACCCategoryID: "snack-chips",
		})

		r := findResult(t, results, "racc-serving-size")
		if r.Status != domain.StatusFail || r.Severity != domain.SeverityWarning {
			t.Errorf("racc serving result = %s/%s, want fail/warning", r.Status, r.Severity)
		}
	})

	t.Run("gross divergence errors", func(t *testing.T) {
		results, _ := svc.ValidateRACC(ServingSizeInput{
			ServingSizeG:   60, // 100% over the 30 g reference
			RACCCategoryID: "snack-chips",
		})

		r := findResult(t, results, "racc-serving-size")
		if r.Status != domain.StatusFail || r.Severity != domain.SeverityError {
			t.Errorf("racc serving result = %s/%s, want fail/error", r.Status, r.Severity)
		}
	})

	t.Run("derives servings per container from total weight", func(t *testing.T) {
		results, summary := svc.ValidateRACC(ServingSizeInput{
			ServingSizeG:         30,
			RACCCategoryID:       "snack-chips",
			TotalProductWeightG:  fptr(240),
			ServingsPerContainer: fptr(8),
		})

		r := findResult(t, results, "racc-servings-per-container")
		if r.Status != domain.StatusPass {
			t.Errorf("racc servings result = %s, want pass", r.Status)
		}
		if summary.RecommendedServings == nil || *summary.RecommendedServings != 8 {
			t.Errorf("RecommendedServings = %v, want 8", summary.RecommendedServings)
		}
	})

	t.Run("unknown category warns instead of erroring", func(t *testing.T) {
		results, summary := svc.ValidateRACC(ServingSizeInput{
			ServingSizeG:   30,
			RACCCategoryID: "no-such-category",
		})

		if summary != nil {
			t.Errorf("summary = %+v, want nil", summary)
		}
		if len(results) != 1 {
			t.Fatalf("len(results) = %d, want 1", len(results))
		}
		if results[0].Status != domain.StatusFail || results[0].Severity != domain.SeverityWarning {
			t.Errorf("result = %s/%s, want fail/warning", results[0].Status, results[0].Severity)
		}
	})
}

func TestLookupRACC(t *testing.T) {
	svc := NewServingSizeService()

	if _, ok := svc.LookupRACC("cereal-ready-to-eat"); !ok {
		t.Error("LookupRACC(cereal-ready-to-eat) ok = false, want true")
	}
	if _, ok := svc.LookupRACC("nonexistent"); ok {
		t.Error("LookupRACC(nonexistent) ok = true, want false")
	}
	if got := len(svc.ListRACCCategories()); got < 12 {
		t.Errorf("catalog has %d categories, want at least 12", got)
	}
}

// findResult returns the first result with the given rule id, failing the
// test if it is absent.
func findResult(t *testing.T, results []domain.ValidationResult, ruleID string) domain.ValidationResult {
	t.Helper()
	for _, r := range results {
		if r.RuleID == ruleID {
			return r
		}
	}
	t.Fatalf("no result with rule id %q in %d results", ruleID, len(results))
	return domain.ValidationResult{}
}
