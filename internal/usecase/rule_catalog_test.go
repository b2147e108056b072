package usecase

import (
	"strings"
	"testing"

	"github.com/labelforge/backend/internal/domain"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	catalog := DefaultCatalog()

	rules := []domain.ComplianceRule{catalog.Format, catalog.ServingSize, catalog.Mandatory}
	for _, claim := range catalog.Claims {
		rules = append(rules, claim)
	}

	t.Run("rule ids are unique across the catalog", func(t *testing.T) {
		seen := make(map[string]bool, len(rules))
		for _, rule := range rules {
			if seen[rule.RuleID()] {
				t.Errorf("duplicate rule id %q", rule.RuleID())
			}
			seen[rule.RuleID()] = true
		}
	})

	t.Run("every rule carries a name, type, and CFR citation", func(t *testing.T) {
		for _, rule := range rules {
			if rule.RuleName() == "" {
				t.Errorf("rule %q has no name", rule.RuleID())
			}
			if rule.RuleType() == "" {
				t.Errorf("rule %q has no type", rule.RuleID())
			}
			if rule.Citation() == "" {
				t.Errorf("rule %q has no citation", rule.RuleID())
			}
		}
	})

	t.Run("claim terms are lowercase for case-insensitive matching", func(t *testing.T) {
		for _, rule := range catalog.Claims {
			if len(rule.Terms) == 0 {
				t.Errorf("claim rule %q has no match terms", rule.ID)
			}
			for _, term := range rule.Terms {
				if term != strings.ToLower(term) {
					t.Errorf("claim rule %q term %q is not lowercase", rule.ID, term)
				}
			}
		}
	})

	t.Run("free and low claims carry a threshold", func(t *testing.T) {
		for _, rule := range catalog.Claims {
			switch rule.Family {
			case domain.ClaimFree, domain.ClaimLow:
				if rule.MaxAmount <= 0 {
					t.Errorf("claim rule %q (%s) has no positive MaxAmount", rule.ID, rule.Family)
				}
				if rule.Nutrient == "" {
					t.Errorf("claim rule %q (%s) names no nutrient", rule.ID, rule.Family)
				}
			}
		}
	})

	t.Run("source-level claims target nutrients with a Daily Value", func(t *testing.T) {
		for _, rule := range catalog.Claims {
			switch rule.Family {
			case domain.ClaimGoodSource, domain.ClaimHigh:
				if _, ok := DailyValue(rule.Nutrient); !ok {
					t.Errorf("claim rule %q targets %s, which has no Daily Value reference", rule.ID, rule.Nutrient)
				}
			}
		}
	})

	t.Run("format bands are declared largest-first and end at zero", func(t *testing.T) {
		bands := catalog.Format.AreaBand
		if len(bands) == 0 {
			t.Fatal("no format bands defined")
		}
		for i := 1; i < len(bands); i++ {
			if bands[i].MinArea >= bands[i-1].MinArea {
				t.Errorf("band %d (min %v) is not below band %d (min %v)",
					i, bands[i].MinArea, i-1, bands[i-1].MinArea)
			}
		}
		if bands[len(bands)-1].MinArea != 0 {
			t.Errorf("last band min = %v, want 0 so every area resolves", bands[len(bands)-1].MinArea)
		}
	})

	t.Run("mandatory rule covers all fifteen nutrients", func(t *testing.T) {
		if got := len(catalog.Mandatory.Nutrients); got != len(domain.AllNutrients) {
			t.Errorf("mandatory rule lists %d nutrients, want %d", got, len(domain.AllNutrients))
		}
	})
}

func TestRACCCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool, len(raccCatalog))
	for _, c := range raccCatalog {
		if c.ID == "" || c.Description == "" {
			t.Errorf("category %+v is missing id or description", c)
		}
		if seen[c.ID] {
			t.Errorf("duplicate RACC category id %q", c.ID)
		}
		seen[c.ID] = true
		if c.ReferenceAmount <= 0 {
			t.Errorf("category %q has non-positive reference amount %v", c.ID, c.ReferenceAmount)
		}
		if c.Unit != domain.RACCGrams && c.Unit != domain.RACCMilliliters {
			t.Errorf("category %q has unrecognized unit %q", c.ID, c.Unit)
		}
		if c.Citation == "" {
			t.Errorf("category %q has no citation", c.ID)
		}
	}
}
