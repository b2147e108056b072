package domain

import "errors"

var (
	// ErrInvalidLabel is returned when the label input is structurally
	// malformed (nil label, unrecognized format enum). Regulatory findings
	// never surface as errors; this is strictly for caller bugs.
	ErrInvalidLabel = errors.New("invalid label data")

	// ErrMissingNutritionData is returned when a label carries no
	// nutrition_data object at all.
	ErrMissingNutritionData = errors.New("label has no nutrition data")

	// ErrRACCCategoryNotFound is returned when a label references an RACC
	// category id that is not in the catalog.
	ErrRACCCategoryNotFound = errors.New("RACC category not found")

	// ErrCacheMiss is returned when a report is not found in cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrFoodNotFound is returned when an FDC ID cannot be resolved.
	ErrFoodNotFound = errors.New("food not found in FoodData Central")

	// ErrFDCAPIFailure is returned when a FoodData Central request fails.
	ErrFDCAPIFailure = errors.New("FoodData Central request failed")

	// ErrFDCNotConfigured is returned when the lookup endpoint is called
	// without an API key configured.
	ErrFDCNotConfigured = errors.New("FoodData Central API key not configured")
)
