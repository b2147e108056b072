package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for report memoization. The
// validation core is deterministic, so callers may cache a report keyed
// by a digest of the request.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// FDCClient defines the interface for fetching food records from the USDA
// FoodData Central API. Used only by the delivery layer to prefill raw
// nutrient amounts; the validation core never fetches anything.
type FDCClient interface {
	GetFoodDetails(ctx context.Context, fdcID string) (*FDCFood, error)
}

// FDCFood is a food record from the FoodData Central API. Nutrient
// amounts are per 100 g (or 100 mL) of the food.
type FDCFood struct {
	FdcID       int           `json:"fdcId"`
	Description string        `json:"description"`
	DataType    string        `json:"dataType"`
	Nutrients   []FDCNutrient `json:"foodNutrients"`
}

// FDCNutrient is a single nutrient row from an FDC food record. Detail
// responses nest the id/name/unit under "nutrient".
type FDCNutrient struct {
	Nutrient FDCNutrientRef `json:"nutrient"`
	Amount   float64        `json:"amount"`
}

// FDCNutrientRef identifies the nutrient a row refers to.
type FDCNutrientRef struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}
