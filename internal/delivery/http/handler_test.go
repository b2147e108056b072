package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelforge/backend/config"
	"github.com/labelforge/backend/internal/domain"
	"github.com/labelforge/backend/internal/infrastructure/cache"
	"github.com/labelforge/backend/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubFDCClient is a canned FDCClient for handler tests.
type stubFDCClient struct {
	food *domain.FDCFood
	err  error
}

func (s *stubFDCClient) GetFoodDetails(ctx context.Context, fdcID string) (*domain.FDCFood, error) {
	return s.food, s.err
}

func testRouter(fdcClient domain.FDCClient) *gin.Engine {
	servingService := usecase.NewServingSizeService()
	handler := NewHandler(
		usecase.NewValidationService(servingService),
		usecase.NewRoundingService(),
		servingService,
		fdcClient,
		cache.NewMemoryCache(),
		time.Minute,
	)

	cfg := &config.Config{}
	cfg.Server.Environment = "test"
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.RateLimit.PerIP = 1000

	return SetupRouter(cfg, handler)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// reportView decodes report responses without the typed details payloads.
type reportView struct {
	OverallStatus string `json:"overallStatus"`
	ErrorsCount   int    `json:"errorsCount"`
	WarningsCount int    `json:"warningsCount"`
	ValidatedAt   string `json:"validatedAt"`
	Results       []struct {
		RuleID   string `json:"ruleId"`
		Status   string `json:"status"`
		Severity string `json:"severity"`
	} `json:"results"`
}

func validLabelPayload() map[string]interface{} {
	return map[string]interface{}{
		"nutritionData": map[string]float64{
			"calories": 230, "totalFat": 8, "saturatedFat": 1, "transFat": 0,
			"cholesterol": 0, "sodium": 160, "totalCarbohydrates": 37,
			"dietaryFiber": 4, "totalSugars": 12, "addedSugars": 10,
			"protein": 3, "vitaminD": 2, "calcium": 260, "iron": 8,
			"potassium": 235,
		},
		"servingSizeG":           55,
		"servingSizeHousehold":   "2/3 cup",
		"servingsPerContainer":   8,
		"format":                 "tabular",
		"packageSurfaceAreaSqIn": 30,
	}
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(nil)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "labelforge-backend", body["service"])
}

func TestValidateLabelEndpoint(t *testing.T) {
	router := testRouter(nil)

	t.Run("valid label returns a report", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/labels/validate", validLabelPayload())
		require.Equal(t, http.StatusOK, w.Code)

		var report reportView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, string(domain.OverallCompliant), report.OverallStatus)
		assert.Zero(t, report.ErrorsCount)
		assert.NotEmpty(t, report.Results)
	})

	t.Run("missing nutrition data is a 400", func(t *testing.T) {
		payload := validLabelPayload()
		delete(payload, "nutritionData")

		w := doJSON(t, router, http.MethodPost, "/api/v1/labels/validate", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unrecognized format is a 400", func(t *testing.T) {
		payload := validLabelPayload()
		payload["format"] = "circular"

		w := doJSON(t, router, http.MethodPost, "/api/v1/labels/validate", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/labels/validate", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repeated requests replay the memoized report", func(t *testing.T) {
		payload := validLabelPayload()

		first := doJSON(t, router, http.MethodPost, "/api/v1/labels/validate", payload)
		require.Equal(t, http.StatusOK, first.Code)
		second := doJSON(t, router, http.MethodPost, "/api/v1/labels/validate", payload)
		require.Equal(t, http.StatusOK, second.Code)

		// Identical timestamps prove the second response came from the cache.
		var r1, r2 reportView
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &r1))
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &r2))
		assert.Equal(t, r1.ValidatedAt, r2.ValidatedAt)
	})
}

func TestRoundLabelEndpoint(t *testing.T) {
	router := testRouter(nil)

	t.Run("rounds raw amounts to declarable values", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/labels/round", map[string]interface{}{
			"nutritionData": map[string]float64{
				"calories":    234,
				"totalFat":    4.26,
				"cholesterol": 3,
				"sodium":      166,
			},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Rounded *domain.RoundedNutritionData `json:"roundedNutritionData"`
			Display map[string]string            `json:"display"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		calories := body.Rounded.Get(domain.NutrientCalories)
		require.NotNil(t, calories)
		assert.Equal(t, 230.0, calories.Amount)
		assert.Equal(t, "4.5", body.Display[string(domain.NutrientTotalFat)])
		assert.Equal(t, "less than 5", body.Display[string(domain.NutrientCholesterol)])
		assert.NotContains(t, body.Display, string(domain.NutrientProtein))
	})

	t.Run("missing nutrition data is a 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/labels/round", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLookupNutritionEndpoint(t *testing.T) {
	t.Run("without a configured client returns 503", func(t *testing.T) {
		router := testRouter(nil)

		w := doJSON(t, router, http.MethodPost, "/api/v1/nutrition/lookup", map[string]string{"fdcId": "123"})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("maps a found record onto label nutrients", func(t *testing.T) {
		router := testRouter(&stubFDCClient{
			food: &domain.FDCFood{
				FdcID:       173410,
				Description: "Bread, whole-wheat",
				Nutrients: []domain.FDCNutrient{
					{Nutrient: domain.FDCNutrientRef{ID: 1008}, Amount: 252},
					{Nutrient: domain.FDCNutrientRef{ID: 1003}, Amount: 12.3},
				},
			},
		})

		w := doJSON(t, router, http.MethodPost, "/api/v1/nutrition/lookup", map[string]string{"fdcId": "173410"})
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			FdcID         int                   `json:"fdcId"`
			Description   string                `json:"description"`
			Basis         string                `json:"basis"`
			NutritionData *domain.NutritionData `json:"nutritionData"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 173410, body.FdcID)
		assert.Equal(t, "per_100g", body.Basis)
		calories, ok := body.NutritionData.Get(domain.NutrientCalories)
		require.True(t, ok)
		assert.Equal(t, 252.0, calories)
	})

	t.Run("unknown record returns 404", func(t *testing.T) {
		router := testRouter(&stubFDCClient{err: domain.ErrFoodNotFound})

		w := doJSON(t, router, http.MethodPost, "/api/v1/nutrition/lookup", map[string]string{"fdcId": "999"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("upstream failure returns 502", func(t *testing.T) {
		router := testRouter(&stubFDCClient{err: domain.ErrFDCAPIFailure})

		w := doJSON(t, router, http.MethodPost, "/api/v1/nutrition/lookup", map[string]string{"fdcId": "123"})
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("missing fdcId is a 400", func(t *testing.T) {
		router := testRouter(&stubFDCClient{})

		w := doJSON(t, router, http.MethodPost, "/api/v1/nutrition/lookup", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListRACCCategoriesEndpoint(t *testing.T) {
	router := testRouter(nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/reference/racc-categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []domain.RACCCategory `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.GreaterOrEqual(t, len(body.Categories), 12)
	assert.Equal(t, "cereal-ready-to-eat", body.Categories[0].ID)
}

func TestGetRACCCategoryEndpoint(t *testing.T) {
	router := testRouter(nil)

	t.Run("known category", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/reference/racc-categories/snack-chips", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var category domain.RACCCategory
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
		assert.Equal(t, "snack-chips", category.ID)
		assert.Equal(t, 30.0, category.ReferenceAmount)
	})

	t.Run("unknown category is a 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/reference/racc-categories/no-such", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
