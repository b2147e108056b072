package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labelforge/backend/internal/domain"
	"github.com/labelforge/backend/internal/infrastructure/fdc"
	"github.com/labelforge/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	validationService *usecase.ValidationService
	roundingService   *usecase.RoundingService
	servingService    *usecase.ServingSizeService
	fdcClient         domain.FDCClient
	reportCache       domain.CacheRepository
	cacheTTL          time.Duration
}

// NewHandler creates a new HTTP handler. fdcClient may be nil when no API
// key is configured; the lookup endpoint then returns 503.
func NewHandler(
	validationService *usecase.ValidationService,
	roundingService *usecase.RoundingService,
	servingService *usecase.ServingSizeService,
	fdcClient domain.FDCClient,
	reportCache domain.CacheRepository,
	cacheTTL time.Duration,
) *Handler {
	return &Handler{
		validationService: validationService,
		roundingService:   roundingService,
		servingService:    servingService,
		fdcClient:         fdcClient,
		reportCache:       reportCache,
		cacheTTL:          cacheTTL,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labelforge-backend",
		"version": "1.0.0",
	})
}

// ValidateLabel runs the full compliance validation over a label and
// returns the report. Reports are deterministic, so responses are
// memoized by a digest of the request payload.
func (h *Handler) ValidateLabel(c *gin.Context) {
	var label domain.LabelData
	if err := c.ShouldBindJSON(&label); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	cacheKey, keyOK := reportCacheKey(&label)
	if keyOK && h.reportCache != nil {
		if cached, err := h.reportCache.Get(c.Request.Context(), cacheKey); err == nil {
			if report, ok := cached.(*domain.ComplianceReport); ok {
				c.JSON(http.StatusOK, report)
				return
			}
		}
	}

	report, err := h.validationService.ValidateLabel(&label)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLabel) || errors.Is(err, domain.ErrMissingNutritionData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if keyOK && h.reportCache != nil {
		if err := h.reportCache.Set(c.Request.Context(), cacheKey, report, h.cacheTTL); err != nil {
			log.Printf("[HTTP] report cache set failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, report)
}

// roundRequest is the body of the rounding endpoint.
type roundRequest struct {
	NutritionData *domain.NutritionData `json:"nutritionData" binding:"required"`
}

// RoundLabel converts raw per-serving nutrient amounts into the values
// the label is permitted to declare.
func (h *Handler) RoundLabel(c *gin.Context) {
	var req roundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	rounded := h.roundingService.RoundAll(req.NutritionData)

	// Declared display strings alongside the structured values, in panel order.
	display := make(map[string]string, len(domain.AllNutrients))
	for _, n := range domain.AllNutrients {
		if v := rounded.Get(n); v != nil {
			display[string(n)] = v.Display()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"roundedNutritionData": rounded,
		"display":              display,
	})
}

// lookupRequest is the body of the nutrient-prefill endpoint.
type lookupRequest struct {
	FdcID string `json:"fdcId" binding:"required"`
}

// LookupNutrition fetches a FoodData Central record and maps it onto the
// 15 label nutrients. Amounts are per 100 g; the caller must scale to the
// declared serving before validating.
func (h *Handler) LookupNutrition(c *gin.Context) {
	if h.fdcClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": domain.ErrFDCNotConfigured.Error()})
		return
	}

	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	food, err := h.fdcClient.GetFoodDetails(c.Request.Context(), req.FdcID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fdcId":         food.FdcID,
		"description":   food.Description,
		"basis":         "per_100g",
		"nutritionData": fdc.MapToNutritionData(food),
	})
}

// ListRACCCategories returns the RACC reference catalog.
func (h *Handler) ListRACCCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.servingService.ListRACCCategories(),
	})
}

// GetRACCCategory returns a single RACC reference category by id.
func (h *Handler) GetRACCCategory(c *gin.Context) {
	category, ok := h.servingService.LookupRACC(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrRACCCategoryNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, category)
}

// reportCacheKey derives a stable digest for a validation request.
func reportCacheKey(label *domain.LabelData) (string, bool) {
	payload, err := json.Marshal(label)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(payload)
	return "report:" + hex.EncodeToString(sum[:]), true
}
