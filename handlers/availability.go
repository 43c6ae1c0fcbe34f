package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shelterhub/metrics"
	"shelterhub/models"
	"shelterhub/services/availability"
	"shelterhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityHandler serves availability queries. Results are cached in
// Redis for a short TTL keyed on the full request, so bursts of identical
// queries (a staff member flipping between dates and back) skip the engine.
type AvailabilityHandler struct {
	Engine   availability.Engine
	Cache    *redis.Client
	CacheTTL time.Duration
}

// NewAvailabilityHandler creates a new AvailabilityHandler. Cache may be nil,
// in which case every query computes fresh.
func NewAvailabilityHandler(engine availability.Engine, cache *redis.Client, cacheTTL time.Duration) *AvailabilityHandler {
	return &AvailabilityHandler{
		Engine:   engine,
		Cache:    cache,
		CacheTTL: cacheTTL,
	}
}

// QueryHandler computes the bookable windows for one day.
func (ah *AvailabilityHandler) QueryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncAvailabilityRequest("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	// Create a cache key based on the JSON representation of the request.
	cacheKey := ""
	if ah.Cache != nil && ah.CacheTTL > 0 {
		reqBytes, err := json.Marshal(req)
		if err == nil {
			cacheKey = fmt.Sprintf("%s%s:%x", utils.AvailabilityCachePrefix, orgID, reqBytes)
			cached, err := ah.Cache.Get(c.Request.Context(), cacheKey).Result()
			if err == nil && cached != "" {
				var result models.AvailabilityResult
				if err := json.Unmarshal([]byte(cached), &result); err == nil {
					metrics.IncAvailabilityRequest("cache_hit")
					c.JSON(http.StatusOK, result)
					return
				}
				// If unmarshal fails, we fall through to re-computation.
			}
		}
	}

	result, err := ah.Engine.ComputeAvailability(c.Request.Context(), orgID, req)
	if err != nil {
		metrics.IncAvailabilityRequest("error")
		logger.Error("Availability computation failed",
			zap.String("orgId", orgID), zap.String("date", req.Date), zap.Error(err))
		respondError(c, err)
		return
	}

	metrics.IncAvailabilityRequest("ok")
	metrics.ObserveSlotsReturned(len(result.Slots))

	if cacheKey != "" {
		if payload, err := json.Marshal(result); err == nil {
			if err := ah.Cache.Set(c.Request.Context(), cacheKey, payload, ah.CacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache availability result", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, result)
}
