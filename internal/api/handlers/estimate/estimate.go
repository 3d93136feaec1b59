package estimate

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"calorie-estimator/internal/core/estimate"
	"calorie-estimator/internal/core/estimate/cache"
	"calorie-estimator/internal/pkg/common"
)

// EstimateRequest calorie estimation request
type EstimateRequest struct {
	MealText string `json:"meal_text" binding:"required"`
}

// EstimateResponse calorie estimation response envelope
type EstimateResponse struct {
	EstimateID string           `json:"estimate_id"`
	Cached     bool             `json:"cached"`
	Result     *estimate.Result `json:"result"`
}

// ClarifyRequest vague quantity detection request
type ClarifyRequest struct {
	MealText string `json:"meal_text" binding:"required"`
}

// ClarifyResponse vague quantity detection response
type ClarifyResponse struct {
	NeedsClarification bool                    `json:"needs_clarification"`
	Clarification      *estimate.VagueQuantity `json:"clarification"`
}

// HandleEstimate handles POST /api/v1/estimate
func HandleEstimate(store cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
			c.Header("X-Request-ID", requestID)
		}

		var req EstimateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogError("Invalid request format",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		if strings.TrimSpace(req.MealText) == "" {
			c.JSON(common.ErrEmptyMealText.Status, common.ErrorResponse{
				Code:    common.ErrEmptyMealText.Code,
				Message: common.ErrEmptyMealText.Message,
			})
			return
		}

		common.LogInfo("Processing estimate request",
			zap.String("request_id", requestID),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("meal_text_length", len(req.MealText)),
		)

		if store != nil {
			if cached, err := store.Get(c.Request.Context(), req.MealText); err == nil && cached != nil {
				common.LogCacheHit("estimate", requestID)
				c.JSON(http.StatusOK, EstimateResponse{
					EstimateID: requestID,
					Cached:     true,
					Result:     cached,
				})
				return
			}
			common.LogCacheMiss("estimate", requestID)
		}

		result := estimate.Estimate(req.MealText)

		if store != nil {
			if err := store.Set(c.Request.Context(), req.MealText, result); err != nil {
				common.LogWarn("Failed to cache estimate result",
					zap.Error(err),
					zap.String("request_id", requestID),
				)
			}
		}

		common.LogInfo("Estimate request completed",
			zap.String("request_id", requestID),
			zap.Int("total_calories", result.TotalCalories),
			zap.Int("matched_food_count", result.MatchedFoodCount),
			zap.String("confidence", string(result.Confidence)),
		)

		c.JSON(http.StatusOK, EstimateResponse{
			EstimateID: requestID,
			Cached:     false,
			Result:     result,
		})
	}
}

// HandleClarify handles POST /api/v1/estimate/clarify
func HandleClarify() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
			c.Header("X-Request-ID", requestID)
		}

		var req ClarifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogError("Invalid request format",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		vague := estimate.DetectVagueQuantity(req.MealText)

		common.LogInfo("Clarify request completed",
			zap.String("request_id", requestID),
			zap.Bool("needs_clarification", vague != nil),
		)

		c.JSON(http.StatusOK, ClarifyResponse{
			NeedsClarification: vague != nil,
			Clarification:      vague,
		})
	}
}
