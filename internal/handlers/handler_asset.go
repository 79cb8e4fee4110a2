package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soildynamics/geoledger/internal/apperrors"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
	"github.com/soildynamics/geoledger/internal/dto"
	"github.com/soildynamics/geoledger/internal/middleware"
)

// assetHandler handles HTTP requests for the fixed-asset lifecycle.
type assetHandler struct {
	postingService portssvc.PostingService
	depreciation   portssvc.DepreciationCalculator
}

func newAssetHandler(ps portssvc.PostingService, dc portssvc.DepreciationCalculator) *assetHandler {
	return &assetHandler{
		postingService: ps,
		depreciation:   dc,
	}
}

// registerAssetRoutes registers routes related to fixed assets.
func registerAssetRoutes(rg *gin.RouterGroup, postingService portssvc.PostingService, depreciation portssvc.DepreciationCalculator) {
	h := newAssetHandler(postingService, depreciation)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.acquireAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:assetID", h.getAsset)
		assets.PUT("/:assetID/value", h.adjustAssetValue)
		assets.PUT("/:assetID/depreciation", h.adjustAssetDepreciation)
		assets.POST("/:assetID/dispose", h.disposeAsset)
		assets.GET("/:assetID/schedule", h.getDepreciationSchedule)
	}
}

// writePostingError maps posting-engine errors to HTTP responses.
func writePostingError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Posting operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// acquireAsset godoc
// @Summary Register a fixed asset
// @Description Registers a fixed asset and posts its balanced acquisition entry, including catch-up depreciation for assets acquired in the past
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.AcquireAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to acquire asset"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) acquireAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AcquireAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AcquireAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, _, err := h.postingService.AcquireAsset(c.Request.Context(), req, userID)
	if err != nil {
		writePostingError(c, logger, err, "acquire asset")
		return
	}

	logger.Info("Asset acquired", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List all fixed assets
// @Tags assets
// @Produce json
// @Success 200 {array} dto.AssetResponse
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.postingService.ListAssets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list assets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}

// getAsset godoc
// @Summary Get a fixed asset by ID
// @Tags assets
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Security BearerAuth
// @Router /assets/{assetID} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	asset, err := h.postingService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		writePostingError(c, logger, err, "retrieve asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// adjustAssetValue godoc
// @Summary Revalue a fixed asset
// @Description Sets a new asset value and posts the balanced revaluation delta. A zero delta posts nothing.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param adjustment body dto.AdjustAssetValueRequest true "New value"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to adjust asset value"
// @Security BearerAuth
// @Router /assets/{assetID}/value [put]
func (h *assetHandler) adjustAssetValue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.AdjustAssetValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustAssetValue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, _, err := h.postingService.AdjustAssetValue(c.Request.Context(), assetID, req.NewValue, userID)
	if err != nil {
		writePostingError(c, logger, err, "adjust asset value")
		return
	}

	logger.Info("Asset value adjusted", slog.String("asset_id", assetID))
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// adjustAssetDepreciation godoc
// @Summary Catch up accumulated depreciation
// @Description Raises accumulated depreciation to the given figure and posts the delta. A non-positive delta is a no-op.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param adjustment body dto.AdjustAssetDepreciationRequest true "New accumulated depreciation"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to adjust depreciation"
// @Security BearerAuth
// @Router /assets/{assetID}/depreciation [put]
func (h *assetHandler) adjustAssetDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.AdjustAssetDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustAssetDepreciation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, _, err := h.postingService.AdjustAssetDepreciation(c.Request.Context(), assetID, req.NewAccumulatedDepreciation, userID)
	if err != nil {
		writePostingError(c, logger, err, "adjust depreciation")
		return
	}

	logger.Info("Asset depreciation adjusted", slog.String("asset_id", assetID))
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// disposeAsset godoc
// @Summary Dispose of a fixed asset
// @Description Clears remaining book value to disposal loss, reverses accumulated depreciation, and removes the asset, all atomically
// @Tags assets
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.DisposalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to dispose asset"
// @Security BearerAuth
// @Router /assets/{assetID}/dispose [post]
func (h *assetHandler) disposeAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	legs, err := h.postingService.DisposeAsset(c.Request.Context(), assetID, userID)
	if err != nil {
		writePostingError(c, logger, err, "dispose asset")
		return
	}

	logger.Info("Asset disposed", slog.String("asset_id", assetID), slog.Int("leg_count", len(legs)))
	c.JSON(http.StatusOK, dto.DisposalResponse{
		AssetID:      assetID,
		Transactions: dto.ToTransactionResponses(legs),
	})
}

// getDepreciationSchedule godoc
// @Summary Get the monthly depreciation schedule for an asset
// @Description Returns the full straight-line monthly schedule; the final period is adjusted so cumulative depreciation equals asset value exactly
// @Tags assets
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to compute schedule"
// @Security BearerAuth
// @Router /assets/{assetID}/schedule [get]
func (h *assetHandler) getDepreciationSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	asset, err := h.postingService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		writePostingError(c, logger, err, "retrieve asset")
		return
	}

	schedule, err := h.depreciation.MonthlySchedule(*asset)
	if err != nil {
		writePostingError(c, logger, err, "compute schedule")
		return
	}

	resp := dto.ScheduleResponse{AssetID: assetID}
	for period := range schedule {
		resp.Periods = append(resp.Periods, dto.ToSchedulePeriodResponse(period))
	}

	c.JSON(http.StatusOK, resp)
}
