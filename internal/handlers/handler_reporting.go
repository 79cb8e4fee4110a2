package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soildynamics/geoledger/internal/apperrors"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
	"github.com/soildynamics/geoledger/internal/dto"
	"github.com/soildynamics/geoledger/internal/middleware"
)

// reportingHandler handles HTTP requests for WIP, profitability, and
// cash-flow reporting.
type reportingHandler struct {
	wipService           portssvc.WIPService
	cashFlowService      portssvc.CashFlowService
	profitabilityService portssvc.ProfitabilityService
}

func newReportingHandler(wip portssvc.WIPService, cashFlow portssvc.CashFlowService, profitability portssvc.ProfitabilityService) *reportingHandler {
	return &reportingHandler{
		wipService:           wip,
		cashFlowService:      cashFlow,
		profitabilityService: profitability,
	}
}

// registerReportingRoutes registers project and cash-flow reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, wip portssvc.WIPService, cashFlow portssvc.CashFlowService, profitability portssvc.ProfitabilityService) {
	h := newReportingHandler(wip, cashFlow, profitability)

	projects := rg.Group("/projects")
	{
		projects.GET("/wip", h.recalculateWIP)
		projects.GET("/profitability", h.getPortfolio)
		projects.GET("/:projectID/wip", h.getProjectWIP)
		projects.GET("/:projectID/profitability", h.getProjectProfitability)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/cashflow", h.getCashFlowReport)
	}
}

// recalculateWIP godoc
// @Summary Recalculate earned-value WIP for all projects
// @Description Computes earned-value work-in-progress for every project. Idempotent over the same snapshot.
// @Tags reporting
// @Produce json
// @Success 200 {array} dto.ProjectWIPResponse
// @Failure 500 {object} map[string]string "Failed to recalculate WIP"
// @Security BearerAuth
// @Router /projects/wip [get]
func (h *reportingHandler) recalculateWIP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	wips, err := h.wipService.RecalculateAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to recalculate WIP", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recalculate WIP"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectWIPResponses(wips))
}

// getProjectWIP godoc
// @Summary Get earned-value WIP for one project
// @Tags reporting
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectWIPResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to compute WIP"
// @Security BearerAuth
// @Router /projects/{projectID}/wip [get]
func (h *reportingHandler) getProjectWIP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	wip, err := h.wipService.ProjectWIP(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logger.Error("Failed to compute project WIP", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute WIP"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectWIPResponse(wip))
}

// getProjectProfitability godoc
// @Summary Get the profitability roll-up for one project
// @Tags reporting
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectProfitabilityResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to compute profitability"
// @Security BearerAuth
// @Router /projects/{projectID}/profitability [get]
func (h *reportingHandler) getProjectProfitability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	result, err := h.profitabilityService.ProjectProfitability(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logger.Error("Failed to compute profitability", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute profitability"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectProfitabilityResponse(result))
}

// getPortfolio godoc
// @Summary Get the portfolio profitability summary
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.PortfolioSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute portfolio summary"
// @Security BearerAuth
// @Router /projects/profitability [get]
func (h *reportingHandler) getPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.profitabilityService.Portfolio(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute portfolio summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute portfolio summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(summary))
}

// getCashFlowReport godoc
// @Summary Get the cash-flow report for a period
// @Description Classifies ledger transactions dated within [from, to] into operating, investing, and financing activities. Transactions on unmapped account codes are excluded but counted.
// @Tags reporting
// @Produce json
// @Param from query string true "Period start (RFC 3339 date)"
// @Param to query string true "Period end (RFC 3339 date)"
// @Success 200 {object} dto.CashFlowReportResponse
// @Failure 400 {object} map[string]string "Invalid period bounds"
// @Failure 500 {object} map[string]string "Failed to generate cash-flow report"
// @Security BearerAuth
// @Router /reports/cashflow [get]
func (h *reportingHandler) getCashFlowReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date: " + err.Error()})
		return
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date: " + err.Error()})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must not precede 'from'"})
		return
	}

	report, err := h.cashFlowService.Report(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to generate cash-flow report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate cash-flow report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowReportResponse(report, from, to))
}

// parseDateParam accepts either a bare date or a full RFC 3339 timestamp.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
