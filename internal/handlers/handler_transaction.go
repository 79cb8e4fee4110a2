package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
	"github.com/soildynamics/geoledger/internal/dto"
	"github.com/soildynamics/geoledger/internal/middleware"
)

// transactionHandler handles HTTP requests for ledger reads.
type transactionHandler struct {
	transactionService portssvc.TransactionService
}

func newTransactionHandler(ts portssvc.TransactionService) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers ledger read routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionService) {
	h := newTransactionHandler(transactionService)

	rg.GET("/transactions", h.listTransactions)
}

// listTransactionsQuery binds query parameters for the transaction listing.
type listTransactionsQuery struct {
	AccountCode string  `form:"accountCode" binding:"required"`
	Limit       int     `form:"limit,default=20"`
	NextToken   *string `form:"nextToken"`
}

// listTransactions godoc
// @Summary List ledger transactions for an account
// @Description Returns a page of transactions for one account code, newest first, with an opaque continuation token
// @Tags transactions
// @Produce json
// @Param accountCode query string true "Account code"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Missing account code or invalid token"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query listTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	params := dto.ListTransactionsParams{
		Limit:     query.Limit,
		NextToken: query.NextToken,
	}

	resp, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), query.AccountCode, params)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("account_code", query.AccountCode), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
