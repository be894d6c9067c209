package handler

import (
	"github.com/gin-gonic/gin"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

// TransactionHandler handles ledger requests
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *logger.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService service.TransactionService, logger *logger.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// CreateTransactionRequest represents a new ledger entry
type CreateTransactionRequest struct {
	Type            string `json:"type" example:"income"`
	Amount          int64  `json:"amount" example:"150000"`
	Category        string `json:"category" example:"Iuran kebersihan"`
	Description     string `json:"description" example:"Iuran bulan Januari"`
	TransactionDate string `json:"transaction_date" example:"2025-01-31"`
	RTNumber        string `json:"rt_number" example:"01"`
}

// CreateTransaction handles POST /api/v1/transactions
// @Summary Record a transaction
// @Description Append an income or expense entry. transaction_date defaults to today.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "Transaction"
// @Success 201 {object} utils.APIResponse{data=models.Transaction} "Transaction created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Please authenticate."
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), service.CreateTransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.TransactionDate,
		RTNumber:    req.RTNumber,
		CreatedBy:   user.ID,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to create transaction")
		return
	}

	utils.CreatedResponse(c, "Transaction created successfully", transaction)
}

// ListTransactions handles GET /api/v1/transactions
// @Summary List transactions
// @Description Ledger entries newest first with optional year, search and RT filters
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year"
// @Param search query string false "Search in category and description"
// @Param rt_number query string false "RT number"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponse{data=[]response.TransactionListItem} "Transactions retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid year parameter"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	year, err := utils.GetOptionalIntQuery(c, "year")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid year parameter", err)
		return
	}
	page, limit := utils.GetPaginationParams(c)

	filter := models.TransactionFilter{
		Year:     year,
		Search:   c.Query("search"),
		RTNumber: c.Query("rt_number"),
	}

	items, total, err := h.transactionService.ListTransactions(c.Request.Context(), filter, page, limit)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get transactions")
		return
	}

	if items == nil {
		items = []*response.TransactionListItem{}
	}
	utils.PaginatedSuccessResponse(c, "Transactions retrieved successfully", items, page, limit, total)
}

// GetSummary handles GET /api/v1/transactions/summary
// @Summary Monthly summary
// @Description Income, expense and balance for a month. Defaults to the current month.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param rt_number query string false "RT number"
// @Success 200 {object} utils.APIResponse{data=response.TransactionSummaryResponse} "Summary retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid parameter"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/transactions/summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	year, err := utils.GetOptionalIntQuery(c, "year")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid year parameter", err)
		return
	}
	month, err := utils.GetOptionalIntQuery(c, "month")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid month parameter", err)
		return
	}

	summary, err := h.transactionService.GetSummary(c.Request.Context(), year, month, c.Query("rt_number"))
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get transaction summary")
		return
	}

	utils.SuccessResponse(c, "Summary retrieved successfully", summary)
}
