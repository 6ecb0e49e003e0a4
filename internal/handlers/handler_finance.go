package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

type financeHandler struct {
	financeService *services.FinanceService
}

// CreateTransaction godoc
// @Summary Record a manual ledger entry
// @Description Records an income or expense entry. Reservation-linked entries
// are created automatically by the booking and closing flows.
// @Tags finance
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *financeHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	txn, err := h.financeService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// GetTransaction godoc
// @Summary Get a ledger entry by ID
// @Tags finance
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *financeHandler) GetTransaction(c *gin.Context) {
	txn, err := h.financeService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// ListTransactions godoc
// @Summary List ledger entries
// @Tags finance
// @Produce json
// @Param kind query string false "INCOME or EXPENSE"
// @Param category query string false "Filter by category"
// @Param from query string false "Period start (YYYY-MM-DD)"
// @Param to query string false "Period end (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *financeHandler) ListTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	from, err := parseDateParam("from", params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	to, err := parseDateParam("to", params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txns, err := h.financeService.ListTransactions(c.Request.Context(), portsrepo.ListTransactionsFilter{
		Kind:     domain.TransactionKind(params.Kind),
		Category: params.Category,
		From:     from,
		To:       to,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		out[i] = dto.ToTransactionResponse(&txns[i])
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: out})
}

// UpdateTransaction godoc
// @Summary Update a ledger entry
// @Tags finance
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *financeHandler) UpdateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	txn, err := h.financeService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// DeleteTransaction godoc
// @Summary Delete a ledger entry
// @Description Deletes a manual entry. Entries tied to a reservation are
// protected and cannot be removed.
// @Tags finance
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *financeHandler) DeleteTransaction(c *gin.Context) {
	if err := h.financeService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary godoc
// @Summary Summarize income and expenses
// @Description Totals income and expenses over a period and returns the net.
// @Tags finance
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *financeHandler) Summary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	from, err := parseDateParam("from", params.From)
	if err != nil || from == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from date is required as YYYY-MM-DD"})
		return
	}
	to, err := parseDateParam("to", params.To)
	if err != nil || to == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to date is required as YYYY-MM-DD"})
		return
	}

	income, expense, net, err := h.financeService.Summarize(c.Request.Context(), *from, *to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{Income: income, Expense: expense, Net: net})
}

func registerFinanceRoutes(rg *gin.RouterGroup, financeService *services.FinanceService) {
	h := &financeHandler{financeService: financeService}
	txnRoutes := rg.Group("/transactions")
	{
		txnRoutes.POST("", h.CreateTransaction)
		txnRoutes.GET("", h.ListTransactions)
		txnRoutes.GET("/summary", h.Summary)
		txnRoutes.GET("/:id", h.GetTransaction)
		txnRoutes.PUT("/:id", h.UpdateTransaction)
		txnRoutes.DELETE("/:id", h.DeleteTransaction)
	}
}
