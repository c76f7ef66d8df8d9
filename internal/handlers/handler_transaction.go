package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mosaicsoft/bizbooks/internal/apperrors"
	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	portsrepo "github.com/mosaicsoft/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/mosaicsoft/bizbooks/internal/core/ports/services"
	"github.com/mosaicsoft/bizbooks/internal/dto"
	"github.com/mosaicsoft/bizbooks/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("/:id/approve", h.approveTransaction)
		transactions.POST("/:id/reject", h.rejectTransaction)
		transactions.POST("/:id/post", h.postTransaction)
		transactions.POST("/:id/reconcile", h.reconcileTransaction)
	}
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Creates a balanced transaction in DRAFT (or PENDING) status. Account balances are not affected until posting.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate transaction number"
// @Failure 422 {object} dto.UnbalancedResponse "Entries do not balance"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondTransactionError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a transaction with its entries
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		respondTransactionError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves transaction headers newest first, optionally filtered by status and type
// @Tags transactions
// @Produce  json
// @Param   status query string false "Filter by status" Enums(DRAFT, PENDING, APPROVED, REJECTED, POSTED)
// @Param   type query string false "Filter by transaction type"
// @Param   limit query int false "Maximum number of transactions to return" default(20)
// @Param   offset query int false "Number of transactions to skip" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := portsrepo.ListTransactionsFilter{}
	if params.Status != "" {
		status := domain.TransactionStatus(params.Status)
		filter.Status = &status
	}
	if params.Type != "" {
		txnType := domain.TransactionType(params.Type)
		filter.TransactionType = &txnType
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), filter, params.Limit, params.Offset)
	if err != nil {
		respondTransactionError(c, logger, err, "Failed to list transactions")
		return
	}

	resp := dto.ListTransactionsResponse{Transactions: make([]dto.TransactionResponse, len(txns))}
	for i := range txns {
		resp.Transactions[i] = dto.ToTransactionResponse(&txns[i])
	}
	c.JSON(http.StatusOK, resp)
}

// approveTransaction godoc
// @Summary Approve a transaction
// @Description Moves a DRAFT or PENDING transaction to APPROVED
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not in an approvable status"
// @Failure 500 {object} map[string]string "Failed to approve transaction"
// @Security BearerAuth
// @Router /transactions/{id}/approve [post]
func (h *transactionHandler) approveTransaction(c *gin.Context) {
	h.lifecycleAction(c, "Failed to approve transaction", h.transactionService.ApproveTransaction)
}

// rejectTransaction godoc
// @Summary Reject a transaction
// @Description Moves a not-yet-posted transaction to REJECTED. Rejection is terminal.
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is posted or already rejected"
// @Failure 500 {object} map[string]string "Failed to reject transaction"
// @Security BearerAuth
// @Router /transactions/{id}/reject [post]
func (h *transactionHandler) rejectTransaction(c *gin.Context) {
	h.lifecycleAction(c, "Failed to reject transaction", h.transactionService.RejectTransaction)
}

// postTransaction godoc
// @Summary Post a transaction to the ledger
// @Description Applies an APPROVED transaction to account balances atomically. Posted transactions are immutable.
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Account-level posting rule violated"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not APPROVED"
// @Failure 422 {object} dto.UnbalancedResponse "Entries no longer balance"
// @Failure 500 {object} map[string]string "Failed to post transaction"
// @Security BearerAuth
// @Router /transactions/{id}/post [post]
func (h *transactionHandler) postTransaction(c *gin.Context) {
	h.lifecycleAction(c, "Failed to post transaction", h.transactionService.PostTransaction)
}

// reconcileTransaction godoc
// @Summary Reconcile a transaction
// @Description Flags a POSTED transaction as reconciled. Reconciling twice is a no-op.
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not POSTED"
// @Failure 500 {object} map[string]string "Failed to reconcile transaction"
// @Security BearerAuth
// @Router /transactions/{id}/reconcile [post]
func (h *transactionHandler) reconcileTransaction(c *gin.Context) {
	h.lifecycleAction(c, "Failed to reconcile transaction", h.transactionService.ReconcileTransaction)
}

// lifecycleAction factors the shared shape of the lifecycle endpoints.
func (h *transactionHandler) lifecycleAction(c *gin.Context, fallback string, action func(ctx context.Context, transactionID string, actorUserID string) (*domain.Transaction, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := action(c.Request.Context(), transactionID, actorUserID)
	if err != nil {
		respondTransactionError(c, logger, err, fallback)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// respondTransactionError maps service errors to HTTP responses. Unbalanced
// entries get a structured 422 body with both totals and the delta.
func respondTransactionError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var unbalanced *apperrors.UnbalancedError
	switch {
	case errors.As(err, &unbalanced):
		logger.Warn("Unbalanced transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, dto.UnbalancedResponse{
			Error:       unbalanced.Error(),
			TotalDebit:  unbalanced.TotalDebit,
			TotalCredit: unbalanced.TotalCredit,
			Delta:       unbalanced.Delta(),
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidState), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Lifecycle conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
