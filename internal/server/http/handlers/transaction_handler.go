package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/skobelin/paytrack/internal/domain/errors"
	"github.com/skobelin/paytrack/internal/server/http/dto"
)

// TransactionHandler manages settlement endpoints.
type TransactionHandler struct {
	facade TransactionFacade
}

// NewTransactionHandler constructs TransactionHandler.
func NewTransactionHandler(facade TransactionFacade) *TransactionHandler {
	return &TransactionHandler{facade: facade}
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.facade.CreateTransaction(c.Request.Context(), req.TransactionID, req.OrderID, req.Amount, req.PaymentMethod, req.Timestamp)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrderRef):
			abortWithError(c, http.StatusBadRequest, "invalid orderId")
		case errors.Is(err, domainErrors.ErrDuplicateTransactionID):
			abortWithError(c, http.StatusConflict, "transactionId already exists")
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			abortWithError(c, http.StatusBadRequest, "invalid amount")
		default:
			abortWithError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.JSON(http.StatusCreated, toTransactionResponse(*tx))
}

// List handles GET /api/transactions. Admin access is enforced by the
// router's role gate.
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.facade.Transactions(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal error")
		return
	}

	response := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, toTransactionResponse(tx))
	}

	c.JSON(http.StatusOK, response)
}
