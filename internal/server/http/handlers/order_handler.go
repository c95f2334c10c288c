package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/skobelin/paytrack/internal/domain/errors"
	"github.com/skobelin/paytrack/internal/domain/model"
	"github.com/skobelin/paytrack/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]model.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	caller := CurrentIdentity(c)
	order, err := h.facade.CreateOrder(c.Request.Context(), caller.UserID, req.OrderID, items, req.TotalAmount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrDuplicateOrderID):
			abortWithError(c, http.StatusConflict, "orderId already exists")
		case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, domainErrors.ErrInvalidOrderRef):
			abortWithError(c, http.StatusBadRequest, "invalid order data")
		default:
			abortWithError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders. Non-admin callers only see their own orders.
func (h *OrderHandler) List(c *gin.Context) {
	var statusFilter *model.OrderStatus
	if raw, ok := c.GetQuery("status"); ok {
		status := model.OrderStatus(raw)
		if !status.Valid() {
			abortWithError(c, http.StatusBadRequest, "invalid status filter")
			return
		}
		statusFilter = &status
	}

	orders, err := h.facade.Orders(c.Request.Context(), CurrentIdentity(c), statusFilter)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal error")
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /api/orders/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), CurrentIdentity(c), orderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "order not found")
		case errors.Is(err, domainErrors.ErrForbidden):
			abortWithError(c, http.StatusForbidden, "forbidden")
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			abortWithError(c, http.StatusBadRequest, "invalid status")
		default:
			abortWithError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
