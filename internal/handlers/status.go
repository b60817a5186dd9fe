package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nut-orders-backend/internal/models"
	"nut-orders-backend/internal/services"
)

type StatusHandler struct {
	orderService *services.OrderService
}

func NewStatusHandler(orderService *services.OrderService) *StatusHandler {
	return &StatusHandler{
		orderService: orderService,
	}
}

// UpdateStatus godoc
// @Summary     Update order status
// @Description Moves an order to another lifecycle status. Orders moved to completed drop out of the order list.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       request body models.UpdateStatusRequest true "New status"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/status [patch]
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, "failed to update status", err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}
