package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"nut-orders-backend/internal/models"
	"nut-orders-backend/internal/services"
)

type OrdersHandler struct {
	orderService *services.OrderService
}

func NewOrdersHandler(orderService *services.OrderService) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
	}
}

// ListOrders godoc
// @Summary     List open orders
// @Description Returns every order that is not completed, newest first, with buyer, seller, region and truck details. Search and sort run over the full result.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       q         query string false "Case-insensitive search over names, region, quality, quantity and truck"
// @Param       status    query string false "Only orders with this status"
// @Param       region_id query string false "Only orders in this region (UUID)"
// @Param       sort      query string false "Sort field"
// @Param       direction query string false "asc or desc"
// @Success     200 {object} models.OrderListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}
	params.Query = c.Query("q")
	h.respondWithOrders(c, params)
}

// SearchOrders godoc
// @Summary     Search orders
// @Description Search contract for the search page. The query parameter is q; an empty query returns every open order.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       q query string false "Search text"
// @Success     200 {object} models.OrderListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/search [get]
func (h *OrdersHandler) SearchOrders(c *gin.Context) {
	h.respondWithOrders(c, services.ListParams{Query: c.Query("q")})
}

func (h *OrdersHandler) respondWithOrders(c *gin.Context, params services.ListParams) {
	orders, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		respondError(c, "failed to list orders", err)
		return
	}

	responses := make([]models.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = models.NewOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, models.OrderListResponse{Orders: responses, Total: len(responses)})
}

func listParams(c *gin.Context) (services.ListParams, bool) {
	var params services.ListParams

	if status := c.Query("status"); status != "" {
		s := models.OrderStatus(status)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status", Message: status})
			return params, false
		}
		params.Filter.Status = s
	}

	if regionParam := c.Query("region_id"); regionParam != "" {
		regionID, err := uuid.Parse(regionParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid region_id"})
			return params, false
		}
		params.Filter.RegionID = &regionID
	}

	if sortParam := c.Query("sort"); sortParam != "" {
		field := services.SortField(sortParam)
		if !field.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid sort field", Message: sortParam})
			return params, false
		}
		params.Sort = &services.SortConfig{
			Field:     field,
			Direction: services.ParseSortDirection(c.Query("direction")),
		}
	}

	return params, true
}

// GetOrder godoc
// @Summary     Get order details
// @Description Returns one order with buyer, seller and region
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, "order not found", err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}

// GetDailyLoading godoc
// @Summary     Daily loading summary
// @Description Returns the per-day loading series with the total loaded and the quantity remaining
// @Tags        loading
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.LoadingSummaryResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id}/daily-loading [get]
func (h *OrdersHandler) GetDailyLoading(c *gin.Context) {
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, "order not found", err)
		return
	}

	c.JSON(http.StatusOK, services.SummarizeLoading(order))
}

// AddDailyLoading godoc
// @Summary     Record a loading day
// @Description Appends a positive quantity to the order's daily loading and returns the refreshed order
// @Tags        loading
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       request body models.AddLoadingRequest true "Pieces loaded"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/daily-loading [post]
func (h *OrdersHandler) AddDailyLoading(c *gin.Context) {
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	var req models.AddLoadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	order, err := h.orderService.EditDailyLoading(c.Request.Context(), orderID, services.AppendLoading(req.Quantity))
	if err != nil {
		respondError(c, "failed to update loading data", err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}

// RemoveDailyLoading godoc
// @Summary     Remove a loading day
// @Description Removes the entry at index from the order's daily loading and returns the refreshed order
// @Tags        loading
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       index path int true "Zero-based day index"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id}/daily-loading/{index} [delete]
func (h *OrdersHandler) RemoveDailyLoading(c *gin.Context) {
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid index"})
		return
	}

	order, err := h.orderService.EditDailyLoading(c.Request.Context(), orderID, services.RemoveLoadingAt(index))
	if err != nil {
		respondError(c, "failed to update loading data", err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}

// ListRegions godoc
// @Summary     List regions
// @Tags        regions
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.RegionsResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /regions [get]
func (h *OrdersHandler) ListRegions(c *gin.Context) {
	regions, err := h.orderService.ListRegions(c.Request.Context())
	if err != nil {
		respondError(c, "failed to list regions", err)
		return
	}
	c.JSON(http.StatusOK, models.RegionsResponse{Regions: regions})
}
