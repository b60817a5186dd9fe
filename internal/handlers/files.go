package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nut-orders-backend/internal/models"
	"nut-orders-backend/internal/services"
)

type FilesHandler struct {
	orderService *services.OrderService
	mediaService *services.MediaService
}

func NewFilesHandler(orderService *services.OrderService, mediaService *services.MediaService) *FilesHandler {
	return &FilesHandler{
		orderService: orderService,
		mediaService: mediaService,
	}
}

// GetMedia godoc
// @Summary     List order media
// @Description Returns the photos and videos recorded for an order, newest first
// @Tags        media
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.MediaListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/media [get]
func (h *FilesHandler) GetMedia(c *gin.Context) {
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	media, err := h.mediaService.ListMedia(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, "failed to get media", err)
		return
	}

	responses := make([]models.MediaResponse, len(media))
	for i := range media {
		responses[i] = models.NewMediaResponse(&media[i])
	}
	c.JSON(http.StatusOK, models.MediaListResponse{Media: responses})
}

// GetStoredObjects godoc
// @Summary     List stored objects
// @Description Lists the object keys under the order's storage prefix. Objects whose database row was never written show up here but not in the media list.
// @Tags        media
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.StoredObjectsResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /orders/{order_id}/media/objects [get]
func (h *FilesHandler) GetStoredObjects(c *gin.Context) {
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	if _, err := h.orderService.GetOrder(c.Request.Context(), orderID); err != nil {
		respondError(c, "order not found", err)
		return
	}

	paths, err := h.mediaService.ListStoredObjects(orderID)
	if err != nil {
		respondError(c, "failed to list stored objects", err)
		return
	}

	c.JSON(http.StatusOK, models.StoredObjectsResponse{OrderID: orderID.String(), Paths: paths})
}

// DeleteMedia godoc
// @Summary     Delete media
// @Description Removes the stored object and the order_media row. The row is deleted even when the object cannot be removed.
// @Tags        media
// @Security    Bearer
// @Param       media_id path string true "Media ID (UUID)"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /media/{media_id} [delete]
func (h *FilesHandler) DeleteMedia(c *gin.Context) {
	mediaID, ok := uuidParam(c, "media_id")
	if !ok {
		return
	}

	if err := h.mediaService.DeleteMedia(c.Request.Context(), mediaID); err != nil {
		respondError(c, "failed to delete media", err)
		return
	}

	c.Status(http.StatusNoContent)
}
