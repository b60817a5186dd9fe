package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"nut-orders-backend/internal/middleware"
	"nut-orders-backend/internal/models"
	"nut-orders-backend/internal/services"
)

var mediaFieldNames = []string{"files", "file", "media", "images"}

type UploadHandler struct {
	orderService   *services.OrderService
	mediaService   *services.MediaService
	maxUploadBytes int64
}

func NewUploadHandler(orderService *services.OrderService, mediaService *services.MediaService, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{
		orderService:   orderService,
		mediaService:   mediaService,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload godoc
// @Summary     Attach media to an order
// @Description Uploads one or more photos or videos for an order. Each file is stored under order-media/{order_id}/ in the bucket, recorded in order_media and filed under the order's region.
// @Description
// @Description Files are processed concurrently and independently. When some files fail the response is 207 with the attached media and one error per failed file; the message reads "<k> of <N> failed".
// @Tags        media
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       files formData file true "Photos or videos (multiple files allowed)"
// @Param       description formData string false "Description applied to every file"
// @Success     200 {object} models.UploadResponse
// @Success     207 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     413 {object} models.ErrorResponse
// @Failure     415 {object} models.UploadResponse
// @Failure     502 {object} models.UploadResponse
// @Router      /orders/{order_id}/media [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	if _, err := h.orderService.GetOrder(c.Request.Context(), orderID); err != nil {
		respondError(c, "order not found", err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "upload too large",
				Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	form := c.Request.MultipartForm
	if form == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: "multipart form is nil",
		})
		return
	}

	var headers []*multipart.FileHeader
	for _, fieldName := range mediaFieldNames {
		if f := form.File[fieldName]; len(f) > 0 {
			headers = f
			break
		}
	}
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no files uploaded",
			Message: fmt.Sprintf("please provide files with one of these field names: %v", mediaFieldNames),
		})
		return
	}

	var description *string
	if d := strings.TrimSpace(c.PostForm("description")); d != "" {
		description = &d
	}

	files := make([]models.MediaFile, 0, len(headers))
	readErrors := make([]models.UploadErrorInfo, 0)
	for _, header := range headers {
		file, err := readMediaFile(header)
		if err != nil {
			readErrors = append(readErrors, models.UploadErrorInfo{
				Filename: header.Filename,
				Error:    err.Error(),
			})
			continue
		}
		files = append(files, file)
	}

	batch := h.mediaService.AttachAll(c.Request.Context(), orderID, files, description, middleware.UserID(c))
	batch.Total += len(readErrors)

	response := models.UploadResponse{
		OrderID: orderID.String(),
		Media:   make([]models.MediaResponse, 0, len(batch.Attached)),
		Errors:  readErrors,
	}
	for i := range batch.Attached {
		response.Media = append(response.Media, models.NewMediaResponse(&batch.Attached[i]))
	}
	for _, failure := range batch.Failures {
		response.Errors = append(response.Errors, models.UploadErrorInfo{
			Filename: failure.Filename,
			Error:    failure.Err.Error(),
		})
	}

	failed := len(response.Errors)
	switch {
	case failed == 0:
		response.Message = fmt.Sprintf("%d file(s) attached", len(response.Media))
		c.JSON(http.StatusOK, response)
	case len(response.Media) > 0:
		response.Message = fmt.Sprintf("%d of %d failed", failed, batch.Total)
		c.JSON(http.StatusMultiStatus, response)
	default:
		response.Message = fmt.Sprintf("%d of %d failed", failed, batch.Total)
		status := http.StatusBadRequest
		if len(batch.Failures) > 0 {
			status = statusForError(batch.Failures[0].Err)
		}
		c.JSON(status, response)
	}
}

func readMediaFile(header *multipart.FileHeader) (models.MediaFile, error) {
	src, err := header.Open()
	if err != nil {
		return models.MediaFile{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return models.MediaFile{}, fmt.Errorf("failed to read file data: %w", err)
	}

	return models.MediaFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
