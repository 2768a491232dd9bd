package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"waten-backend/internal/models"
	"waten-backend/internal/storage"
)

type UploadHandler struct {
	storage *storage.Client
	logger  *zap.SugaredLogger
}

func NewUploadHandler(storage *storage.Client, logger *zap.SugaredLogger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
	}
}

// Upload godoc
// @Summary     Upload an image
// @Description Stores a single image under the upload directory and returns its
// @Description relative path. Payloads over the size ceiling are rejected before
// @Description anything is written.
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Image file"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	// The body has not been touched yet; cap it before parsing so an
	// oversized payload fails without reaching the filesystem.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.storage.MaxBytes())

	if err := c.Request.ParseMultipartForm(h.storage.MaxBytes()); err != nil {
		var maxErr *http.MaxBytesError
		// The multipart reader does not always wrap the limit error in a
		// matchable type, so fall back on its message.
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "payload too large",
				Message: "uploads are limited to 5 MiB",
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to parse multipart form", Message: err.Error()})
		return
	}

	var file *multipart.FileHeader
	for _, fieldName := range []string{"image", "file"} {
		if f := c.Request.MultipartForm.File[fieldName]; len(f) > 0 {
			file = f[0]
			break
		}
	}
	if file == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no file uploaded",
			Message: "provide the file in an \"image\" or \"file\" field",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open uploaded file", Message: err.Error()})
		return
	}
	defer src.Close()

	path, err := h.storage.Save(file.Filename, src)
	if err != nil {
		h.logger.Errorw("failed to store upload", "filename", file.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store upload"})
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{Path: path})
}
