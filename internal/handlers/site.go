package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"waten-backend/internal/models"
	"waten-backend/internal/store"
)

type SiteHandler struct {
	store  *store.SiteStore
	logger *zap.SugaredLogger
}

func NewSiteHandler(store *store.SiteStore, logger *zap.SugaredLogger) *SiteHandler {
	return &SiteHandler{
		store:  store,
		logger: logger,
	}
}

// Get godoc
// @Summary     Get site content
// @Description Returns the editable site copy; an empty object when none exists
// @Tags        site
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /site [get]
func (h *SiteHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Get())
}

// Update godoc
// @Summary     Update site content
// @Description Shallow-merges the patch: top-level keys are replaced wholesale
// @Tags        site
// @Accept      json
// @Produce     json
// @Param       request body map[string]interface{} true "Keys to replace"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /site [put]
func (h *SiteHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	// The body doubles as the credential carrier; the password is not
	// site content and must never reach the public site object.
	delete(patch, "password")

	merged, err := h.store.Update(patch)
	if err != nil {
		h.logger.Errorw("failed to save site content", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save site content"})
		return
	}
	c.JSON(http.StatusOK, merged)
}
