package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"waten-backend/internal/models"
	"waten-backend/internal/store"
)

type ConfigHandler struct {
	store  *store.ConfigStore
	logger *zap.SugaredLogger
}

func NewConfigHandler(store *store.ConfigStore, logger *zap.SugaredLogger) *ConfigHandler {
	return &ConfigHandler{
		store:  store,
		logger: logger,
	}
}

// Get godoc
// @Summary     Get storefront config
// @Description Returns the public view of config.json. The admin password is
// @Description never part of the response.
// @Tags        config
// @Produce     json
// @Success     200 {object} models.PublicConfig
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	public, err := h.store.Public()
	if err != nil {
		h.logger.Errorw("failed to load config", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load config"})
		return
	}
	c.JSON(http.StatusOK, public)
}

// Update godoc
// @Summary     Update storefront config
// @Description Overwrites only the fields present in the request; absent fields
// @Description keep their stored value
// @Tags        config
// @Accept      json
// @Produce     json
// @Param       request body models.ConfigPatch true "Fields to overwrite"
// @Success     200 {object} models.OKResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /config [put]
func (h *ConfigHandler) Update(c *gin.Context) {
	var patch models.ConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if err := h.store.Update(patch); err != nil {
		h.logger.Errorw("failed to save config", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save config"})
		return
	}
	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}
