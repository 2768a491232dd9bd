package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"waten-backend/internal/models"
	"waten-backend/internal/store"
)

type ProductsHandler struct {
	store  *store.ProductStore
	logger *zap.SugaredLogger
}

func NewProductsHandler(store *store.ProductStore, logger *zap.SugaredLogger) *ProductsHandler {
	return &ProductsHandler{
		store:  store,
		logger: logger,
	}
}

// List godoc
// @Summary     List products
// @Description Returns the full catalog in stored order
// @Tags        products
// @Produce     json
// @Success     200 {array} models.Product
// @Failure     500 {object} models.ErrorResponse
// @Router      /products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.store.List()
	if err != nil {
		h.logger.Errorw("failed to load products", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create godoc
// @Summary     Add a product
// @Description Creates a product with a time-derived id; missing fields get defaults
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body models.ProductPatch false "Product fields"
// @Success     200 {object} models.Product
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var patch models.ProductPatch
	// Body is optional; an empty body creates a default product.
	_ = c.ShouldBindJSON(&patch)

	product, err := h.store.Add(patch)
	if err != nil {
		h.logger.Errorw("failed to add product", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to add product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Update godoc
// @Summary     Update a product
// @Description Merges the patch onto the stored record; the id is immutable
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id path string true "Product id"
// @Param       request body models.ProductPatch true "Fields to overwrite"
// @Success     200 {object} models.Product
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	product, err := h.store.Update(id, patch)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "product not found"})
		return
	}
	if err != nil {
		h.logger.Errorw("failed to update product", "product_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary     Delete a product
// @Description Removes every product with the given id; deleting an unknown id is a no-op
// @Tags        products
// @Produce     json
// @Param       id path string true "Product id"
// @Success     200 {object} models.OKResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /products/{id} [delete]
func (h *ProductsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Remove(id); err != nil {
		h.logger.Errorw("failed to delete product", "product_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}
