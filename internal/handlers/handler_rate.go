package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

type rateHandler struct {
	rateService *services.RateService
}

// CreateWeightRate godoc
// @Summary Add a weight rate band
// @Description Adds a band to the dynamic rate table. Bands may not overlap.
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateWeightRateRequest true "Band details"
// @Success 201 {object} dto.WeightRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /weight-rates [post]
func (h *rateHandler) CreateWeightRate(c *gin.Context) {
	var req dto.CreateWeightRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	rate, err := h.rateService.CreateWeightRate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWeightRateResponse(rate))
}

// ListWeightRates godoc
// @Summary List the rate table
// @Tags rates
// @Produce json
// @Success 200 {object} dto.ListWeightRatesResponse
// @Security BearerAuth
// @Router /weight-rates [get]
func (h *rateHandler) ListWeightRates(c *gin.Context) {
	rates, err := h.rateService.ListWeightRates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.WeightRateResponse, len(rates))
	for i := range rates {
		out[i] = dto.ToWeightRateResponse(&rates[i])
	}
	c.JSON(http.StatusOK, dto.ListWeightRatesResponse{Rates: out})
}

// DeleteWeightRate godoc
// @Summary Remove a weight rate band
// @Tags rates
// @Param id path string true "Weight rate ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /weight-rates/{id} [delete]
func (h *rateHandler) DeleteWeightRate(c *gin.Context) {
	if err := h.rateService.DeleteWeightRate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func registerRateRoutes(rg *gin.RouterGroup, rateService *services.RateService) {
	h := &rateHandler{rateService: rateService}
	rateRoutes := rg.Group("/weight-rates")
	{
		rateRoutes.POST("", h.CreateWeightRate)
		rateRoutes.GET("", h.ListWeightRates)
		rateRoutes.DELETE("/:id", h.DeleteWeightRate)
	}
}
