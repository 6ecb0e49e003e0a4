package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

type locationHandler struct {
	locationService *services.LocationService
}

// CreateLocation godoc
// @Summary Create a branch location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body dto.CreateLocationRequest true "Location details"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [post]
func (h *locationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	location, err := h.locationService.CreateLocation(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

// GetLocation godoc
// @Summary Get a location by ID
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *locationHandler) GetLocation(c *gin.Context) {
	location, err := h.locationService.GetLocationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// ListLocations godoc
// @Summary List locations
// @Tags locations
// @Produce json
// @Param onlyActive query bool false "Only active locations"
// @Success 200 {array} dto.LocationResponse
// @Security BearerAuth
// @Router /locations [get]
func (h *locationHandler) ListLocations(c *gin.Context) {
	onlyActive := c.Query("onlyActive") == "true"
	locations, err := h.locationService.ListLocations(c.Request.Context(), onlyActive)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		out[i] = dto.ToLocationResponse(&locations[i])
	}
	c.JSON(http.StatusOK, out)
}

// UpdateLocation godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *locationHandler) UpdateLocation(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	location, err := h.locationService.UpdateLocation(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

func registerLocationRoutes(rg *gin.RouterGroup, locationService *services.LocationService) {
	h := &locationHandler{locationService: locationService}
	locationRoutes := rg.Group("/locations")
	{
		locationRoutes.POST("", h.CreateLocation)
		locationRoutes.GET("", h.ListLocations)
		locationRoutes.GET("/:id", h.GetLocation)
		locationRoutes.PUT("/:id", h.UpdateLocation)
	}
}
