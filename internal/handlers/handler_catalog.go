package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcarehq/petcare-backend/internal/core/pricing"
	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

type catalogHandler struct {
	catalogService *services.CatalogService
}

// CreateService godoc
// @Summary Create a care offering
// @Tags catalog
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Offering details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /services [post]
func (h *catalogHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	service, err := h.catalogService.CreateService(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceResponse(service, string(pricing.ResolveKind(service.Name))))
}

// GetService godoc
// @Summary Get a care offering by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *catalogHandler) GetService(c *gin.Context) {
	service, err := h.catalogService.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(service, string(pricing.ResolveKind(service.Name))))
}

// ListServices godoc
// @Summary List care offerings
// @Tags catalog
// @Produce json
// @Param onlyActive query bool false "Only active offerings"
// @Success 200 {array} dto.ServiceResponse
// @Security BearerAuth
// @Router /services [get]
func (h *catalogHandler) ListServices(c *gin.Context) {
	onlyActive := c.Query("onlyActive") == "true"
	servicesList, err := h.catalogService.ListServices(c.Request.Context(), onlyActive)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.ServiceResponse, len(servicesList))
	for i := range servicesList {
		s := &servicesList[i]
		out[i] = dto.ToServiceResponse(s, string(pricing.ResolveKind(s.Name)))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateService godoc
// @Summary Update a care offering
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *catalogHandler) UpdateService(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	service, err := h.catalogService.UpdateService(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(service, string(pricing.ResolveKind(service.Name))))
}

// CreateExtraService godoc
// @Summary Create an add-on service
// @Tags catalog
// @Accept json
// @Produce json
// @Param extra body dto.CreateExtraServiceRequest true "Add-on details"
// @Success 201 {object} dto.ExtraServiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /extra-services [post]
func (h *catalogHandler) CreateExtraService(c *gin.Context) {
	var req dto.CreateExtraServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	extra, err := h.catalogService.CreateExtraService(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToExtraServiceResponse(extra))
}

// ListExtraServices godoc
// @Summary List add-on services
// @Tags catalog
// @Produce json
// @Param onlyActive query bool false "Only active add-ons"
// @Success 200 {array} dto.ExtraServiceResponse
// @Security BearerAuth
// @Router /extra-services [get]
func (h *catalogHandler) ListExtraServices(c *gin.Context) {
	onlyActive := c.Query("onlyActive") == "true"
	extras, err := h.catalogService.ListExtraServices(c.Request.Context(), onlyActive)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.ExtraServiceResponse, len(extras))
	for i := range extras {
		out[i] = dto.ToExtraServiceResponse(&extras[i])
	}
	c.JSON(http.StatusOK, out)
}

// UpdateExtraService godoc
// @Summary Update an add-on service
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Extra service ID"
// @Param extra body dto.UpdateExtraServiceRequest true "Fields to update"
// @Success 200 {object} dto.ExtraServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /extra-services/{id} [put]
func (h *catalogHandler) UpdateExtraService(c *gin.Context) {
	var req dto.UpdateExtraServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	extra, err := h.catalogService.UpdateExtraService(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExtraServiceResponse(extra))
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService *services.CatalogService) {
	h := &catalogHandler{catalogService: catalogService}
	serviceRoutes := rg.Group("/services")
	{
		serviceRoutes.POST("", h.CreateService)
		serviceRoutes.GET("", h.ListServices)
		serviceRoutes.GET("/:id", h.GetService)
		serviceRoutes.PUT("/:id", h.UpdateService)
	}
	extraRoutes := rg.Group("/extra-services")
	{
		extraRoutes.POST("", h.CreateExtraService)
		extraRoutes.GET("", h.ListExtraServices)
		extraRoutes.PUT("/:id", h.UpdateExtraService)
	}
}
