package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

type petHandler struct {
	petService *services.PetService
}

// CreatePet godoc
// @Summary Register a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param pet body dto.CreatePetRequest true "Pet details"
// @Success 201 {object} dto.PetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pets [post]
func (h *petHandler) CreatePet(c *gin.Context) {
	var req dto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	pet, err := h.petService.CreatePet(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPetResponse(pet))
}

// GetPet godoc
// @Summary Get a pet by ID
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} dto.PetResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pets/{id} [get]
func (h *petHandler) GetPet(c *gin.Context) {
	pet, err := h.petService.GetPetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPetResponse(pet))
}

// ListPets godoc
// @Summary List pets
// @Tags pets
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListPetsResponse
// @Security BearerAuth
// @Router /pets [get]
func (h *petHandler) ListPets(c *gin.Context) {
	var params dto.ListPetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	pets, err := h.petService.ListPets(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.PetResponse, len(pets))
	for i := range pets {
		out[i] = dto.ToPetResponse(&pets[i])
	}
	c.JSON(http.StatusOK, dto.ListPetsResponse{Pets: out})
}

// UpdatePet godoc
// @Summary Update a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param pet body dto.UpdatePetRequest true "Fields to update"
// @Success 200 {object} dto.PetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pets/{id} [put]
func (h *petHandler) UpdatePet(c *gin.Context) {
	var req dto.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	pet, err := h.petService.UpdatePet(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPetResponse(pet))
}

// DeactivatePet godoc
// @Summary Deactivate a pet
// @Description Marks the pet inactive. A reason is required and kept on record.
// @Tags pets
// @Accept json
// @Param id path string true "Pet ID"
// @Param request body dto.DeactivatePetRequest true "Deactivation reason"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pets/{id}/deactivate [post]
func (h *petHandler) DeactivatePet(c *gin.Context) {
	var req dto.DeactivatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	if err := h.petService.DeactivatePet(c.Request.Context(), c.Param("id"), req.Reason, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func registerPetRoutes(rg *gin.RouterGroup, petService *services.PetService) {
	h := &petHandler{petService: petService}
	petRoutes := rg.Group("/pets")
	{
		petRoutes.POST("", h.CreatePet)
		petRoutes.GET("", h.ListPets)
		petRoutes.GET("/:id", h.GetPet)
		petRoutes.PUT("/:id", h.UpdatePet)
		petRoutes.POST("/:id/deactivate", h.DeactivatePet)
	}
}
