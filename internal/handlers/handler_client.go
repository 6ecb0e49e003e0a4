package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

type clientHandler struct {
	clientService *services.ClientService
	petService    *services.PetService
}

// CreateClient godoc
// @Summary Register a client
// @Description Creates a pet owner record. Consent to the data policy is mandatory.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	client, err := h.clientService.CreateClient(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// GetClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *clientHandler) GetClient(c *gin.Context) {
	client, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// ListClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListClientsResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) ListClients(c *gin.Context) {
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		out[i] = dto.ToClientResponse(&clients[i])
	}
	c.JSON(http.StatusOK, dto.ListClientsResponse{Clients: out})
}

// UpdateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *clientHandler) UpdateClient(c *gin.Context) {
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// ListClientPets godoc
// @Summary List a client's pets
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ListPetsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/pets [get]
func (h *clientHandler) ListClientPets(c *gin.Context) {
	pets, err := h.petService.ListPetsByClient(c.Request.Context(), c.Param("id"))
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

func registerClientRoutes(rg *gin.RouterGroup, clientService *services.ClientService, petService *services.PetService) {
	h := &clientHandler{clientService: clientService, petService: petService}
	clientRoutes := rg.Group("/clients")
	{
		clientRoutes.POST("", h.CreateClient)
		clientRoutes.GET("", h.ListClients)
		clientRoutes.GET("/:id", h.GetClient)
		clientRoutes.PUT("/:id", h.UpdateClient)
		clientRoutes.GET("/:id/pets", h.ListClientPets)
	}
}
