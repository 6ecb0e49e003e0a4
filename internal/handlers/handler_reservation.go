package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

type reservationHandler struct {
	reservationService *services.ReservationService
}

// CreateBooking godoc
// @Summary Create a booking
// @Description Creates one reservation per pet in a single atomic submission
// and records any deposit as income. All reservations share a booking group.
// @Tags reservations
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [post]
func (h *reservationHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	reservations, combined, err := h.reservationService.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BookingResponse{
		BookingGroupID: reservations[0].BookingGroupID,
		Reservations:   dto.ToReservationResponses(reservations),
		Quote:          combined,
	})
}

// QuoteBooking godoc
// @Summary Price a booking without saving it
// @Description Runs the full pricing pipeline for a wizard submission and
// returns per-pet and combined totals. Nothing is persisted.
// @Tags reservations
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 200 {object} dto.QuoteBookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/quote [post]
func (h *reservationHandler) QuoteBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quotes, combined, err := h.reservationService.QuoteBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	pets := make([]dto.QuotePetResponse, len(quotes))
	for i, q := range quotes {
		pets[i] = dto.QuotePetResponse{
			PetID:            q.PetID,
			DailyRate:        q.DailyRate,
			Quote:            q.Quote,
			DepositShare:     q.DepositShare,
			RemainingBalance: q.RemainingBalance,
		}
	}
	c.JSON(http.StatusOK, dto.QuoteBookingResponse{Pets: pets, Combined: combined})
}

// GetReservation godoc
// @Summary Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{id} [get]
func (h *reservationHandler) GetReservation(c *gin.Context) {
	reservation, err := h.reservationService.GetReservationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// ListReservations godoc
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Param clientID query string false "Filter by client"
// @Param petID query string false "Filter by pet"
// @Param status query string false "Filter by status"
// @Param from query string false "Overlap window start (YYYY-MM-DD)"
// @Param to query string false "Overlap window end (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations [get]
func (h *reservationHandler) ListReservations(c *gin.Context) {
	var params dto.ListReservationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	from, err := parseDateParam("from", params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	to, err := parseDateParam("to", params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	reservations, err := h.reservationService.ListReservations(c.Request.Context(), portsrepo.ListReservationsFilter{
		ClientID: params.ClientID,
		PetID:    params.PetID,
		Status:   domain.ReservationStatus(params.Status),
		From:     from,
		To:       to,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListReservationsResponse{Reservations: dto.ToReservationResponses(reservations)})
}

// UpdateReservation godoc
// @Summary Update a reservation
// @Description Edits dates, extras, tax mode, belongings or feeding notes and
// reprices the stay. Closed and cancelled reservations cannot be edited.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param reservation body dto.UpdateReservationRequest true "Fields to update"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{id} [put]
func (h *reservationHandler) UpdateReservation(c *gin.Context) {
	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	reservation, err := h.reservationService.UpdateReservation(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// CancelReservation godoc
// @Summary Cancel a reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{id}/cancel [post]
func (h *reservationHandler) CancelReservation(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	reservation, err := h.reservationService.CancelReservation(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// DeliverReservation godoc
// @Summary Record pet delivery
// @Description Marks the pet as handed over to its owner. The liability terms
// must be accepted. Payment is settled separately by the close step.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.DeliverReservationRequest true "Terms acceptance"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{id}/deliver [post]
func (h *reservationHandler) DeliverReservation(c *gin.Context) {
	var req dto.DeliverReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	reservation, err := h.reservationService.DeliverReservation(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// CloseReservation godoc
// @Summary Close a reservation
// @Description Settles the remaining balance, records the final payment as
// income and moves the reservation to its terminal completed state.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.CloseReservationRequest true "Terms acceptance and payment method"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{id}/close [post]
func (h *reservationHandler) CloseReservation(c *gin.Context) {
	var req dto.CloseReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	reservation, err := h.reservationService.CloseReservation(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func registerReservationRoutes(rg *gin.RouterGroup, reservationService *services.ReservationService) {
	h := &reservationHandler{reservationService: reservationService}
	bookingRoutes := rg.Group("/bookings")
	{
		bookingRoutes.POST("", h.CreateBooking)
		bookingRoutes.POST("/quote", h.QuoteBooking)
	}
	reservationRoutes := rg.Group("/reservations")
	{
		reservationRoutes.GET("", h.ListReservations)
		reservationRoutes.GET("/:id", h.GetReservation)
		reservationRoutes.PUT("/:id", h.UpdateReservation)
		reservationRoutes.POST("/:id/cancel", h.CancelReservation)
		reservationRoutes.POST("/:id/deliver", h.DeliverReservation)
		reservationRoutes.POST("/:id/close", h.CloseReservation)
	}
}
