package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/petcarehq/petcare-backend/internal/core/pricing"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// PetQuote is one pet's priced slice of a booking.
type PetQuote struct {
	PetID            string
	DailyRate        decimal.Decimal
	Quote            pricing.Quote
	DepositShare     decimal.Decimal
	RemainingBalance decimal.Decimal
}

// ReservationService drives the booking wizard, reservation edits and the
// closing workflow.
type ReservationService struct {
	ReservationRepository  portsrepo.ReservationRepository
	ClientRepository       portsrepo.ClientRepository
	PetRepository          portsrepo.PetRepository
	ServiceRepository      portsrepo.ServiceRepository
	ExtraServiceRepository portsrepo.ExtraServiceRepository
	Rates                  *RateService
}

func NewReservationService(
	reservationRepo portsrepo.ReservationRepository,
	clientRepo portsrepo.ClientRepository,
	petRepo portsrepo.PetRepository,
	serviceRepo portsrepo.ServiceRepository,
	extraRepo portsrepo.ExtraServiceRepository,
	rateRepo portsrepo.WeightRateRepository,
) *ReservationService {
	return &ReservationService{
		ReservationRepository:  reservationRepo,
		ClientRepository:       clientRepo,
		PetRepository:          petRepo,
		ServiceRepository:      serviceRepo,
		ExtraServiceRepository: extraRepo,
		Rates:                  NewRateService(rateRepo),
	}
}

// bookingPlan is the fully priced booking before anything touches storage.
// CreateBooking persists it; QuoteBooking returns it to the caller as-is.
type bookingPlan struct {
	service  *domain.Service
	kind     pricing.ServiceKind
	start    time.Time
	end      time.Time
	pets     []domain.Pet
	extras   [][]domain.ReservationExtra
	quotes   []PetQuote
	combined pricing.Quote
}

// priceBooking validates the wizard submission and prices every pet's stay.
// Daycare bookings are forced to a single day regardless of the submitted
// end date.
func (s *ReservationService) priceBooking(ctx context.Context, req dto.CreateBookingRequest) (*bookingPlan, error) {
	client, err := s.ClientRepository.FindClientByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, req.ClientID)
		}
		return nil, err
	}
	if !client.ConsentGiven {
		return nil, fmt.Errorf("%w: client has not given consent", apperrors.ErrValidation)
	}

	service, err := s.ServiceRepository.FindServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: service %s", apperrors.ErrNotFound, req.ServiceID)
		}
		return nil, err
	}
	if !service.IsActive {
		return nil, fmt.Errorf("%w: service %s is inactive", apperrors.ErrValidation, service.Name)
	}

	kind := pricing.ResolveKind(service.Name)
	start, end := req.StartDate, req.EndDate
	if kind == pricing.Daycare {
		end = start
	}
	if pricing.StayDays(start, end) == 0 {
		return nil, fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}

	if req.DepositAmount != nil && req.DepositAmount.IsNegative() {
		return nil, fmt.Errorf("%w: deposit must not be negative", apperrors.ErrValidation)
	}
	if req.DepositAmount != nil && req.DepositAmount.IsPositive() && req.DepositMethod == nil {
		return nil, fmt.Errorf("%w: deposit payment method is required", apperrors.ErrValidation)
	}

	petIDs := make([]string, 0, len(req.Pets))
	seen := make(map[string]bool, len(req.Pets))
	for _, p := range req.Pets {
		if seen[p.PetID] {
			return nil, fmt.Errorf("%w: pet %s selected twice", apperrors.ErrValidation, p.PetID)
		}
		seen[p.PetID] = true
		petIDs = append(petIDs, p.PetID)
	}

	petsByID, err := s.PetRepository.FindPetsByIDs(ctx, petIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load pets: %w", err)
	}

	extraIDs := make([]string, 0)
	for _, p := range req.Pets {
		for _, ex := range p.Extras {
			extraIDs = append(extraIDs, ex.ExtraServiceID)
		}
	}
	extrasByID := map[string]domain.ExtraService{}
	if len(extraIDs) > 0 {
		extrasByID, err = s.ExtraServiceRepository.FindExtraServicesByIDs(ctx, extraIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load extra services: %w", err)
		}
	}

	dynamic, err := s.rateBands(ctx)
	if err != nil {
		return nil, err
	}

	plan := &bookingPlan{
		service: service,
		kind:    kind,
		start:   start,
		end:     end,
	}

	stays := make([]pricing.StayInput, 0, len(req.Pets))
	totals := make([]decimal.Decimal, 0, len(req.Pets))

	for _, p := range req.Pets {
		pet, ok := petsByID[p.PetID]
		if !ok {
			return nil, fmt.Errorf("%w: pet %s", apperrors.ErrNotFound, p.PetID)
		}
		if pet.ClientID != client.ClientID {
			return nil, fmt.Errorf("%w: pet %s does not belong to client %s", apperrors.ErrValidation, pet.PetID, client.ClientID)
		}
		if !pet.IsActive {
			return nil, fmt.Errorf("%w: pet %s is inactive", apperrors.ErrValidation, pet.Name)
		}

		lines := make([]pricing.ExtraLine, 0, len(p.Extras))
		snapshots := make([]domain.ReservationExtra, 0, len(p.Extras))
		for _, sel := range p.Extras {
			extra, ok := extrasByID[sel.ExtraServiceID]
			if !ok {
				return nil, fmt.Errorf("%w: extra service %s", apperrors.ErrNotFound, sel.ExtraServiceID)
			}
			if !extra.IsActive {
				return nil, fmt.Errorf("%w: extra service %s is inactive", apperrors.ErrValidation, extra.Name)
			}
			qty := sel.Quantity
			if qty <= 0 {
				qty = 1
			}
			lines = append(lines, pricing.ExtraLine{
				Name:     extra.Name,
				Price:    extra.Price,
				PerDay:   extra.PerDay,
				Quantity: qty,
			})
			snapshots = append(snapshots, domain.ReservationExtra{
				ExtraServiceID: extra.ExtraServiceID,
				Name:           extra.Name,
				Price:          extra.Price,
				PerDay:         extra.PerDay,
				Quantity:       qty,
			})
		}

		dailyRate := pricing.ResolveDailyRate(pet.Weight, kind, service.BasePrice, pricing.DefaultRateTable(), dynamic)
		stay := pricing.StayInput{
			Start:     start,
			End:       end,
			DailyRate: dailyRate,
			Extras:    lines,
			WithTax:   req.WithTax,
		}
		quote := pricing.QuoteStay(stay)

		plan.pets = append(plan.pets, pet)
		plan.extras = append(plan.extras, snapshots)
		plan.quotes = append(plan.quotes, PetQuote{
			PetID:     pet.PetID,
			DailyRate: dailyRate,
			Quote:     quote,
		})
		stays = append(stays, stay)
		totals = append(totals, quote.Total)
	}

	deposit := decimal.Zero
	if req.DepositAmount != nil {
		deposit = *req.DepositAmount
	}
	shares := pricing.SplitDeposit(deposit, totals)
	for i := range plan.quotes {
		plan.quotes[i].DepositShare = shares[i]
		plan.quotes[i].RemainingBalance = pricing.RemainingBalance(totals[i], shares[i])
	}
	plan.combined = pricing.QuoteBooking(stays)

	return plan, nil
}

func (s *ReservationService) rateBands(ctx context.Context) ([]pricing.RateBand, error) {
	bands, err := s.Rates.RateTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weight rates: %w", err)
	}
	return bands, nil
}

// QuoteBooking prices a wizard submission without persisting anything.
func (s *ReservationService) QuoteBooking(ctx context.Context, req dto.CreateBookingRequest) ([]PetQuote, pricing.Quote, error) {
	plan, err := s.priceBooking(ctx, req)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	return plan.quotes, plan.combined, nil
}

// CreateBooking turns a wizard submission into one reservation per pet,
// all sharing a booking group. The reservations and the deposit ledger rows
// are written in a single storage transaction.
func (s *ReservationService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID string) ([]domain.Reservation, pricing.Quote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.priceBooking(ctx, req)
	if err != nil {
		return nil, pricing.Quote{}, err
	}

	now := time.Now()
	groupID := uuid.NewString()
	reservations := make([]domain.Reservation, 0, len(plan.pets))
	deposits := make([]domain.FinancialTransaction, 0, len(plan.pets))

	for i, pet := range plan.pets {
		pq := plan.quotes[i]
		reservationID := uuid.NewString()

		extras := plan.extras[i]
		for j := range extras {
			extras[j].ReservationExtraID = uuid.NewString()
			extras[j].ReservationID = reservationID
		}

		var depositAmount *decimal.Decimal
		if pq.DepositShare.IsPositive() {
			share := pq.DepositShare
			depositAmount = &share
		}

		reservation := domain.Reservation{
			ReservationID:    reservationID,
			BookingGroupID:   groupID,
			ClientID:         req.ClientID,
			PetID:            pet.PetID,
			ServiceID:        plan.service.ServiceID,
			StartDate:        plan.start,
			EndDate:          plan.end,
			Feeding:          pet.Feeding,
			Belongings:       req.Pets[i].Belongings,
			DailyRate:        pq.DailyRate,
			Subtotal:         pq.Quote.Subtotal,
			Tax:              pq.Quote.Tax,
			Total:            pq.Quote.Total,
			WithTax:          req.WithTax,
			DepositAmount:    depositAmount,
			DepositMethod:    req.DepositMethod,
			RemainingBalance: pq.RemainingBalance,
			Status:           domain.StatusConfirmed,
			Extras:           extras,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		reservations = append(reservations, reservation)

		if depositAmount != nil {
			rid := reservationID
			deposits = append(deposits, domain.FinancialTransaction{
				TransactionID: uuid.NewString(),
				Kind:          domain.Income,
				Category:      domain.CategoryDeposit,
				Amount:        *depositAmount,
				Date:          now,
				PaymentMethod: req.DepositMethod,
				ReservationID: &rid,
				Description:   fmt.Sprintf("Anticipo reserva %s", pet.Name),
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     userID,
					LastUpdatedAt: now,
					LastUpdatedBy: userID,
				},
			})
		}
	}

	if err := s.ReservationRepository.SaveBooking(ctx, reservations, deposits); err != nil {
		logger.Error("Failed to save booking", slog.String("error", err.Error()), slog.String("booking_group_id", groupID))
		return nil, pricing.Quote{}, fmt.Errorf("failed to save booking: %w", err)
	}

	logger.Info("Booking created",
		slog.String("booking_group_id", groupID),
		slog.Int("pets", len(reservations)),
		slog.String("total", plan.combined.Total.String()))
	return reservations, plan.combined, nil
}

func (s *ReservationService) GetReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	reservation, err := s.ReservationRepository.FindReservationByID(ctx, reservationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find reservation", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
		}
		return nil, err
	}
	return reservation, nil
}

func (s *ReservationService) ListReservations(ctx context.Context, filter portsrepo.ListReservationsFilter) ([]domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	reservations, err := s.ReservationRepository.ListReservations(ctx, filter)
	if err != nil {
		logger.Error("Failed to list reservations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	if reservations == nil {
		return []domain.Reservation{}, nil
	}
	return reservations, nil
}

// UpdateReservation edits dates, extras, tax mode or logistics fields and
// reprices the stay. Cost changes only adjust the remaining balance; no
// ledger row is written until the reservation closes.
func (s *ReservationService) UpdateReservation(ctx context.Context, reservationID string, req dto.UpdateReservationRequest, userID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reservation, err := s.ReservationRepository.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status.Terminal() {
		return nil, fmt.Errorf("%w: reservation is %s", apperrors.ErrConflict, reservation.Status)
	}

	service, err := s.ServiceRepository.FindServiceByID(ctx, reservation.ServiceID)
	if err != nil {
		return nil, err
	}
	kind := pricing.ResolveKind(service.Name)

	if req.StartDate != nil {
		reservation.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		reservation.EndDate = *req.EndDate
	}
	if kind == pricing.Daycare {
		reservation.EndDate = reservation.StartDate
	}
	if pricing.StayDays(reservation.StartDate, reservation.EndDate) == 0 {
		return nil, fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}

	if req.WithTax != nil {
		reservation.WithTax = *req.WithTax
	}
	if req.Belongings != nil {
		reservation.Belongings = *req.Belongings
	}
	if req.Feeding != nil {
		reservation.Feeding = req.Feeding.ToFeedingProtocol()
	}

	if req.Extras != nil {
		extras, err := s.snapshotExtras(ctx, reservationID, *req.Extras)
		if err != nil {
			return nil, err
		}
		reservation.Extras = extras
	}

	// Reprice with the current weight and rate table.
	pet, err := s.PetRepository.FindPetByID(ctx, reservation.PetID)
	if err != nil {
		return nil, err
	}
	dynamic, err := s.rateBands(ctx)
	if err != nil {
		return nil, err
	}
	reservation.DailyRate = pricing.ResolveDailyRate(pet.Weight, kind, service.BasePrice, pricing.DefaultRateTable(), dynamic)

	lines := make([]pricing.ExtraLine, len(reservation.Extras))
	for i, ex := range reservation.Extras {
		lines[i] = pricing.ExtraLine{Name: ex.Name, Price: ex.Price, PerDay: ex.PerDay, Quantity: ex.Quantity}
	}
	quote := pricing.QuoteStay(pricing.StayInput{
		Start:     reservation.StartDate,
		End:       reservation.EndDate,
		DailyRate: reservation.DailyRate,
		Extras:    lines,
		WithTax:   reservation.WithTax,
	})
	reservation.Subtotal = quote.Subtotal
	reservation.Tax = quote.Tax
	reservation.Total = quote.Total

	deposit := decimal.Zero
	if reservation.DepositAmount != nil {
		deposit = *reservation.DepositAmount
	}
	reservation.RemainingBalance = pricing.RemainingBalance(quote.Total, deposit)
	reservation.LastUpdatedAt = time.Now()
	reservation.LastUpdatedBy = userID

	if err := s.ReservationRepository.UpdateReservation(ctx, *reservation); err != nil {
		logger.Error("Failed to update reservation", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	logger.Info("Reservation updated", slog.String("reservation_id", reservationID), slog.String("total", reservation.Total.String()))
	return reservation, nil
}

func (s *ReservationService) snapshotExtras(ctx context.Context, reservationID string, selections []dto.BookingExtraRequest) ([]domain.ReservationExtra, error) {
	if len(selections) == 0 {
		return nil, nil
	}
	ids := make([]string, len(selections))
	for i, sel := range selections {
		ids[i] = sel.ExtraServiceID
	}
	extrasByID, err := s.ExtraServiceRepository.FindExtraServicesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load extra services: %w", err)
	}
	out := make([]domain.ReservationExtra, 0, len(selections))
	for _, sel := range selections {
		extra, ok := extrasByID[sel.ExtraServiceID]
		if !ok {
			return nil, fmt.Errorf("%w: extra service %s", apperrors.ErrNotFound, sel.ExtraServiceID)
		}
		qty := sel.Quantity
		if qty <= 0 {
			qty = 1
		}
		out = append(out, domain.ReservationExtra{
			ReservationExtraID: uuid.NewString(),
			ReservationID:      reservationID,
			ExtraServiceID:     extra.ExtraServiceID,
			Name:               extra.Name,
			Price:              extra.Price,
			PerDay:             extra.PerDay,
			Quantity:           qty,
		})
	}
	return out, nil
}

// CancelReservation marks a reservation cancelled. Deposits already taken
// stay on the ledger; refunds are recorded manually as expenses if given.
func (s *ReservationService) CancelReservation(ctx context.Context, reservationID, userID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reservation, err := s.ReservationRepository.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status.Terminal() {
		return nil, fmt.Errorf("%w: reservation is %s", apperrors.ErrConflict, reservation.Status)
	}

	reservation.Status = domain.StatusCancelled
	reservation.LastUpdatedAt = time.Now()
	reservation.LastUpdatedBy = userID

	if err := s.ReservationRepository.UpdateReservation(ctx, *reservation); err != nil {
		logger.Error("Failed to cancel reservation", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	logger.Info("Reservation cancelled", slog.String("reservation_id", reservationID))
	return reservation, nil
}

// DeliverReservation hands the pet back while payment is still pending.
// The operator must accept the liability terms; the balance stays open.
func (s *ReservationService) DeliverReservation(ctx context.Context, reservationID string, req dto.DeliverReservationRequest, userID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reservation, err := s.ReservationRepository.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	next, err := pricing.Deliver(reservation.Status, req.AcceptTerms)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reservation.Status = next
	reservation.LiabilityAccepted = true
	reservation.DeliveredAt = &now
	reservation.LastUpdatedAt = now
	reservation.LastUpdatedBy = userID

	if err := s.ReservationRepository.UpdateReservation(ctx, *reservation); err != nil {
		logger.Error("Failed to deliver reservation", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
		return nil, fmt.Errorf("failed to deliver reservation: %w", err)
	}

	logger.Info("Reservation delivered pending payment", slog.String("reservation_id", reservationID))
	return reservation, nil
}

// CloseReservation settles the balance and completes the reservation. The
// final payment ledger row and the state change are written atomically; a
// rejected close leaves the reservation untouched.
func (s *ReservationService) CloseReservation(ctx context.Context, reservationID string, req dto.CloseReservationRequest, userID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reservation, err := s.ReservationRepository.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	next, err := pricing.Close(reservation.Status, req.AcceptTerms, reservation.RemainingBalance, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var payment *domain.FinancialTransaction
	if reservation.RemainingBalance.IsPositive() {
		rid := reservation.ReservationID
		payment = &domain.FinancialTransaction{
			TransactionID: uuid.NewString(),
			Kind:          domain.Income,
			Category:      domain.CategoryFinalPayment,
			Amount:        reservation.RemainingBalance,
			Date:          now,
			PaymentMethod: req.PaymentMethod,
			ReservationID: &rid,
			Description:   fmt.Sprintf("Pago final reserva %s", reservation.ReservationID),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	reservation.Status = next
	reservation.LiabilityAccepted = true
	reservation.RemainingBalance = decimal.Zero
	if reservation.DeliveredAt == nil {
		reservation.DeliveredAt = &now
	}
	reservation.LastUpdatedAt = now
	reservation.LastUpdatedBy = userID

	if err := s.ReservationRepository.CloseReservation(ctx, *reservation, payment); err != nil {
		logger.Error("Failed to close reservation", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
		return nil, fmt.Errorf("failed to close reservation: %w", err)
	}

	logger.Info("Reservation closed", slog.String("reservation_id", reservationID))
	return reservation, nil
}
