package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"resort/config"
	"resort/infras/otel"
	availabilityModel "resort/internal/domains/availability/model"
	availabilityService "resort/internal/domains/availability/service"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/repository"
	pricingService "resort/internal/domains/pricing/service"
	"resort/internal/notification"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking       = "booking:get"
	cacheGetAllBooking    = "booking:gets"
	cacheCountBooking     = "booking:count"
	cacheStatsBooking     = "booking:stats"
	CachePendingEnquiries = "booking:pending_enquiries"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	Cancel(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.BookingStatsResponse, error)
	CountPendingEnquiries(ctx context.Context) (int, error)
	RefreshPendingEnquiries(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo     repository.Booking
	pricing  pricingService.Pricing
	notifier notification.Producer
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, pricing pricingService.Pricing, notifier notification.Producer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		pricing:  pricing,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create quotes the stay, persists the booking with its frozen breakdown
// and, unless it is an enquiry, blocks one room per night atomically. The
// front desk notification is fire-and-forget: a publish failure never fails
// the booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	quote, err := s.pricing.Quote(ctx, req.ToQuoteRequest())
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user, s.reference(), quote)
	if err != nil {
		return res, err
	}

	if booking.IsEnquiryOnly {
		if err = s.repo.Insert(ctx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create enquiry")

			return res, fmt.Errorf("failed to create enquiry: %w", err)
		}
	} else {
		nights, err := pricingService.StayNights(req.CheckInDate, req.CheckOutDate)
		if err != nil {
			return res, err
		}

		blocks := availabilityModel.ForBooking(booking.ID, booking.RoomCategoryID, nights, booking.CreatedBy)

		if err = s.repo.CreateWithBlocks(ctx, booking, blocks); err != nil {
			log.Error().Err(err).Msg("failed to create booking")

			return res, err
		}
	}

	s.invalidate(ctx)
	s.notify(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves a booking through its lifecycle, stamping the matching
// audit timestamp. Cancelling releases the booking's blocked dates in the
// same transaction.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.ValidTransition(booking.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	switch req.Status {
	case model.StatusConfirmed:
		fields[model.FieldConfirmedAt] = timezone.Now()
	case model.StatusCompleted:
		fields[model.FieldCompletedAt] = timezone.Now()
	case model.StatusCancelled:
		fields[model.FieldCancelledAt] = timezone.Now()
	}

	if req.Status == model.StatusCancelled {
		err = s.repo.UpdateWithRelease(ctx, id, fields)
	} else {
		err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: model.StatusCancelled}, id)
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.BookingStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheStatsBooking, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings by status")

		return res, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	res.FromCounts(counts)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking stats to cache")
		}
	}()

	return res, nil
}

// CountPendingEnquiries reads the cached count maintained by the refresh
// job, falling back to a live count when the cache is cold.
func (s *serviceImpl) CountPendingEnquiries(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountPendingEnquiries")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, CachePendingEnquiries, &res)
	if err == nil {
		return res, nil
	}

	return s.RefreshPendingEnquiries(ctx)
}

// RefreshPendingEnquiries recounts new enquiries and rewrites the cache.
func (s *serviceImpl) RefreshPendingEnquiries(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshPendingEnquiries")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusNewEnquiry,
				Table:    model.TableName,
			},
		},
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pending enquiries")

		return 0, fmt.Errorf("failed to count pending enquiries: %w", err)
	}

	if err := s.cache.Save(ctx, CachePendingEnquiries, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save pending enquiry count to cache")
	}

	return res, nil
}

func (s *serviceImpl) reference() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])

	return fmt.Sprintf("%s-%s%s", s.cfg.Booking.ReferencePrefix, strings.ToUpper(strconv.FormatInt(timezone.Now().UnixNano(), 36)), suffix)
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheStatsBooking)
		shared.InvalidateCaches(c, s.cache, availabilityService.CacheCalendar)
		shared.InvalidateCaches(c, s.cache, availabilityService.CacheBlocks)
	}()
}

func (s *serviceImpl) notify(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		payload := notification.BookingPayload{
			GuestName:        booking.GuestName,
			GuestEmail:       booking.GuestEmail,
			GuestPhone:       booking.GuestPhone,
			CheckInDate:      booking.CheckInDate.Format(constant.DateFormatDay),
			CheckOutDate:     booking.CheckOutDate.Format(constant.DateFormatDay),
			NumAdults:        booking.NumAdults,
			NumChildren:      booking.NumChildren,
			GrandTotal:       booking.GrandTotal,
			BookingReference: booking.BookingReference,
			SpecialRequests:  booking.SpecialRequests,
			IsEnquiryOnly:    booking.IsEnquiryOnly,
		}

		if err := s.notifier.BookingCreated(c, payload); err != nil {
			log.Error().Err(err).Str("bookingReference", booking.BookingReference).Msg("failed to publish booking notification")
		}
	}()
}
