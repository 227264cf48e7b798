package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/availability/model"
	"resort/internal/domains/availability/model/dto"
	"resort/internal/domains/availability/repository"
	roomModel "resort/internal/domains/room/model"
	roomRepository "resort/internal/domains/room/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CacheCalendar prefixes every cached availability calendar. The booking
// domain invalidates it too, since bookings create and release blocks.
const CacheCalendar = "availability:calendar"

// CacheBlocks prefixes cached block listings.
const CacheBlocks = "availability:blocks"

const (
	defaultCalendarDays = 30
	maxCalendarDays     = 366
)

type Availability interface {
	Calendar(ctx context.Context, roomCategoryID string, req dto.CalendarRequest) (dto.CalendarResponse, error)
	GetBlocks(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBlockedDatesResponse, error)
	CreateBlock(ctx context.Context, req dto.CreateBlockRequest) error
	DeleteBlock(ctx context.Context, id string) error
}

type serviceImpl struct {
	blockRepo repository.BlockedDate
	roomRepo  roomRepository.RoomCategory
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(blockRepo repository.BlockedDate, roomRepo roomRepository.RoomCategory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		blockRepo: blockRepo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Calendar reports, per night in the window, how many rooms are blocked and
// how many remain available for the category.
func (s *serviceImpl) Calendar(ctx context.Context, roomCategoryID string, req dto.CalendarRequest) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to, err := calendarWindow(req)
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomCategoryID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category")

		return res, fmt.Errorf("failed to get room category: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound("room category not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(CacheCalendar, fmt.Sprintf("%s:%s:%s", roomCategoryID, from.Format(constant.DateFormatDay), to.Format(constant.DateFormatDay)))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	counts, err := s.blockRepo.CountByDate(ctx, roomCategoryID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocked dates")

		return res, fmt.Errorf("failed to count blocked dates: %w", err)
	}

	blockedByDate := make(map[string]int, len(counts))
	for _, count := range counts {
		blockedByDate[count.Date.Format(constant.DateFormatDay)] = count.Blocked
	}

	res.RoomCategoryID = room.ID
	res.TotalRooms = room.TotalRooms

	for night := from; night.Before(to); night = night.AddDate(0, 0, 1) {
		day := night.Format(constant.DateFormatDay)
		blocked := blockedByDate[day]

		available := room.TotalRooms - blocked
		if available < 0 {
			available = 0
		}

		res.Days = append(res.Days, dto.CalendarDay{
			Date:           day,
			RoomsBlocked:   blocked,
			RoomsAvailable: available,
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBlocks(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBlockedDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBlocks")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(CacheBlocks, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.blockRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocked dates")

		return res, fmt.Errorf("failed to count blocked dates: %w", err)
	}

	blocks, err := s.blockRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked dates")

		return res, fmt.Errorf("failed to get blocked dates: %w", err)
	}

	res.FromModels(blocks, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blocked dates to cache")
		}
	}()

	return res, nil
}

// CreateBlock takes rooms out of inventory manually, one row per night in
// [start_date, end_date).
func (s *serviceImpl) CreateBlock(ctx context.Context, req dto.CreateBlockRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBlock")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, err := timezone.ParseDate(req.StartDate)
	if err != nil {
		return failure.BadRequestFromString("invalid start date")
	}

	to, err := timezone.ParseDate(req.EndDate)
	if err != nil {
		return failure.BadRequestFromString("invalid end date")
	}

	if !to.After(from) {
		return failure.BadRequestFromString("end date must be after start date")
	}

	exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomCategoryID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room category existence")

		return fmt.Errorf("failed to check room category existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room category not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomsBlocked := req.RoomsBlocked
	if roomsBlocked == 0 {
		roomsBlocked = 1
	}

	reason := req.Reason
	if reason == "" {
		reason = model.ReasonManual
	}

	blocks := []model.BlockedDate{}
	for night := from; night.Before(to); night = night.AddDate(0, 0, 1) {
		blocks = append(blocks, model.BlockedDate{
			ID:             uuid.NewString(),
			RoomCategoryID: req.RoomCategoryID,
			BlockedDate:    night,
			RoomsBlocked:   roomsBlocked,
			Reason:         reason,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	if err = s.blockRepo.InsertBulk(ctx, blocks); err != nil {
		log.Error().Err(err).Msg("failed to insert blocked dates")

		return fmt.Errorf("failed to insert blocked dates: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) DeleteBlock(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBlock")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	block, err := s.blockRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked date")

		return fmt.Errorf("failed to get blocked date: %w", err)
	}

	if block.ID == "" {
		return failure.NotFound("blocked date not found") // nolint:wrapcheck
	}

	if block.BookingID != nil {
		return failure.BadRequestFromString("blocked date belongs to a booking, cancel the booking to release it")
	}

	if err = s.blockRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete blocked date")

		return fmt.Errorf("failed to delete blocked date: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, CacheCalendar)
		shared.InvalidateCaches(c, s.cache, CacheBlocks)
	}()
}

func calendarWindow(req dto.CalendarRequest) (time.Time, time.Time, error) {
	var from, to time.Time

	if req.StartDate == "" {
		now := timezone.Now()
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())
	} else {
		parsed, err := timezone.ParseDate(req.StartDate)
		if err != nil {
			return from, to, failure.BadRequestFromString("invalid start date")
		}

		from = parsed
	}

	if req.EndDate == "" {
		to = from.AddDate(0, 0, defaultCalendarDays)
	} else {
		parsed, err := timezone.ParseDate(req.EndDate)
		if err != nil {
			return from, to, failure.BadRequestFromString("invalid end date")
		}

		to = parsed
	}

	if !to.After(from) {
		return from, to, failure.BadRequestFromString("end date must be after start date")
	}

	if to.Sub(from) > maxCalendarDays*24*time.Hour {
		return from, to, failure.BadRequestFromString("date window is too large")
	}

	return from, to, nil
}
