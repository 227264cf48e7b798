package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"resort/infras/otel"
	packagesModel "resort/internal/domains/packages/model"
	packagesRepository "resort/internal/domains/packages/repository"
	"resort/internal/domains/pricing/model/dto"
	ratesModel "resort/internal/domains/rates/model"
	ratesRepository "resort/internal/domains/rates/repository"
	roomModel "resort/internal/domains/room/model"
	roomRepository "resort/internal/domains/room/repository"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Pricing interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.BreakdownResponse, error)
}

type serviceImpl struct {
	roomRepo     roomRepository.RoomCategory
	seasonRepo   ratesRepository.Season
	mealPlanRepo ratesRepository.MealPlan
	taxRepo      ratesRepository.Tax
	packageRepo  packagesRepository.Package
	otel         otel.Otel
}

func New(roomRepo roomRepository.RoomCategory, seasonRepo ratesRepository.Season, mealPlanRepo ratesRepository.MealPlan, taxRepo ratesRepository.Tax, packageRepo packagesRepository.Package, otel otel.Otel) Pricing {
	return &serviceImpl{
		roomRepo:     roomRepo,
		seasonRepo:   seasonRepo,
		mealPlanRepo: mealPlanRepo,
		taxRepo:      taxRepo,
		packageRepo:  packageRepo,
		otel:         otel,
	}
}

// Quote resolves the room, rates and package configuration for the stay and
// produces the full price breakdown. It never writes anything.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.BreakdownResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	nights, err := StayNights(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomCategoryID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category")

		return res, fmt.Errorf("failed to get room category: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound("room category not found") // nolint:wrapcheck
	}

	if !room.Bookable() {
		return res, failure.BadRequestFromString("room category is not open for booking")
	}

	if req.NumAdults > room.MaxAdults {
		return res, failure.BadRequestFromString(fmt.Sprintf("number of adults exceeds the maximum of %d", room.MaxAdults))
	}

	if req.NumChildren > room.MaxChildren {
		return res, failure.BadRequestFromString(fmt.Sprintf("number of children exceeds the maximum of %d", room.MaxChildren))
	}

	seasons, err := s.seasonRepo.GetAll(ctx, gDto.QueryParams{}, activeFilter(ratesModel.SeasonTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get seasons")

		return res, fmt.Errorf("failed to get seasons: %w", err)
	}

	taxes, err := s.taxRepo.GetAll(ctx, gDto.QueryParams{}, activeFilter(ratesModel.TaxTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get taxes")

		return res, fmt.Errorf("failed to get taxes: %w", err)
	}

	mealPlan, err := s.resolveMealPlan(ctx, req.MealPlan)
	if err != nil {
		return res, err
	}

	pkg, err := s.resolvePackage(ctx, req.PackageID)
	if err != nil {
		return res, err
	}

	res = calculate(room, nights, req.NumAdults, req.NumChildren, seasons, mealPlan, pkg, taxes)
	res.MealPlan = req.MealPlan

	return res, nil
}

// resolveMealPlan loads the configured price row for the requested plan. A
// missing configuration is a hard error so guests are never quoted a stay
// with silently dropped meal charges. EP (room only) is the exception: it
// legitimately carries no charge, so an unconfigured EP resolves to nil.
func (s *serviceImpl) resolveMealPlan(ctx context.Context, planType string) (*ratesModel.MealPlanPrice, error) {
	if planType == "" {
		return nil, nil
	}

	filter := activeFilter(ratesModel.MealPlanTableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    ratesModel.FieldPlanType,
		Operator: gDto.FilterOperatorEq,
		Value:    planType,
		Table:    ratesModel.MealPlanTableName,
	})

	mealPlan, err := s.mealPlanRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get meal plan")

		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}

	if mealPlan.ID == "" {
		if planType == ratesModel.MealPlanEP {
			return nil, nil
		}

		return nil, failure.NotFound(fmt.Sprintf("meal plan %s is not configured", planType)) // nolint:wrapcheck
	}

	return &mealPlan, nil
}

func (s *serviceImpl) resolvePackage(ctx context.Context, packageID string) (*packagesModel.Package, error) {
	if packageID == "" {
		return nil, nil
	}

	pkg, err := s.packageRepo.Get(ctx, shared.FilterByID(packageID, packagesModel.FieldID, packagesModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get package")

		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	if pkg.ID == "" {
		return nil, failure.NotFound("package not found") // nolint:wrapcheck
	}

	if !pkg.Active {
		return nil, failure.BadRequestFromString("package is not active")
	}

	return &pkg, nil
}

// StayNights expands a check-in/check-out date pair into the list of nights
// the guest occupies a room. The check-out day itself is not a night.
func StayNights(checkInDate, checkOutDate string) ([]time.Time, error) {
	checkIn, err := timezone.ParseDate(checkInDate)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid check-in date")
	}

	checkOut, err := timezone.ParseDate(checkOutDate)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid check-out date")
	}

	if !checkOut.After(checkIn) {
		return nil, failure.BadRequestFromString("check-out date must be after check-in date")
	}

	nights := []time.Time{}
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		nights = append(nights, night)
	}

	return nights, nil
}

func activeFilter(table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    ratesModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    table,
			},
		},
	}
}

// multiplierFor picks the season multiplier applied to a single night. When
// several active seasons overlap the night, the highest multiplier wins;
// among equals the most recently created season takes precedence.
func multiplierFor(night time.Time, seasons []ratesModel.Season) decimal.Decimal {
	var matched *ratesModel.Season

	for i := range seasons {
		season := &seasons[i]
		if !season.Active || !season.Covers(night) {
			continue
		}

		if matched == nil ||
			season.Multiplier.GreaterThan(matched.Multiplier) ||
			(season.Multiplier.Equal(matched.Multiplier) && season.CreatedAt.After(matched.CreatedAt)) {
			matched = season
		}
	}

	if matched == nil {
		return decimal.NewFromInt(1)
	}

	return matched.Multiplier
}

// calculate is the pure pricing pipeline: room total per night with season
// multipliers, extra-guest charges, meal plan, package, then additive taxes
// on the subtotal.
func calculate(room roomModel.RoomCategory, nights []time.Time, adults, children int, seasons []ratesModel.Season, mealPlan *ratesModel.MealPlanPrice, pkg *packagesModel.Package, taxes []ratesModel.TaxConfig) dto.BreakdownResponse {
	numNights := len(nights)
	nightsDec := decimal.NewFromInt(int64(numNights))

	roomTotal := decimal.Zero
	for _, night := range nights {
		roomTotal = roomTotal.Add(room.BasePrice.Mul(multiplierFor(night, seasons)))
	}

	seasonMultiplier := decimal.NewFromInt(1)
	if base := room.BasePrice.Mul(nightsDec); base.IsPositive() {
		seasonMultiplier = roomTotal.Div(base)
	}

	extraAdults := adults - room.BaseOccupancy
	if extraAdults < 0 {
		extraAdults = 0
	}

	extraChildren := children

	extraAdultTotal := room.ExtraAdultPrice.Mul(decimal.NewFromInt(int64(extraAdults))).Mul(nightsDec)
	extraChildTotal := room.ExtraChildPrice.Mul(decimal.NewFromInt(int64(extraChildren))).Mul(nightsDec)
	extraGuestTotal := extraAdultTotal.Add(extraChildTotal)

	mealPlanAdultTotal := decimal.Zero
	mealPlanChildTotal := decimal.Zero

	if mealPlan != nil {
		mealPlanAdultTotal = mealPlan.AdultPrice.Mul(decimal.NewFromInt(int64(adults))).Mul(nightsDec)
		mealPlanChildTotal = mealPlan.ChildPrice.Mul(decimal.NewFromInt(int64(children))).Mul(nightsDec)
	}

	mealPlanTotal := mealPlanAdultTotal.Add(mealPlanChildTotal)

	packageTotal := decimal.Zero

	if pkg != nil {
		packageTotal = pkg.Price
		if pkg.PricingMode == packagesModel.PricingModePerNight {
			packageTotal = pkg.Price.Mul(nightsDec)
		}
	}

	subtotal := roomTotal.Add(extraGuestTotal).Add(mealPlanTotal).Add(packageTotal)

	taxRate := decimal.Zero

	for _, tax := range taxes {
		if tax.Active {
			taxRate = taxRate.Add(tax.Rate)
		}
	}

	taxAmount := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)

	return dto.BreakdownResponse{
		RoomCategoryID:     room.ID,
		NumNights:          numNights,
		BaseRoomPrice:      room.BasePrice,
		SeasonMultiplier:   seasonMultiplier,
		RoomTotal:          roomTotal,
		ExtraAdults:        extraAdults,
		ExtraChildren:      extraChildren,
		ExtraAdultTotal:    extraAdultTotal,
		ExtraChildTotal:    extraChildTotal,
		ExtraGuestTotal:    extraGuestTotal,
		MealPlanAdultTotal: mealPlanAdultTotal,
		MealPlanChildTotal: mealPlanChildTotal,
		MealPlanTotal:      mealPlanTotal,
		PackageTotal:       packageTotal,
		Subtotal:           subtotal,
		TaxRate:            taxRate,
		Taxes:              taxAmount,
		DiscountAmount:     decimal.Zero,
		GrandTotal:         subtotal.Add(taxAmount),
	}
}
