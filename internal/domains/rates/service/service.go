package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/rates/model"
	"resort/internal/domains/rates/model/dto"
	"resort/internal/domains/rates/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllSeason   = "season:gets"
	cacheGetAllMealPlan = "meal_plan:gets"
	cacheGetAllTax      = "tax:gets"
)

type Rates interface {
	CreateSeason(ctx context.Context, req dto.CreateSeasonRequest) error
	GetSeasons(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSeasonsResponse, error)
	UpdateSeason(ctx context.Context, req dto.UpdateSeasonRequest, id string) error
	DeleteSeason(ctx context.Context, id string) error

	CreateMealPlan(ctx context.Context, req dto.CreateMealPlanRequest) error
	GetMealPlans(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMealPlansResponse, error)
	UpdateMealPlan(ctx context.Context, req dto.UpdateMealPlanRequest, id string) error
	DeleteMealPlan(ctx context.Context, id string) error

	CreateTax(ctx context.Context, req dto.CreateTaxRequest) error
	GetTaxes(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTaxesResponse, error)
	UpdateTax(ctx context.Context, req dto.UpdateTaxRequest, id string) error
	DeleteTax(ctx context.Context, id string) error
}

type serviceImpl struct {
	seasonRepo   repository.Season
	mealPlanRepo repository.MealPlan
	taxRepo      repository.Tax
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(seasonRepo repository.Season, mealPlanRepo repository.MealPlan, taxRepo repository.Tax, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Rates {
	return &serviceImpl{
		seasonRepo:   seasonRepo,
		mealPlanRepo: mealPlanRepo,
		taxRepo:      taxRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateSeason(ctx context.Context, req dto.CreateSeasonRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSeason")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	season, err := req.ToModel(user)
	if err != nil {
		return err
	}

	if err = s.seasonRepo.Insert(ctx, season); err != nil {
		return err
	}

	s.invalidate(ctx, cacheGetAllSeason)

	return nil
}

func (s *serviceImpl) GetSeasons(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSeasonsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSeasons")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSeason, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.seasonRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count seasons")

		return res, fmt.Errorf("failed to count seasons: %w", err)
	}

	models, err := s.seasonRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seasons")

		return res, fmt.Errorf("failed to get seasons: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seasons to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateSeason(ctx context.Context, req dto.UpdateSeasonRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSeason")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.SeasonTableName)

	exist, err := s.seasonRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check season existence")

		return fmt.Errorf("failed to check season existence: %w", err)
	}

	if !exist {
		return failure.NotFound("season not found") // nolint:wrapcheck
	}

	if req.Multiplier != nil && !req.Multiplier.IsPositive() {
		return failure.BadRequestFromString("multiplier must be positive")
	}

	if err = s.seasonRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update season")

		return fmt.Errorf("failed to update season: %w", err)
	}

	s.invalidate(ctx, cacheGetAllSeason)

	return nil
}

func (s *serviceImpl) DeleteSeason(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSeason")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.SeasonTableName)

	exist, err := s.seasonRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check season existence")

		return fmt.Errorf("failed to check season existence: %w", err)
	}

	if !exist {
		return failure.NotFound("season not found") // nolint:wrapcheck
	}

	if err = s.seasonRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete season")

		return fmt.Errorf("failed to delete season: %w", err)
	}

	s.invalidate(ctx, cacheGetAllSeason)

	return nil
}

func (s *serviceImpl) CreateMealPlan(ctx context.Context, req dto.CreateMealPlanRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMealPlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.AdultPrice.IsNegative() || req.ChildPrice.IsNegative() {
		return failure.BadRequestFromString("prices must not be negative")
	}

	planTypeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPlanType,
				Operator: gDto.FilterOperatorEq,
				Value:    req.PlanType,
				Table:    model.MealPlanTableName,
			},
		},
	}

	exists, err := s.mealPlanRepo.Exist(ctx, planTypeFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check meal plan existence")

		return fmt.Errorf("failed to check meal plan existence: %w", err)
	}

	if exists {
		return failure.Conflict("meal plan type already configured") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.mealPlanRepo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	s.invalidate(ctx, cacheGetAllMealPlan)

	return nil
}

func (s *serviceImpl) GetMealPlans(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMealPlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMealPlans")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMealPlan, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.mealPlanRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count meal plans")

		return res, fmt.Errorf("failed to count meal plans: %w", err)
	}

	models, err := s.mealPlanRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get meal plans")

		return res, fmt.Errorf("failed to get meal plans: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meal plans to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateMealPlan(ctx context.Context, req dto.UpdateMealPlanRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMealPlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.MealPlanTableName)

	exist, err := s.mealPlanRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check meal plan existence")

		return fmt.Errorf("failed to check meal plan existence: %w", err)
	}

	if !exist {
		return failure.NotFound("meal plan not found") // nolint:wrapcheck
	}

	if req.AdultPrice != nil && req.AdultPrice.IsNegative() {
		return failure.BadRequestFromString("prices must not be negative")
	}

	if err = s.mealPlanRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update meal plan")

		return fmt.Errorf("failed to update meal plan: %w", err)
	}

	s.invalidate(ctx, cacheGetAllMealPlan)

	return nil
}

func (s *serviceImpl) DeleteMealPlan(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteMealPlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.MealPlanTableName)

	exist, err := s.mealPlanRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check meal plan existence")

		return fmt.Errorf("failed to check meal plan existence: %w", err)
	}

	if !exist {
		return failure.NotFound("meal plan not found") // nolint:wrapcheck
	}

	if err = s.mealPlanRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete meal plan")

		return fmt.Errorf("failed to delete meal plan: %w", err)
	}

	s.invalidate(ctx, cacheGetAllMealPlan)

	return nil
}

func (s *serviceImpl) CreateTax(ctx context.Context, req dto.CreateTaxRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTax")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Rate.IsNegative() {
		return failure.BadRequestFromString("tax rate must not be negative")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.taxRepo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	s.invalidate(ctx, cacheGetAllTax)

	return nil
}

func (s *serviceImpl) GetTaxes(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTaxesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTaxes")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTax, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.taxRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count taxes")

		return res, fmt.Errorf("failed to count taxes: %w", err)
	}

	models, err := s.taxRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get taxes")

		return res, fmt.Errorf("failed to get taxes: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save taxes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateTax(ctx context.Context, req dto.UpdateTaxRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTax")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TaxTableName)

	exist, err := s.taxRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check tax existence")

		return fmt.Errorf("failed to check tax existence: %w", err)
	}

	if !exist {
		return failure.NotFound("tax not found") // nolint:wrapcheck
	}

	if req.Rate != nil && req.Rate.IsNegative() {
		return failure.BadRequestFromString("tax rate must not be negative")
	}

	if err = s.taxRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update tax")

		return fmt.Errorf("failed to update tax: %w", err)
	}

	s.invalidate(ctx, cacheGetAllTax)

	return nil
}

func (s *serviceImpl) DeleteTax(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTax")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TaxTableName)

	exist, err := s.taxRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check tax existence")

		return fmt.Errorf("failed to check tax existence: %w", err)
	}

	if !exist {
		return failure.NotFound("tax not found") // nolint:wrapcheck
	}

	if err = s.taxRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete tax")

		return fmt.Errorf("failed to delete tax: %w", err)
	}

	s.invalidate(ctx, cacheGetAllTax)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, prefix string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, prefix)
	}()
}
