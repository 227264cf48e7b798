package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/rates/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

type Season interface {
	Insert(ctx context.Context, model model.Season) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Season, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Season, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type MealPlan interface {
	Insert(ctx context.Context, model model.MealPlanPrice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MealPlanPrice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MealPlanPrice, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Tax interface {
	Insert(ctx context.Context, model model.TaxConfig) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TaxConfig, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TaxConfig, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type seasonRepositoryImpl struct {
	gRepo.Repository[model.Season]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSeason(db *postgres.Connection, otel otel.Otel) Season {
	return &seasonRepositoryImpl{
		Repository: gRepo.NewRepository[model.Season](model.SeasonEntityName, model.SeasonTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type mealPlanRepositoryImpl struct {
	gRepo.Repository[model.MealPlanPrice]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMealPlan(db *postgres.Connection, otel otel.Otel) MealPlan {
	return &mealPlanRepositoryImpl{
		Repository: gRepo.NewRepository[model.MealPlanPrice](model.MealPlanEntityName, model.MealPlanTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type taxRepositoryImpl struct {
	gRepo.Repository[model.TaxConfig]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTax(db *postgres.Connection, otel otel.Otel) Tax {
	return &taxRepositoryImpl{
		Repository: gRepo.NewRepository[model.TaxConfig](model.TaxEntityName, model.TaxTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
