package dto

import (
	"resort/internal/domains/rates/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSeasonRequest struct {
	Name       string          `json:"name"        validate:"required,max=100"`
	StartDate  string          `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate    string          `json:"end_date"    validate:"required,datetime=2006-01-02"`
	Multiplier decimal.Decimal `json:"multiplier"  validate:"required"`
	SeasonType string          `json:"season_type" validate:"omitempty,oneof=peak regular off_peak"`
	Active     *bool           `json:"active"      validate:"omitempty"`
}

func (c *CreateSeasonRequest) ToModel(user string) (model.Season, error) {
	startDate, err := timezone.ParseDate(c.StartDate)
	if err != nil {
		return model.Season{}, failure.BadRequestFromString("invalid start date")
	}

	endDate, err := timezone.ParseDate(c.EndDate)
	if err != nil {
		return model.Season{}, failure.BadRequestFromString("invalid end date")
	}

	if endDate.Before(startDate) {
		return model.Season{}, failure.BadRequestFromString("end date must not be before start date")
	}

	if !c.Multiplier.IsPositive() {
		return model.Season{}, failure.BadRequestFromString("multiplier must be positive")
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	seasonType := c.SeasonType
	if seasonType == "" {
		seasonType = model.SeasonTypeRegular
	}

	return model.Season{
		ID:         uuid.NewString(),
		Name:       c.Name,
		StartDate:  startDate,
		EndDate:    endDate,
		Multiplier: c.Multiplier,
		SeasonType: seasonType,
		Active:     active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateSeasonRequest struct {
	Name       string           `db:"name"        json:"name"        validate:"omitempty,max=100"`
	StartDate  string           `db:"start_date"  json:"start_date"  validate:"omitempty,datetime=2006-01-02"`
	EndDate    string           `db:"end_date"    json:"end_date"    validate:"omitempty,datetime=2006-01-02"`
	Multiplier *decimal.Decimal `db:"multiplier"  json:"multiplier"  validate:"omitempty"`
	SeasonType string           `db:"season_type" json:"season_type" validate:"omitempty,oneof=peak regular off_peak"`
	Active     *bool            `db:"active"      json:"active"      validate:"omitempty"`
}

type SeasonResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Multiplier decimal.Decimal `json:"multiplier"`
	SeasonType string          `json:"season_type"`
	Active     bool            `json:"active"`
	gDto.Metadata
}

func (r *SeasonResponse) FromModel(model model.Season) {
	r.ID = model.ID
	r.Name = model.Name
	r.StartDate = model.StartDate.Format(constant.DateFormatDay)
	r.EndDate = model.EndDate.Format(constant.DateFormatDay)
	r.Multiplier = model.Multiplier
	r.SeasonType = model.SeasonType
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetSeasonsResponse struct {
	Seasons   []SeasonResponse `json:"seasons"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetSeasonsResponse) FromModels(models []model.Season, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Seasons = make([]SeasonResponse, len(models))
	for i, mod := range models {
		r.Seasons[i].FromModel(mod)
	}
}

type CreateMealPlanRequest struct {
	PlanType   string          `json:"plan_type"   validate:"required,oneof=EP CP MAP AP"`
	Name       string          `json:"name"        validate:"required,max=100"`
	AdultPrice decimal.Decimal `json:"adult_price" validate:"required"`
	ChildPrice decimal.Decimal `json:"child_price" validate:"omitempty"`
	Active     *bool           `json:"active"      validate:"omitempty"`
}

func (c *CreateMealPlanRequest) ToModel(user string) model.MealPlanPrice {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.MealPlanPrice{
		ID:         uuid.NewString(),
		PlanType:   c.PlanType,
		Name:       c.Name,
		AdultPrice: c.AdultPrice,
		ChildPrice: c.ChildPrice,
		Active:     active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMealPlanRequest struct {
	Name       string           `db:"name"        json:"name"        validate:"omitempty,max=100"`
	AdultPrice *decimal.Decimal `db:"adult_price" json:"adult_price" validate:"omitempty"`
	ChildPrice *decimal.Decimal `db:"child_price" json:"child_price" validate:"omitempty"`
	Active     *bool            `db:"active"      json:"active"      validate:"omitempty"`
}

type MealPlanResponse struct {
	ID         string          `json:"id"`
	PlanType   string          `json:"plan_type"`
	Name       string          `json:"name"`
	AdultPrice decimal.Decimal `json:"adult_price"`
	ChildPrice decimal.Decimal `json:"child_price"`
	Active     bool            `json:"active"`
	gDto.Metadata
}

func (r *MealPlanResponse) FromModel(model model.MealPlanPrice) {
	r.ID = model.ID
	r.PlanType = model.PlanType
	r.Name = model.Name
	r.AdultPrice = model.AdultPrice
	r.ChildPrice = model.ChildPrice
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetMealPlansResponse struct {
	MealPlans []MealPlanResponse `json:"meal_plans"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMealPlansResponse) FromModels(models []model.MealPlanPrice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MealPlans = make([]MealPlanResponse, len(models))
	for i, mod := range models {
		r.MealPlans[i].FromModel(mod)
	}
}

type CreateTaxRequest struct {
	Name   string          `json:"name"   validate:"required,max=100"`
	Rate   decimal.Decimal `json:"rate"   validate:"required"`
	Active *bool           `json:"active" validate:"omitempty"`
}

func (c *CreateTaxRequest) ToModel(user string) model.TaxConfig {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.TaxConfig{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Rate:   c.Rate,
		Active: active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTaxRequest struct {
	Name   string           `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Rate   *decimal.Decimal `db:"rate"   json:"rate"   validate:"omitempty"`
	Active *bool            `db:"active" json:"active" validate:"omitempty"`
}

type TaxResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Active bool            `json:"active"`
	gDto.Metadata
}

func (r *TaxResponse) FromModel(model model.TaxConfig) {
	r.ID = model.ID
	r.Name = model.Name
	r.Rate = model.Rate
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetTaxesResponse struct {
	Taxes     []TaxResponse `json:"taxes"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetTaxesResponse) FromModels(models []model.TaxConfig, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Taxes = make([]TaxResponse, len(models))
	for i, mod := range models {
		r.Taxes[i].FromModel(mod)
	}
}
