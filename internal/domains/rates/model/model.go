package model

import (
	"time"

	"resort/shared/model"

	"github.com/shopspring/decimal"
)

const (
	SeasonTableName  = "seasons"
	SeasonEntityName = "season"

	MealPlanTableName  = "meal_plan_prices"
	MealPlanEntityName = "meal_plan_price"

	TaxTableName  = "tax_config"
	TaxEntityName = "tax_config"

	FieldID         = "id"
	FieldName       = "name"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldMultiplier = "multiplier"
	FieldSeasonType = "season_type"
	FieldActive     = "active"
	FieldPlanType   = "plan_type"
	FieldAdultPrice = "adult_price"
	FieldChildPrice = "child_price"
	FieldRate       = "rate"
)

const (
	SeasonTypePeak    = "peak"
	SeasonTypeRegular = "regular"
	SeasonTypeOffPeak = "off_peak"
)

// Meal plan codes follow the common hospitality board basis notation.
const (
	MealPlanEP  = "EP"  // room only
	MealPlanCP  = "CP"  // breakfast
	MealPlanMAP = "MAP" // breakfast + one main meal
	MealPlanAP  = "AP"  // all meals
)

type Season struct {
	ID         string          `db:"id"`
	Name       string          `db:"name"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	Multiplier decimal.Decimal `db:"multiplier"`
	SeasonType string          `db:"season_type"`
	Active     bool            `db:"active"`
	model.Metadata
}

// Covers reports whether the season applies to the given night. Both
// boundary dates are inclusive.
func (s *Season) Covers(night time.Time) bool {
	return !night.Before(s.StartDate) && !night.After(s.EndDate)
}

type MealPlanPrice struct {
	ID         string          `db:"id"`
	PlanType   string          `db:"plan_type"`
	Name       string          `db:"name"`
	AdultPrice decimal.Decimal `db:"adult_price"`
	ChildPrice decimal.Decimal `db:"child_price"`
	Active     bool            `db:"active"`
	model.Metadata
}

type TaxConfig struct {
	ID     string          `db:"id"`
	Name   string          `db:"name"`
	Rate   decimal.Decimal `db:"rate"`
	Active bool            `db:"active"`
	model.Metadata
}
