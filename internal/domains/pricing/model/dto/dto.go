package dto

import (
	"github.com/shopspring/decimal"
)

type QuoteRequest struct {
	RoomCategoryID string `json:"room_category_id" validate:"required,uuid"`
	CheckInDate    string `json:"check_in_date"    validate:"required,datetime=2006-01-02"`
	CheckOutDate   string `json:"check_out_date"   validate:"required,datetime=2006-01-02"`
	NumAdults      int    `json:"num_adults"       validate:"required,min=1"`
	NumChildren    int    `json:"num_children"     validate:"omitempty,min=0"`
	MealPlan       string `json:"meal_plan"        validate:"omitempty,oneof=EP CP MAP AP"`
	PackageID      string `json:"package_id"       validate:"omitempty,uuid"`
}

// BreakdownResponse carries every intermediate figure of a quote so the
// caller can render the full bill, not just the grand total.
type BreakdownResponse struct {
	RoomCategoryID     string          `json:"room_category_id"`
	NumNights          int             `json:"num_nights"`
	BaseRoomPrice      decimal.Decimal `json:"base_room_price"`
	SeasonMultiplier   decimal.Decimal `json:"season_multiplier"`
	RoomTotal          decimal.Decimal `json:"room_total"`
	ExtraAdults        int             `json:"extra_adults"`
	ExtraChildren      int             `json:"extra_children"`
	ExtraAdultTotal    decimal.Decimal `json:"extra_adult_total"`
	ExtraChildTotal    decimal.Decimal `json:"extra_child_total"`
	ExtraGuestTotal    decimal.Decimal `json:"extra_guest_total"`
	MealPlan           string          `json:"meal_plan"`
	MealPlanAdultTotal decimal.Decimal `json:"meal_plan_adult_total"`
	MealPlanChildTotal decimal.Decimal `json:"meal_plan_child_total"`
	MealPlanTotal      decimal.Decimal `json:"meal_plan_total"`
	PackageTotal       decimal.Decimal `json:"package_total"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	Taxes              decimal.Decimal `json:"taxes"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
}
