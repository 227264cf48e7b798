package model

import (
	"time"

	"resort/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingReference = "booking_reference"
	FieldRoomCategoryID   = "room_category_id"
	FieldUserID           = "user_id"
	FieldGuestName        = "guest_name"
	FieldGuestEmail       = "guest_email"
	FieldGuestPhone       = "guest_phone"
	FieldCheckInDate      = "check_in_date"
	FieldCheckOutDate     = "check_out_date"
	FieldStatus           = "status"
	FieldIsEnquiryOnly    = "is_enquiry_only"
	FieldConfirmedAt      = "confirmed_at"
	FieldCancelledAt      = "cancelled_at"
	FieldCompletedAt      = "completed_at"
)

const (
	StatusNewEnquiry          = "new_enquiry"
	StatusPendingConfirmation = "pending_confirmation"
	StatusConfirmed           = "confirmed"
	StatusCompleted           = "completed"
	StatusCancelled           = "cancelled"
)

// transitions lists the statuses a booking may move to. Completed and
// cancelled are terminal.
var transitions = map[string][]string{
	StatusNewEnquiry:          {StatusPendingConfirmation, StatusConfirmed, StatusCancelled},
	StatusPendingConfirmation: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusCompleted, StatusCancelled},
}

func ValidTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// Booking persists the full price breakdown alongside the stay, so the bill
// stays reproducible even after rates change.
type Booking struct {
	ID               string          `db:"id"`
	BookingReference string          `db:"booking_reference"`
	RoomCategoryID   string          `db:"room_category_id"`
	UserID           *string         `db:"user_id"`
	GuestName        string          `db:"guest_name"`
	GuestEmail       string          `db:"guest_email"`
	GuestPhone       string          `db:"guest_phone"`
	CheckInDate      time.Time       `db:"check_in_date"`
	CheckOutDate     time.Time       `db:"check_out_date"`
	NumAdults        int             `db:"num_adults"`
	NumChildren      int             `db:"num_children"`
	NumNights        int             `db:"num_nights"`
	MealPlan         string          `db:"meal_plan"`
	PackageID        *string         `db:"package_id"`
	BaseRoomPrice    decimal.Decimal `db:"base_room_price"`
	SeasonMultiplier decimal.Decimal `db:"season_multiplier"`
	RoomTotal        decimal.Decimal `db:"room_total"`
	ExtraAdultTotal  decimal.Decimal `db:"extra_adult_total"`
	ExtraChildTotal  decimal.Decimal `db:"extra_child_total"`
	ExtraGuestTotal  decimal.Decimal `db:"extra_guest_total"`
	MealPlanTotal    decimal.Decimal `db:"meal_plan_total"`
	PackageTotal     decimal.Decimal `db:"package_total"`
	Subtotal         decimal.Decimal `db:"subtotal"`
	TaxRate          decimal.Decimal `db:"tax_rate"`
	Taxes            decimal.Decimal `db:"taxes"`
	DiscountAmount   decimal.Decimal `db:"discount_amount"`
	GrandTotal       decimal.Decimal `db:"grand_total"`
	SpecialRequests  string          `db:"special_requests"`
	Status           string          `db:"status"`
	IsEnquiryOnly    bool            `db:"is_enquiry_only"`
	ConfirmedAt      *time.Time      `db:"confirmed_at"`
	CancelledAt      *time.Time      `db:"cancelled_at"`
	CompletedAt      *time.Time      `db:"completed_at"`
	model.Metadata
}

// StatusCount is the per-status aggregate used by the stats endpoint.
type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}
