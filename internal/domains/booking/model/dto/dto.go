package dto

import (
	"resort/internal/domains/booking/model"
	pricingDto "resort/internal/domains/pricing/model/dto"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	GuestName       string `json:"guest_name"       validate:"required,max=150"`
	GuestEmail      string `json:"guest_email"      validate:"required,email"`
	GuestPhone      string `json:"guest_phone"      validate:"required,max=30"`
	RoomCategoryID  string `json:"room_category_id" validate:"required,uuid"`
	CheckInDate     string `json:"check_in_date"    validate:"required,datetime=2006-01-02"`
	CheckOutDate    string `json:"check_out_date"   validate:"required,datetime=2006-01-02"`
	NumAdults       int    `json:"num_adults"       validate:"required,min=1"`
	NumChildren     int    `json:"num_children"     validate:"omitempty,min=0"`
	MealPlan        string `json:"meal_plan"        validate:"omitempty,oneof=EP CP MAP AP"`
	PackageID       string `json:"package_id"       validate:"omitempty,uuid"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=2000"`
	IsEnquiryOnly   bool   `json:"is_enquiry_only"`
}

// ToQuoteRequest maps the stay parameters onto a pricing quote.
func (c *CreateBookingRequest) ToQuoteRequest() pricingDto.QuoteRequest {
	return pricingDto.QuoteRequest{
		RoomCategoryID: c.RoomCategoryID,
		CheckInDate:    c.CheckInDate,
		CheckOutDate:   c.CheckOutDate,
		NumAdults:      c.NumAdults,
		NumChildren:    c.NumChildren,
		MealPlan:       c.MealPlan,
		PackageID:      c.PackageID,
	}
}

// ToModel freezes the quoted breakdown into a booking row. The reference is
// generated server-side; user is empty for guest checkouts.
func (c *CreateBookingRequest) ToModel(user, reference string, quote pricingDto.BreakdownResponse) (model.Booking, error) {
	checkIn, err := timezone.ParseDate(c.CheckInDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("invalid check-in date")
	}

	checkOut, err := timezone.ParseDate(c.CheckOutDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("invalid check-out date")
	}

	status := model.StatusPendingConfirmation
	if c.IsEnquiryOnly {
		status = model.StatusNewEnquiry
	}

	var userID *string

	audit := user
	if audit == "" {
		audit = constant.ContextGuest
	} else {
		userID = &user
	}

	var packageID *string
	if c.PackageID != "" {
		packageID = &c.PackageID
	}

	return model.Booking{
		ID:               uuid.NewString(),
		BookingReference: reference,
		RoomCategoryID:   c.RoomCategoryID,
		UserID:           userID,
		GuestName:        c.GuestName,
		GuestEmail:       c.GuestEmail,
		GuestPhone:       c.GuestPhone,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		NumAdults:        c.NumAdults,
		NumChildren:      c.NumChildren,
		NumNights:        quote.NumNights,
		MealPlan:         c.MealPlan,
		PackageID:        packageID,
		BaseRoomPrice:    quote.BaseRoomPrice,
		SeasonMultiplier: quote.SeasonMultiplier,
		RoomTotal:        quote.RoomTotal,
		ExtraAdultTotal:  quote.ExtraAdultTotal,
		ExtraChildTotal:  quote.ExtraChildTotal,
		ExtraGuestTotal:  quote.ExtraGuestTotal,
		MealPlanTotal:    quote.MealPlanTotal,
		PackageTotal:     quote.PackageTotal,
		Subtotal:         quote.Subtotal,
		TaxRate:          quote.TaxRate,
		Taxes:            quote.Taxes,
		DiscountAmount:   decimal.Zero,
		GrandTotal:       quote.GrandTotal,
		SpecialRequests:  c.SpecialRequests,
		Status:           status,
		IsEnquiryOnly:    c.IsEnquiryOnly,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  audit,
			ModifiedBy: audit,
		},
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new_enquiry pending_confirmation confirmed completed cancelled"`
}

type BookingResponse struct {
	ID               string          `json:"id"`
	BookingReference string          `json:"booking_reference"`
	RoomCategoryID   string          `json:"room_category_id"`
	UserID           string          `json:"user_id,omitempty"`
	GuestName        string          `json:"guest_name"`
	GuestEmail       string          `json:"guest_email"`
	GuestPhone       string          `json:"guest_phone"`
	CheckInDate      string          `json:"check_in_date"`
	CheckOutDate     string          `json:"check_out_date"`
	NumAdults        int             `json:"num_adults"`
	NumChildren      int             `json:"num_children"`
	NumNights        int             `json:"num_nights"`
	MealPlan         string          `json:"meal_plan,omitempty"`
	PackageID        string          `json:"package_id,omitempty"`
	BaseRoomPrice    decimal.Decimal `json:"base_room_price"`
	SeasonMultiplier decimal.Decimal `json:"season_multiplier"`
	RoomTotal        decimal.Decimal `json:"room_total"`
	ExtraAdultTotal  decimal.Decimal `json:"extra_adult_total"`
	ExtraChildTotal  decimal.Decimal `json:"extra_child_total"`
	ExtraGuestTotal  decimal.Decimal `json:"extra_guest_total"`
	MealPlanTotal    decimal.Decimal `json:"meal_plan_total"`
	PackageTotal     decimal.Decimal `json:"package_total"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	Taxes            decimal.Decimal `json:"taxes"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	SpecialRequests  string          `json:"special_requests,omitempty"`
	Status           string          `json:"status"`
	IsEnquiryOnly    bool            `json:"is_enquiry_only"`
	ConfirmedAt      string          `json:"confirmed_at,omitempty"`
	CancelledAt      string          `json:"cancelled_at,omitempty"`
	CompletedAt      string          `json:"completed_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingReference = model.BookingReference
	r.RoomCategoryID = model.RoomCategoryID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckInDate = model.CheckInDate.Format(constant.DateFormatDay)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateFormatDay)
	r.NumAdults = model.NumAdults
	r.NumChildren = model.NumChildren
	r.NumNights = model.NumNights
	r.MealPlan = model.MealPlan
	r.BaseRoomPrice = model.BaseRoomPrice
	r.SeasonMultiplier = model.SeasonMultiplier
	r.RoomTotal = model.RoomTotal
	r.ExtraAdultTotal = model.ExtraAdultTotal
	r.ExtraChildTotal = model.ExtraChildTotal
	r.ExtraGuestTotal = model.ExtraGuestTotal
	r.MealPlanTotal = model.MealPlanTotal
	r.PackageTotal = model.PackageTotal
	r.Subtotal = model.Subtotal
	r.TaxRate = model.TaxRate
	r.Taxes = model.Taxes
	r.DiscountAmount = model.DiscountAmount
	r.GrandTotal = model.GrandTotal
	r.SpecialRequests = model.SpecialRequests
	r.Status = model.Status
	r.IsEnquiryOnly = model.IsEnquiryOnly

	if model.UserID != nil {
		r.UserID = *model.UserID
	}

	if model.PackageID != nil {
		r.PackageID = *model.PackageID
	}

	if model.ConfirmedAt != nil {
		r.ConfirmedAt = timezone.Format(*model.ConfirmedAt, constant.DateFormat)
	}

	if model.CancelledAt != nil {
		r.CancelledAt = timezone.Format(*model.CancelledAt, constant.DateFormat)
	}

	if model.CompletedAt != nil {
		r.CompletedAt = timezone.Format(*model.CompletedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type BookingStatsResponse struct {
	Total               int `json:"total"`
	NewEnquiries        int `json:"new_enquiries"`
	PendingConfirmation int `json:"pending_confirmation"`
	Confirmed           int `json:"confirmed"`
	Completed           int `json:"completed"`
	Cancelled           int `json:"cancelled"`
}

func (r *BookingStatsResponse) FromCounts(counts []model.StatusCount) {
	for _, count := range counts {
		r.Total += count.Count

		switch count.Status {
		case model.StatusNewEnquiry:
			r.NewEnquiries = count.Count
		case model.StatusPendingConfirmation:
			r.PendingConfirmation = count.Count
		case model.StatusConfirmed:
			r.Confirmed = count.Count
		case model.StatusCompleted:
			r.Completed = count.Count
		case model.StatusCancelled:
			r.Cancelled = count.Count
		}
	}
}
