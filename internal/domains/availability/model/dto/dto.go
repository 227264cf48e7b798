package dto

import (
	"resort/internal/domains/availability/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
)

type CalendarRequest struct {
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
}

type CalendarDay struct {
	Date           string `json:"date"`
	RoomsBlocked   int    `json:"rooms_blocked"`
	RoomsAvailable int    `json:"rooms_available"`
}

type CalendarResponse struct {
	RoomCategoryID string        `json:"room_category_id"`
	TotalRooms     int           `json:"total_rooms"`
	Days           []CalendarDay `json:"days"`
}

// CreateBlockRequest blocks rooms for every night in [start_date, end_date).
type CreateBlockRequest struct {
	RoomCategoryID string `json:"room_category_id" validate:"required,uuid"`
	StartDate      string `json:"start_date"       validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date"         validate:"required,datetime=2006-01-02"`
	RoomsBlocked   int    `json:"rooms_blocked"    validate:"omitempty,min=1"`
	Reason         string `json:"reason"           validate:"omitempty,max=200"`
}

type BlockedDateResponse struct {
	ID             string `json:"id"`
	RoomCategoryID string `json:"room_category_id"`
	BlockedDate    string `json:"blocked_date"`
	RoomsBlocked   int    `json:"rooms_blocked"`
	Reason         string `json:"reason"`
	BookingID      string `json:"booking_id,omitempty"`
	gDto.Metadata
}

func (r *BlockedDateResponse) FromModel(model model.BlockedDate) {
	r.ID = model.ID
	r.RoomCategoryID = model.RoomCategoryID
	r.BlockedDate = model.BlockedDate.Format(constant.DateFormatDay)
	r.RoomsBlocked = model.RoomsBlocked
	r.Reason = model.Reason

	if model.BookingID != nil {
		r.BookingID = *model.BookingID
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBlockedDatesResponse struct {
	BlockedDates []BlockedDateResponse `json:"blocked_dates"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetBlockedDatesResponse) FromModels(models []model.BlockedDate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.BlockedDates = make([]BlockedDateResponse, len(models))
	for i, mod := range models {
		r.BlockedDates[i].FromModel(mod)
	}
}
