package model

import (
	"time"

	"resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

const (
	TableName  = "blocked_dates"
	EntityName = "blocked_date"

	FieldID             = "id"
	FieldRoomCategoryID = "room_category_id"
	FieldBlockedDate    = "blocked_date"
	FieldReason         = "reason"
	FieldBookingID      = "booking_id"

	ReasonBooking = "Booking"
	ReasonManual  = "Manual"
)

// BlockedDate takes one room out of inventory for one night. A stay of N
// nights produces N rows; the check-out day is never blocked.
type BlockedDate struct {
	ID             string    `db:"id"`
	RoomCategoryID string    `db:"room_category_id"`
	BlockedDate    time.Time `db:"blocked_date"`
	RoomsBlocked   int       `db:"rooms_blocked"`
	Reason         string    `db:"reason"`
	BookingID      *string   `db:"booking_id"`
	model.Metadata
}

// DateCount is the per-date aggregate of blocked rooms.
type DateCount struct {
	Date    time.Time `db:"blocked_date"`
	Blocked int       `db:"blocked"`
}

// ForBooking builds the block rows backing a booking, one per night.
func ForBooking(bookingID, roomCategoryID string, nights []time.Time, user string) []BlockedDate {
	blocks := make([]BlockedDate, len(nights))

	for i, night := range nights {
		blocks[i] = BlockedDate{
			ID:             uuid.NewString(),
			RoomCategoryID: roomCategoryID,
			BlockedDate:    night,
			RoomsBlocked:   1,
			Reason:         ReasonBooking,
			BookingID:      &bookingID,
			Metadata: model.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return blocks
}
