package model

import (
	"resort/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_categories"
	EntityName = "room_category"

	FieldID              = "id"
	FieldName            = "name"
	FieldSlug            = "slug"
	FieldDescription     = "description"
	FieldBasePrice       = "base_price"
	FieldBaseOccupancy   = "base_occupancy"
	FieldMaxAdults       = "max_adults"
	FieldMaxChildren     = "max_children"
	FieldExtraAdultPrice = "extra_adult_price"
	FieldExtraChildPrice = "extra_child_price"
	FieldTotalRooms      = "total_rooms"
	FieldStatus          = "status"
	FieldImage           = "image"

	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusMaintenance = "maintenance"
)

type RoomCategory struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	Slug            string          `db:"slug"`
	Description     string          `db:"description"`
	BasePrice       decimal.Decimal `db:"base_price"`
	BaseOccupancy   int             `db:"base_occupancy"`
	MaxAdults       int             `db:"max_adults"`
	MaxChildren     int             `db:"max_children"`
	ExtraAdultPrice decimal.Decimal `db:"extra_adult_price"`
	ExtraChildPrice decimal.Decimal `db:"extra_child_price"`
	TotalRooms      int             `db:"total_rooms"`
	Status          string          `db:"status"`
	Image           string          `db:"image"`
	Amenities       pq.StringArray  `db:"amenities"`
	model.Metadata
}

// Bookable reports whether the category can take new bookings.
func (r *RoomCategory) Bookable() bool {
	return r.Status == StatusActive
}
