package dto

import (
	"resort/internal/domains/room/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateRoomCategoryRequest struct {
	Name            string          `json:"name"              validate:"required,max=100"`
	Slug            string          `json:"slug"              validate:"omitempty,max=100,lowercase"`
	Description     string          `json:"description"       validate:"omitempty,max=2000"`
	BasePrice       decimal.Decimal `json:"base_price"        validate:"required"`
	BaseOccupancy   int             `json:"base_occupancy"    validate:"required,min=1"`
	MaxAdults       int             `json:"max_adults"        validate:"required,min=1"`
	MaxChildren     int             `json:"max_children"      validate:"omitempty,min=0"`
	ExtraAdultPrice decimal.Decimal `json:"extra_adult_price" validate:"omitempty"`
	ExtraChildPrice decimal.Decimal `json:"extra_child_price" validate:"omitempty"`
	TotalRooms      int             `json:"total_rooms"       validate:"required,min=1"`
	Status          string          `json:"status"            validate:"omitempty,oneof=active inactive maintenance"`
	Amenities       []string        `json:"amenities"         validate:"omitempty,dive,max=100"`
}

func (c *CreateRoomCategoryRequest) ToModel(user string) model.RoomCategory {
	status := c.Status
	if status == "" {
		status = model.StatusActive
	}

	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Name)
	}

	return model.RoomCategory{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Slug:            slug,
		Description:     c.Description,
		BasePrice:       c.BasePrice,
		BaseOccupancy:   c.BaseOccupancy,
		MaxAdults:       c.MaxAdults,
		MaxChildren:     c.MaxChildren,
		ExtraAdultPrice: c.ExtraAdultPrice,
		ExtraChildPrice: c.ExtraChildPrice,
		TotalRooms:      c.TotalRooms,
		Status:          status,
		Amenities:       pq.StringArray(c.Amenities),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomCategoryRequest struct {
	Name            string           `db:"name"              json:"name"              validate:"omitempty,max=100"`
	Slug            string           `db:"slug"              json:"slug"              validate:"omitempty,max=100,lowercase"`
	Description     string           `db:"description"       json:"description"       validate:"omitempty,max=2000"`
	BasePrice       *decimal.Decimal `db:"base_price"        json:"base_price"        validate:"omitempty"`
	BaseOccupancy   *int             `db:"base_occupancy"    json:"base_occupancy"    validate:"omitempty,min=1"`
	MaxAdults       *int             `db:"max_adults"        json:"max_adults"        validate:"omitempty,min=1"`
	MaxChildren     *int             `db:"max_children"      json:"max_children"      validate:"omitempty,min=0"`
	ExtraAdultPrice *decimal.Decimal `db:"extra_adult_price" json:"extra_adult_price" validate:"omitempty"`
	ExtraChildPrice *decimal.Decimal `db:"extra_child_price" json:"extra_child_price" validate:"omitempty"`
	TotalRooms      *int             `db:"total_rooms"       json:"total_rooms"       validate:"omitempty,min=1"`
	Status          string           `db:"status"            json:"status"            validate:"omitempty,oneof=active inactive maintenance"`
	Amenities       pq.StringArray   `db:"amenities"         json:"amenities"         validate:"omitempty,dive,max=100"`
}

type UploadImageRequest struct {
	Image string `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=4"`
}

type RoomCategoryResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	BasePrice       decimal.Decimal `json:"base_price"`
	BaseOccupancy   int             `json:"base_occupancy"`
	MaxAdults       int             `json:"max_adults"`
	MaxChildren     int             `json:"max_children"`
	ExtraAdultPrice decimal.Decimal `json:"extra_adult_price"`
	ExtraChildPrice decimal.Decimal `json:"extra_child_price"`
	TotalRooms      int             `json:"total_rooms"`
	Status          string          `json:"status"`
	Image           string          `json:"image"`
	Amenities       []string        `json:"amenities"`
	gDto.Metadata
}

func (r *RoomCategoryResponse) FromModel(model model.RoomCategory) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.BasePrice = model.BasePrice
	r.BaseOccupancy = model.BaseOccupancy
	r.MaxAdults = model.MaxAdults
	r.MaxChildren = model.MaxChildren
	r.ExtraAdultPrice = model.ExtraAdultPrice
	r.ExtraChildPrice = model.ExtraChildPrice
	r.TotalRooms = model.TotalRooms
	r.Status = model.Status
	r.Image = model.Image
	r.Amenities = model.Amenities
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomCategoriesResponse struct {
	RoomCategories []RoomCategoryResponse `json:"room_categories"`
	TotalPage      int                    `json:"total_page"`
	TotalData      int                    `json:"total_data"`
}

func (r *GetRoomCategoriesResponse) FromModels(models []model.RoomCategory, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomCategories = make([]RoomCategoryResponse, len(models))
	for i, mod := range models {
		r.RoomCategories[i].FromModel(mod)
	}
}
