package dto

import (
	"resort/internal/domains/packages/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePackageRequest struct {
	Name        string          `json:"name"         validate:"required,max=100"`
	Description string          `json:"description"  validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price"        validate:"required"`
	PricingMode string          `json:"pricing_mode" validate:"required,oneof=fixed per_night"`
	Active      *bool           `json:"active"       validate:"omitempty"`
}

func (c *CreatePackageRequest) ToModel(user string) model.Package {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Package{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		PricingMode: c.PricingMode,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePackageRequest struct {
	Name        string           `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Description string           `db:"description"  json:"description"  validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `db:"price"        json:"price"        validate:"omitempty"`
	PricingMode string           `db:"pricing_mode" json:"pricing_mode" validate:"omitempty,oneof=fixed per_night"`
	Active      *bool            `db:"active"       json:"active"       validate:"omitempty"`
}

type PackageResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PricingMode string          `json:"pricing_mode"`
	Active      bool            `json:"active"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(model model.Package) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.PricingMode = model.PricingMode
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.Package, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, mod := range models {
		r.Packages[i].FromModel(mod)
	}
}
