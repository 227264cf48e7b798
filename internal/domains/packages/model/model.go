package model

import (
	"resort/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "packages"
	EntityName = "package"

	FieldID          = "id"
	FieldName        = "name"
	FieldPrice       = "price"
	FieldPricingMode = "pricing_mode"
	FieldActive      = "active"

	// PricingModeFixed charges the package price once per stay,
	// PricingModePerNight multiplies it by the number of nights.
	PricingModeFixed    = "fixed"
	PricingModePerNight = "per_night"
)

type Package struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	PricingMode string          `db:"pricing_mode"`
	Active      bool            `db:"active"`
	model.Metadata
}
