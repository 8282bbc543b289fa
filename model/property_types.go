package model

import "github.com/shopspring/decimal"

const (
	PropertyStatusActive   = "active"
	PropertyStatusInactive = "inactive"

	UnitStatusVacant      = "vacant"
	UnitStatusOccupied    = "occupied"
	UnitStatusMaintenance = "maintenance"
)

var PropertyStatuses = []string{PropertyStatusActive, PropertyStatusInactive}

var UnitStatuses = []string{UnitStatusVacant, UnitStatusOccupied, UnitStatusMaintenance}

type Property struct {
	ID           int64  `db:"id" json:"id"`
	PropertyCode string `db:"property_code" json:"propertyCode"`
	Name         string `db:"name" json:"name"`
	Address      string `db:"address" json:"address"`
	City         string `db:"city" json:"city"`
	PropertyType string `db:"property_type" json:"propertyType"`
	Status       string `db:"status" json:"status"`
	CreatedAt    string `db:"created_at" json:"createdAt"`
	UpdatedAt    string `db:"updated_at" json:"updatedAt"`
}

type Unit struct {
	ID         int64           `db:"id" json:"id"`
	PropertyID int64           `db:"property_id" json:"propertyId"`
	Label      string          `db:"label" json:"label"`
	Bedrooms   int             `db:"bedrooms" json:"bedrooms"`
	Rent       decimal.Decimal `db:"rent" json:"rent"`
	Status     string          `db:"status" json:"status"`
	CreatedAt  string          `db:"created_at" json:"createdAt"`
	UpdatedAt  string          `db:"updated_at" json:"updatedAt"`
}
