package model

import "jaruri/shared/model"

const (
	ServiceTableName  = "services"
	ServiceEntityName = "service"

	FieldServiceID          = "id"
	FieldServiceCategoryID  = "category_id"
	FieldServiceName        = "name"
	FieldServiceNameNepali  = "name_nepali"
	FieldServiceDescription = "description"
	FieldServiceBasePrice   = "base_price"
	FieldServiceUnit        = "unit"
	FieldServiceDuration    = "estimated_duration_min"
	FieldServiceActive      = "active"
)

// Pricing units carried over from the catalog reference data.
const (
	UnitHour  = "hour"
	UnitFixed = "fixed"
	UnitSqFt  = "sq_ft"
)

type Service struct {
	ID                   string  `db:"id"`
	CategoryID           string  `db:"category_id"`
	Name                 string  `db:"name"`
	NameNepali           *string `db:"name_nepali"`
	Description          string  `db:"description"`
	BasePrice            string  `db:"base_price"`
	Unit                 string  `db:"unit"`
	EstimatedDurationMin *int    `db:"estimated_duration_min"`
	Active               bool    `db:"active"`
	model.Metadata
}
