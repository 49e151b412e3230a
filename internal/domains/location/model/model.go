package model

import "jaruri/shared/model"

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID          = "id"
	FieldName        = "name"
	FieldNameNepali  = "name_nepali"
	FieldType        = "type"
	FieldParentID    = "parent_id"
	FieldServiceable = "serviceable"
)

const (
	TypeCity     = "city"
	TypeDistrict = "district"
	TypeZone     = "zone"
)

type Location struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	NameNepali  string  `db:"name_nepali"`
	Type        string  `db:"type"`
	ParentID    *string `db:"parent_id"`
	Serviceable bool    `db:"serviceable"`
	model.Metadata
}
