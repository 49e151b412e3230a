package model

import "jaruri/shared/model"

const (
	CategoryTableName  = "service_categories"
	CategoryEntityName = "service_category"

	FieldCategoryID          = "id"
	FieldCategoryName        = "name"
	FieldCategoryNameNepali  = "name_nepali"
	FieldCategoryDescription = "description"
	FieldCategoryIcon        = "icon"
	FieldCategoryColor       = "color"
	FieldCategoryActive      = "active"
)

type ServiceCategory struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	NameNepali  string  `db:"name_nepali"`
	Description *string `db:"description"`
	Icon        string  `db:"icon"`
	Color       string  `db:"color"`
	Active      bool    `db:"active"`
	model.Metadata
}
