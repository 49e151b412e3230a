package dto

import (
	"jaruri/internal/domains/location/model"
)

type LocationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameNepali  string  `json:"name_nepali"`
	Type        string  `json:"type"`
	ParentID    *string `json:"parent_id,omitempty"`
	Serviceable bool    `json:"serviceable"`
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.ID = model.ID
	r.Name = model.Name
	r.NameNepali = model.NameNepali
	r.Type = model.Type
	r.ParentID = model.ParentID
	r.Serviceable = model.Serviceable
}

type GetLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

func (r *GetLocationsResponse) FromModels(models []model.Location) {
	r.Locations = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Locations[i].FromModel(mod)
	}
}
