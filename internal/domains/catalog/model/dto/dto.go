package dto

import (
	"jaruri/internal/domains/catalog/model"
)

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameNepali  string  `json:"name_nepali"`
	Description *string `json:"description,omitempty"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Active      bool    `json:"active"`
}

func (r *CategoryResponse) FromModel(model model.ServiceCategory) {
	r.ID = model.ID
	r.Name = model.Name
	r.NameNepali = model.NameNepali
	r.Description = model.Description
	r.Icon = model.Icon
	r.Color = model.Color
	r.Active = model.Active
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func (r *GetCategoriesResponse) FromModels(models []model.ServiceCategory) {
	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}

type ServiceResponse struct {
	ID                   string  `json:"id"`
	CategoryID           string  `json:"category_id"`
	Name                 string  `json:"name"`
	NameNepali           *string `json:"name_nepali,omitempty"`
	Description          string  `json:"description"`
	BasePrice            string  `json:"base_price"`
	Unit                 string  `json:"unit"`
	EstimatedDurationMin *int    `json:"estimated_duration_min,omitempty"`
	Active               bool    `json:"active"`
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.CategoryID = model.CategoryID
	r.Name = model.Name
	r.NameNepali = model.NameNepali
	r.Description = model.Description
	r.BasePrice = model.BasePrice
	r.Unit = model.Unit
	r.EstimatedDurationMin = model.EstimatedDurationMin
	r.Active = model.Active
}

type GetServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

func (r *GetServicesResponse) FromModels(models []model.Service) {
	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
