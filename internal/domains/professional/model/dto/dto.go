package dto

import (
	"jaruri/internal/domains/professional/model"
	"jaruri/shared"
	gDto "jaruri/shared/dto"
	gModel "jaruri/shared/model"
	"jaruri/shared/timezone"

	"github.com/google/uuid"
)

type CreateProfessionalRequest struct {
	UserID          string   `json:"user_id"          validate:"required"`
	Bio             *string  `json:"bio,omitempty"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0,lte=60"`
	Skills          []string `json:"skills"           validate:"required,min=1,dive,max=100"`
	ServiceAreas    []string `json:"service_areas"    validate:"required,min=1,dive,max=100"`
	HourlyRate      *string  `json:"hourly_rate,omitempty"`
}

func (r *CreateProfessionalRequest) ToModel(actor string) model.Professional {
	return model.Professional{
		ID:                 uuid.NewString(),
		UserID:             r.UserID,
		Bio:                r.Bio,
		ExperienceYears:    r.ExperienceYears,
		Skills:             r.Skills,
		ServiceAreas:       r.ServiceAreas,
		HourlyRate:         r.HourlyRate,
		Rating:             "0.00",
		TotalJobs:          0,
		IsVerified:         false,
		AvailabilityStatus: model.AvailabilityAvailable,
		DocumentURLs:       []string{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateProfessionalRequest struct {
	Bio                *string  `db:"bio"                 json:"bio,omitempty"`
	ExperienceYears    *int     `db:"experience_years"    json:"experience_years,omitempty"    validate:"omitempty,gte=0,lte=60"`
	HourlyRate         *string  `db:"hourly_rate"         json:"hourly_rate,omitempty"`
	AvailabilityStatus string   `db:"availability_status" json:"availability_status,omitempty" validate:"omitempty,oneof=available busy offline"`
	IsVerified         *bool    `db:"is_verified"         json:"is_verified,omitempty"`
	Skills             []string `json:"skills,omitempty"        validate:"omitempty,min=1,dive,max=100"`
	ServiceAreas       []string `json:"service_areas,omitempty" validate:"omitempty,min=1,dive,max=100"`
}

type ProfessionalResponse struct {
	ID                 string   `json:"id"`
	UserID             string   `json:"user_id"`
	Bio                *string  `json:"bio,omitempty"`
	ExperienceYears    *int     `json:"experience_years,omitempty"`
	Skills             []string `json:"skills"`
	ServiceAreas       []string `json:"service_areas"`
	HourlyRate         *string  `json:"hourly_rate,omitempty"`
	Rating             string   `json:"rating"`
	TotalJobs          int      `json:"total_jobs"`
	IsVerified         bool     `json:"is_verified"`
	AvailabilityStatus string   `json:"availability_status"`
	DocumentURLs       []string `json:"document_urls"`
	gDto.Metadata
}

func (r *ProfessionalResponse) FromModel(model model.Professional) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Bio = model.Bio
	r.ExperienceYears = model.ExperienceYears
	r.Skills = model.Skills
	r.ServiceAreas = model.ServiceAreas
	r.HourlyRate = model.HourlyRate
	r.Rating = model.Rating
	r.TotalJobs = model.TotalJobs
	r.IsVerified = model.IsVerified
	r.AvailabilityStatus = model.AvailabilityStatus
	r.DocumentURLs = model.DocumentURLs
	r.Metadata.FromModel(model.Metadata)
}

type GetProfessionalsResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetProfessionalsResponse) FromModels(models []model.Professional, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Professionals = make([]ProfessionalResponse, len(models))
	for i, mod := range models {
		r.Professionals[i].FromModel(mod)
	}
}
