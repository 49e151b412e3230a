package model

import (
	"jaruri/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "professionals"
	EntityName = "professional"

	FieldID                 = "id"
	FieldUserID             = "user_id"
	FieldBio                = "bio"
	FieldExperienceYears    = "experience_years"
	FieldSkills             = "skills"
	FieldServiceAreas       = "service_areas"
	FieldHourlyRate         = "hourly_rate"
	FieldRating             = "rating"
	FieldTotalJobs          = "total_jobs"
	FieldIsVerified         = "is_verified"
	FieldAvailabilityStatus = "availability_status"
	FieldDocumentURLs       = "document_urls"
)

const (
	AvailabilityAvailable = "available"
	AvailabilityBusy      = "busy"
	AvailabilityOffline   = "offline"
)

type Professional struct {
	ID                 string         `db:"id"`
	UserID             string         `db:"user_id"`
	Bio                *string        `db:"bio"`
	ExperienceYears    *int           `db:"experience_years"`
	Skills             pq.StringArray `db:"skills"`
	ServiceAreas       pq.StringArray `db:"service_areas"`
	HourlyRate         *string        `db:"hourly_rate"`
	Rating             string         `db:"rating"`
	TotalJobs          int            `db:"total_jobs"`
	IsVerified         bool           `db:"is_verified"`
	AvailabilityStatus string         `db:"availability_status"`
	DocumentURLs       pq.StringArray `db:"document_urls"`
	model.Metadata
}

// HasSkill reports whether the professional lists the given service name as a skill.
// Skill labels are free text matched against catalog service names.
func (p *Professional) HasSkill(serviceName string) bool {
	for _, skill := range p.Skills {
		if skill == serviceName {
			return true
		}
	}

	return false
}
