package dto

import (
	"jaruri/internal/domains/review/model"
	gDto "jaruri/shared/dto"
	gModel "jaruri/shared/model"
	"jaruri/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Rating    int     `json:"rating"     validate:"required,gte=1,lte=5"`
	Comment   *string `json:"comment"    validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(customerID, professionalID, actor string) model.Review {
	return model.Review{
		ID:             uuid.NewString(),
		BookingID:      c.BookingID,
		CustomerID:     customerID,
		ProfessionalID: professionalID,
		Rating:         c.Rating,
		Comment:        c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type ReviewResponse struct {
	ID             string  `json:"id"`
	BookingID      string  `json:"booking_id"`
	CustomerID     string  `json:"customer_id"`
	ProfessionalID string  `json:"professional_id"`
	Rating         int     `json:"rating"`
	Comment        *string `json:"comment,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.CustomerID = model.CustomerID
	r.ProfessionalID = model.ProfessionalID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review) {
	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
