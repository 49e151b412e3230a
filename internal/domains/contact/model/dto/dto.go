package dto

import (
	"jaruri/internal/domains/contact/model"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"
	gModel "jaruri/shared/model"
	"jaruri/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name    string  `json:"name"    validate:"required,max=100"`
	Email   string  `json:"email"   validate:"required,email,max=100"`
	Phone   *string `json:"phone"   validate:"omitempty,max=20"`
	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,max=2000"`
}

func (c *CreateContactRequest) ToModel() model.ContactRequest {
	return model.ContactRequest{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type ContactResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.ContactRequest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Subject = model.Subject
	r.Message = model.Message
	r.Metadata.FromModel(model.Metadata)
}

type SubscribeNotificationRequest struct {
	Email string  `json:"email" validate:"required,email,max=100"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}

func (c *SubscribeNotificationRequest) ToModel() model.AppNotification {
	return model.AppNotification{
		ID:    uuid.NewString(),
		Email: c.Email,
		Phone: c.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type NotificationResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.AppNotification) {
	r.ID = model.ID
	r.Email = model.Email
	r.Phone = model.Phone
	r.Metadata.FromModel(model.Metadata)
}
