package dto

import (
	"time"

	"jaruri/internal/domains/booking/model"
	"jaruri/shared"
	gDto "jaruri/shared/dto"
	gModel "jaruri/shared/model"
	"jaruri/shared/timezone"

	"github.com/google/uuid"
)

const (
	scheduledDateLayout = "2006-01-02"
	scheduledTimeLayout = "15:04"
)

type CreateBookingRequest struct {
	ServiceID     string  `json:"service_id"     validate:"required"`
	Location      string  `json:"location"       validate:"required,max=200"`
	Address       string  `json:"address"        validate:"required,max=500"`
	ScheduledDate string  `json:"scheduled_date" validate:"required"`
	ScheduledTime *string `json:"scheduled_time" validate:"omitempty,max=50"`
	Notes         *string `json:"notes"          validate:"omitempty,max=1000"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=cash esewa khalti bank_transfer"`

	// Contact details let anonymous visitors book without an account. A guest
	// identity is minted from them when no authenticated user is present.
	ContactName  string `json:"contact_name"  validate:"omitempty,max=100"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email,max=100"`
}

func (c *CreateBookingRequest) ToModel(customerID, estimatedPrice, actor string) (model.Booking, error) {
	scheduledDate, derivedTime, err := parseScheduledDate(c.ScheduledDate)
	if err != nil {
		return model.Booking{}, err
	}

	scheduledTime := c.ScheduledTime
	if scheduledTime == nil && derivedTime != "" {
		scheduledTime = &derivedTime
	}

	paymentMethod := c.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = model.PaymentMethodCash
	}

	return model.Booking{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		ServiceID:      c.ServiceID,
		Location:       c.Location,
		Address:        c.Address,
		ScheduledDate:  scheduledDate,
		ScheduledTime:  scheduledTime,
		Notes:          c.Notes,
		Status:         model.StatusPending,
		PaymentMethod:  paymentMethod,
		PaymentStatus:  model.PaymentStatusPending,
		EstimatedPrice: estimatedPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

// parseScheduledDate accepts the plain date form as well as a full RFC 3339
// timestamp, which clients serializing a JavaScript Date will send. The clock
// portion of a timestamp is split off so it can back scheduled_time.
func parseScheduledDate(value string) (date time.Time, clock string, err error) {
	if date, err = time.Parse(scheduledDateLayout, value); err == nil {
		return date, "", nil
	}

	timestamp, rfcErr := time.Parse(time.RFC3339, value)
	if rfcErr != nil {
		return time.Time{}, "", err
	}

	date = time.Date(timestamp.Year(), timestamp.Month(), timestamp.Day(), 0, 0, 0, 0, time.UTC)

	if timestamp.Hour() != 0 || timestamp.Minute() != 0 {
		clock = timestamp.Format(scheduledTimeLayout)
	}

	return date, clock, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending assigned confirmed in_progress completed cancelled refunded"`
}

type UpdateBookingPaymentRequest struct {
	PaymentStatus string  `db:"payment_status" json:"payment_status" validate:"required,oneof=pending paid refunded"`
	FinalPrice    *string `db:"final_price"    json:"final_price"    validate:"omitempty"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	CustomerID     string  `json:"customer_id"`
	ProfessionalID *string `json:"professional_id,omitempty"`
	ServiceID      string  `json:"service_id"`
	Location       string  `json:"location"`
	Address        string  `json:"address"`
	ScheduledDate  string  `json:"scheduled_date"`
	ScheduledTime  *string `json:"scheduled_time,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Status         string  `json:"status"`
	PaymentMethod  string  `json:"payment_method"`
	PaymentStatus  string  `json:"payment_status"`
	EstimatedPrice string  `json:"estimated_price"`
	FinalPrice     *string `json:"final_price,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.ProfessionalID = model.ProfessionalID
	r.ServiceID = model.ServiceID
	r.Location = model.Location
	r.Address = model.Address
	r.ScheduledDate = model.ScheduledDate.Format(scheduledDateLayout)
	r.ScheduledTime = model.ScheduledTime
	r.Notes = model.Notes
	r.Status = model.Status.String()
	r.PaymentMethod = model.PaymentMethod
	r.PaymentStatus = model.PaymentStatus
	r.EstimatedPrice = model.EstimatedPrice
	r.FinalPrice = model.FinalPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
