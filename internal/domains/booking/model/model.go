package model

import (
	"time"

	"jaruri/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldCustomerID     = "customer_id"
	FieldProfessionalID = "professional_id"
	FieldServiceID      = "service_id"
	FieldLocation       = "location"
	FieldAddress        = "address"
	FieldScheduledDate  = "scheduled_date"
	FieldScheduledTime  = "scheduled_time"
	FieldNotes          = "notes"
	FieldStatus         = "status"
	FieldPaymentMethod  = "payment_method"
	FieldPaymentStatus  = "payment_status"
	FieldEstimatedPrice = "estimated_price"
	FieldFinalPrice     = "final_price"
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodEsewa  = "esewa"
	PaymentMethodKhalti = "khalti"
	PaymentMethodBank   = "bank_transfer"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

type Booking struct {
	ID             string    `db:"id"`
	CustomerID     string    `db:"customer_id"`
	ProfessionalID *string   `db:"professional_id"`
	ServiceID      string    `db:"service_id"`
	Location       string    `db:"location"`
	Address        string    `db:"address"`
	ScheduledDate  time.Time `db:"scheduled_date"`
	ScheduledTime  *string   `db:"scheduled_time"`
	Notes          *string   `db:"notes"`
	Status         Status    `db:"status"`
	PaymentMethod  string    `db:"payment_method"`
	PaymentStatus  string    `db:"payment_status"`
	EstimatedPrice string    `db:"estimated_price"`
	FinalPrice     *string   `db:"final_price"`
	model.Metadata
}
