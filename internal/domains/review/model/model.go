package model

import "jaruri/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID             = "id"
	FieldBookingID      = "booking_id"
	FieldCustomerID     = "customer_id"
	FieldProfessionalID = "professional_id"
	FieldRating         = "rating"
	FieldComment        = "comment"
)

type Review struct {
	ID             string  `db:"id"`
	BookingID      string  `db:"booking_id"`
	CustomerID     string  `db:"customer_id"`
	ProfessionalID string  `db:"professional_id"`
	Rating         int     `db:"rating"`
	Comment        *string `db:"comment"`
	model.Metadata
}
