package model

import "jaruri/shared/model"

const (
	ContactTableName  = "contact_requests"
	ContactEntityName = "contact request"

	FieldContactID      = "id"
	FieldContactName    = "name"
	FieldContactEmail   = "email"
	FieldContactPhone   = "phone"
	FieldContactSubject = "subject"
	FieldContactMessage = "message"
)

type ContactRequest struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Email   string  `db:"email"`
	Phone   *string `db:"phone"`
	Subject *string `db:"subject"`
	Message string  `db:"message"`
	model.Metadata
}
