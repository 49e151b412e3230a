package model

import "jaruri/shared/model"

const (
	NotificationTableName  = "app_notifications"
	NotificationEntityName = "app notification"

	FieldNotificationID    = "id"
	FieldNotificationEmail = "email"
	FieldNotificationPhone = "phone"
)

// AppNotification is a launch-notification signup for the mobile app.
type AppNotification struct {
	ID    string  `db:"id"`
	Email string  `db:"email"`
	Phone *string `db:"phone"`
	model.Metadata
}
