package model

import "jaruri/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldFullName     = "full_name"
	FieldPhone        = "phone"
	FieldRole         = "role"
	FieldProfileImage = "profile_image"
	FieldIsVerified   = "is_verified"
	FieldLastLogin    = "last_login"
	FieldActive       = "active"
)

type User struct {
	ID           string  `db:"id"`
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	Password     string  `db:"password"`
	FullName     string  `db:"full_name"`
	Phone        *string `db:"phone"`
	Role         string  `db:"role"`
	ProfileImage *string `db:"profile_image"`
	IsVerified   bool    `db:"is_verified"`
	LastLogin    *string `db:"last_login"`
	Active       bool    `db:"active"`
	model.Metadata
}
