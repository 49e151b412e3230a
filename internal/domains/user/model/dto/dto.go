package dto

import (
	"jaruri/internal/domains/user/model"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"
	gModel "jaruri/shared/model"
	"jaruri/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username     string  `json:"username"  validate:"required,max=50"`
	Email        string  `json:"email"     validate:"required,email,max=100"`
	Password     string  `json:"password"  validate:"required,min=8"`
	FullName     string  `json:"full_name" validate:"required,max=100"`
	Phone        *string `json:"phone,omitempty"         validate:"omitempty,max=20"`
	Role         string  `json:"role"                    validate:"omitempty,oneof=customer professional admin"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (r *CreateUserRequest) ToModel(actor, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleCustomer
	}

	return model.User{
		ID:           uuid.NewString(),
		Username:     r.Username,
		Email:        r.Email,
		Password:     hashedPassword,
		FullName:     r.FullName,
		Phone:        r.Phone,
		Role:         role,
		ProfileImage: r.ProfileImage,
		IsVerified:   false,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UserResponse struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	Phone        *string `json:"phone,omitempty"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsVerified   bool    `json:"is_verified"`
	LastLogin    *string `json:"last_login,omitempty"`
	Active       bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Role = model.Role
	r.ProfileImage = model.ProfileImage
	r.IsVerified = model.IsVerified
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}
