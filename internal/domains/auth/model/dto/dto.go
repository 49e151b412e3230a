package dto

import (
	"time"

	"jaruri/infras/jwt"
	userModel "jaruri/internal/domains/user/model"
	"jaruri/shared/constant"
	gModel "jaruri/shared/model"
	"jaruri/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string  `json:"username"  validate:"required,min=3,max=50"`
	Email    string  `json:"email"     validate:"required,email,max=100"`
	Password string  `json:"password"  validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required,max=100"`
	Phone    *string `json:"phone"     validate:"omitempty,max=20"`
	Role     string  `json:"role"      validate:"omitempty,oneof=customer professional"`
}

func (r *RegisterRequest) ToUserModel(actor, hashedPassword string) userModel.User {
	role := r.Role
	if role == "" {
		role = constant.RoleCustomer
	}

	return userModel.User{
		ID:         uuid.NewString(),
		Username:   r.Username,
		Email:      r.Email,
		Password:   hashedPassword,
		FullName:   r.FullName,
		Phone:      r.Phone,
		Role:       role,
		IsVerified: false,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
