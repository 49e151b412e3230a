package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"jaruri/config"
	"jaruri/infras/jwt"
	jwtMocks "jaruri/infras/jwt/mocks"
	"jaruri/infras/otel/mocks"
	"jaruri/internal/domains/auth/model/dto"
	"jaruri/internal/domains/auth/service"
	userMocks "jaruri/internal/domains/user/mocks"
	userModel "jaruri/internal/domains/user/model"
	eventMocks "jaruri/internal/events/mocks"
	"jaruri/shared/constant"
	"jaruri/shared/failure"
	gModel "jaruri/shared/model"
	"jaruri/shared/timezone"
)

// bcrypt hash of "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func validUser() userModel.User {
	return userModel.User{
		ID:         "user-id-123",
		Username:   "ramesh",
		Email:      "ramesh@example.com",
		Password:   passwordHash,
		FullName:   "Ramesh Shrestha",
		Role:       constant.RoleCustomer,
		IsVerified: true,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockDispatcher, cfg, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			req: dto.RegisterRequest{
				Username: "sita",
				Email:    "sita@example.com",
				Password: "password123",
				FullName: "Sita Rai",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockDispatcher.EXPECT().
					UserRegistered(gomock.Any(), gomock.Any()).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "username or email already taken",
			req: dto.RegisterRequest{
				Username: "ramesh",
				Email:    "ramesh@example.com",
				Password: "password123",
				FullName: "Ramesh Shrestha",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error on existence check",
			req: dto.RegisterRequest{
				Username: "sita",
				Email:    "sita@example.com",
				Password: "password123",
				FullName: "Sita Rai",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Username, res.Username)
			assert.Equal(t, tt.req.Email, res.Email)
		})
	}
}

func TestAuthService_Register_DefaultsToCustomerRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockDispatcher, &config.Config{}, mockOtel, mockJWT)

	mockUserRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	var inserted userModel.User

	mockUserRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user userModel.User) error {
			inserted = user
			return nil
		})

	mockDispatcher.EXPECT().
		UserRegistered(gomock.Any(), gomock.Any()).
		AnyTimes()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "sita",
		Email:    "sita@example.com",
		Password: "password123",
		FullName: "Sita Rai",
	})

	assert.NoError(t, err)
	assert.Equal(t, constant.RoleCustomer, inserted.Role)
	assert.NotEqual(t, "password123", inserted.Password)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockDispatcher, &config.Config{}, mockOtel, mockJWT)

	user := validUser()

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "ramesh@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), user.ID, user.Email, user.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "ramesh@example.com",
				Password: "not-the-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req: dto.LoginRequest{
				Email:    "ramesh@example.com",
				Password: "password",
			},
			setupMock: func() {
				inactive := validUser()
				inactive.Active = false

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockDispatcher, &config.Config{}, mockOtel, mockJWT)

	t.Run("successful refresh", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens(gomock.Any(), "valid-refresh-token").
			Return(&jwt.TokenPair{
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
			}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "valid-refresh-token",
		})

		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens(gomock.Any(), "expired-token").
			Return(nil, errors.New("token is expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "expired-token",
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockDispatcher, &config.Config{}, mockOtel, mockJWT)

	user := validUser()

	t.Run("successful change", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "a-new-password",
		}, user.ID)

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "a-new-password",
		}, user.ID)

		assert.Error(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "a-new-password",
		}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockDispatcher, &config.Config{}, mockOtel, mockJWT)

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := svc.Me(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("authenticated", func(t *testing.T) {
		user := validUser()

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, user.ID)

		res, err := svc.Me(ctx)

		assert.NoError(t, err)
		assert.Equal(t, user.Email, res.Email)
	})
}
