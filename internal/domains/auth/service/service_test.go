package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/jwt"
	jwtMocks "resort/infras/jwt/mocks"
	"resort/infras/otel/mocks"
	"resort/internal/domains/auth/model/dto"
	"resort/internal/domains/auth/service"
	userMocks "resort/internal/domains/user/mocks"
	userModel "resort/internal/domains/user/model"
	"resort/shared/constant"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/password"
	"resort/shared/timezone"
)

type authTestMocks struct {
	userRepo *userMocks.MockUser
	jwt      *jwtMocks.MockJWT
}

func newAuthService(t *testing.T) (service.Auth, *authTestMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &authTestMocks{
		userRepo: userMocks.NewMockUser(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
	}

	svc := service.New(m.userRepo, &config.Config{}, mocks.NewOtel(), m.jwt)

	return svc, m
}

func staffUser(t *testing.T, plainPassword string) userModel.User {
	t.Helper()

	hashed, err := password.Hash(plainPassword)
	require.NoError(t, err)

	fullName := "Front Desk"

	return userModel.User{
		ID:       "user-1",
		Email:    "staff@resort.test",
		Password: hashed,
		Role:     constant.RoleStaff,
		FullName: &fullName,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(t *testing.T, m *authTestMocks)
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "staff@resort.test", Password: "secret-password"},
			setupMock: func(t *testing.T, m *authTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staffUser(t, "secret-password"), nil)

				m.jwt.EXPECT().
					GenerateTokenPair("user-1", "staff@resort.test", constant.RoleStaff).
					Return(tokenPair, nil)

				m.userRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@resort.test", Password: "secret-password"},
			setupMock: func(t *testing.T, m *authTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "staff@resort.test", Password: "wrong-password"},
			setupMock: func(t *testing.T, m *authTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staffUser(t, "secret-password"), nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "staff@resort.test", Password: "secret-password"},
			setupMock: func(t *testing.T, m *authTestMocks) {
				user := staffUser(t, "secret-password")
				user.Active = false

				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Email: "staff@resort.test", Password: "secret-password"},
			setupMock: func(t *testing.T, m *authTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setupMock(t, m)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "refresh-token", res.RefreshToken)
				assert.Equal(t, int64(900), res.ExpiresIn)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.jwt.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.jwt.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(t *testing.T, m *authTestMocks)
		wantErr   bool
	}{
		{
			name: "successful change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "secret-password", NewPassword: "brand-new-password"},
			setupMock: func(t *testing.T, m *authTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staffUser(t, "secret-password"), nil)

				m.userRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						hashed, ok := fields[userModel.FieldPassword].(string)
						require.True(t, ok)
						assert.NoError(t, password.Verify("brand-new-password", hashed))

						return nil
					})
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrong-password", NewPassword: "brand-new-password"},
			setupMock: func(t *testing.T, m *authTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staffUser(t, "secret-password"), nil)
			},
			wantErr: true,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "secret-password", NewPassword: "brand-new-password"},
			setupMock: func(t *testing.T, m *authTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setupMock(t, m)

			err := svc.ChangePassword(context.Background(), tt.req, "user-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(staffUser(t, "secret-password"), nil)

		res, err := svc.Me(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, "staff@resort.test", res.Email)
		assert.Equal(t, constant.RoleStaff, res.Role)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Me(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
