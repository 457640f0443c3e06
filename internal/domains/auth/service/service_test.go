package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"comfort/config"
	"comfort/infras/otel/mocks"
	"comfort/internal/domains/auth/model/dto"
	"comfort/internal/domains/auth/service"
	"comfort/internal/domains/session"
	sessionMocks "comfort/internal/domains/session/mocks"
	userMocks "comfort/internal/domains/user/mocks"
	userModel "comfort/internal/domains/user/model"
	"comfort/shared/failure"
	"comfort/shared/password"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := userMocks.NewMockUser(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUsers, mockSessions, &config.Config{}, mockOtel)

	hash, err := password.Hash("admin123")
	assert.NoError(t, err)

	storedUser := userModel.User{
		ID:       "b7a3e7a0-8c0a-4a6e-9a0f-0f2e6c2c9e71",
		Username: "admin",
		Password: hash,
		Role:     "admin",
		Email:    "admin@example.com",
		FullName: "Hotel Admin",
	}

	t.Run("successful login establishes a session without the hash", func(t *testing.T) {
		mockUsers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)

		mockSessions.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sess session.Session) error {
				assert.NotEmpty(t, sess.ID)
				assert.Equal(t, "admin", sess.Username)
				assert.Equal(t, "admin", sess.Role)
				assert.Equal(t, "admin@example.com", sess.Email)

				return nil
			})

		sess, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, "Hotel Admin", sess.FullName)
	})

	t.Run("unknown username and wrong password fail identically", func(t *testing.T) {
		mockUsers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, unknownErr := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "admin123"})

		mockUsers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)

		_, wrongErr := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})

		assert.Equal(t, failure.Unauthorized("invalid username or password"), unknownErr)
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("store error is masked", func(t *testing.T) {
		mockUsers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, errors.New("connection refused"))

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})

		assert.Equal(t, failure.StoreUnavailableError, err)
	})

	t.Run("session store failure", func(t *testing.T) {
		mockUsers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)

		mockSessions.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})

		assert.Equal(t, failure.StoreUnavailableError, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := userMocks.NewMockUser(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUsers, mockSessions, &config.Config{}, mockOtel)

	t.Run("destroys the session", func(t *testing.T) {
		mockSessions.EXPECT().
			Delete(gomock.Any(), "sess-id").
			Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), "sess-id"))
	})

	t.Run("store error is masked", func(t *testing.T) {
		mockSessions.EXPECT().
			Delete(gomock.Any(), "sess-id").
			Return(errors.New("redis down"))

		err := svc.Logout(context.Background(), "sess-id")

		assert.Equal(t, failure.StoreUnavailableError, err)
	})
}
