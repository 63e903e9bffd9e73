package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/usecase"
)

func TestAuthUseCase_SessionRecovery(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("recovers persisted session on startup", func(t *testing.T) {
		mockStore := &MockStore{}
		mockStore.On("GetUser", ctx).Return(&domain.UserProfile{ID: "mock-user-123", Email: "maria@example.com"}, nil)

		uc := usecase.NewAuthUseCase(ctx, mockStore, logger)

		user := uc.CurrentUser()
		assert.NotNil(t, user)
		assert.Equal(t, "maria@example.com", user.Email)
	})

	t.Run("no persisted session leaves current user empty", func(t *testing.T) {
		mockStore := &MockStore{}
		mockStore.On("GetUser", ctx).Return(nil, nil)

		uc := usecase.NewAuthUseCase(ctx, mockStore, logger)

		assert.Nil(t, uc.CurrentUser())
	})

	t.Run("recovery failure degrades to signed out", func(t *testing.T) {
		mockStore := &MockStore{}
		mockStore.On("GetUser", ctx).Return(nil, errors.New("database error"))

		uc := usecase.NewAuthUseCase(ctx, mockStore, logger)

		assert.Nil(t, uc.CurrentUser())
	})
}

func TestAuthUseCase_SignIn(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success sets in-memory session", func(t *testing.T) {
		mockStore := &MockStore{}
		mockStore.On("GetUser", ctx).Return(nil, nil)
		mockStore.On("SignIn", ctx, "maria@example.com", "secret").Return(&domain.Session{
			User: domain.UserProfile{ID: "u-1", Email: "maria@example.com"},
		}, nil)

		uc := usecase.NewAuthUseCase(ctx, mockStore, logger)

		session, err := uc.SignIn(ctx, "maria@example.com", "secret")

		assert.NoError(t, err)
		assert.NotNil(t, session)
		assert.Equal(t, "maria@example.com", uc.CurrentUser().Email)
	})

	t.Run("failure leaves session unset", func(t *testing.T) {
		mockStore := &MockStore{}
		mockStore.On("GetUser", ctx).Return(nil, nil)
		mockStore.On("SignIn", ctx, "maria@example.com", "wrong").Return(nil, errors.New("invalid credentials"))

		uc := usecase.NewAuthUseCase(ctx, mockStore, logger)

		session, err := uc.SignIn(ctx, "maria@example.com", "wrong")

		assert.Error(t, err)
		assert.Nil(t, session)
		assert.Nil(t, uc.CurrentUser())
	})

	t.Run("CurrentUser returns a copy", func(t *testing.T) {
		mockStore := &MockStore{}
		mockStore.On("GetUser", ctx).Return(&domain.UserProfile{ID: "u-1", Email: "maria@example.com"}, nil)

		uc := usecase.NewAuthUseCase(ctx, mockStore, logger)

		first := uc.CurrentUser()
		first.Email = "mutated@example.com"

		assert.Equal(t, "maria@example.com", uc.CurrentUser().Email)
	})
}

func TestAuthUseCase_SignOut(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("clears session even when store fails", func(t *testing.T) {
		mockStore := &MockStore{}
		mockStore.On("GetUser", ctx).Return(&domain.UserProfile{ID: "u-1", Email: "maria@example.com"}, nil)
		mockStore.On("SignOut", ctx).Return(errors.New("database error"))

		uc := usecase.NewAuthUseCase(ctx, mockStore, logger)
		assert.NotNil(t, uc.CurrentUser())

		uc.SignOut(ctx)

		assert.Nil(t, uc.CurrentUser())
		mockStore.AssertExpectations(t)
	})
}
