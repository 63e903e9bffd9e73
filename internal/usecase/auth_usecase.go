package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/domain/repository"
)

// AuthUseCase - менеджер сессии. Держит текущего пользователя в памяти:
// после первоначального восстановления память является источником правды,
// хранилище не перечитывается. Создаётся при старте, меняется только
// входом и выходом.
type AuthUseCase struct {
	store  repository.Store
	logger *zap.Logger

	mu      sync.RWMutex
	current *domain.UserProfile
}

// NewAuthUseCase - создание нового AuthUseCase с восстановлением сессии
func NewAuthUseCase(ctx context.Context, store repository.Store, logger *zap.Logger) *AuthUseCase {
	uc := &AuthUseCase{
		store:  store,
		logger: logger,
	}

	user, err := store.GetUser(ctx)
	if err != nil {
		logger.Warn("Failed to recover session", zap.Error(err))
	} else if user != nil {
		uc.current = user
		logger.Info("Session recovered", zap.String("email", user.Email))
	}

	return uc
}

// CurrentUser возвращает пользователя текущей сессии (nil, если её нет)
func (uc *AuthUseCase) CurrentUser() *domain.UserProfile {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.current == nil {
		return nil
	}
	user := *uc.current
	return &user
}

// SignIn выполняет вход и устанавливает сессию в памяти
func (uc *AuthUseCase) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	session, err := uc.store.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.current = &session.User
	uc.mu.Unlock()

	uc.logger.Info("User signed in", zap.String("email", session.User.Email))
	return session, nil
}

// SignUp регистрирует пользователя и устанавливает сессию в памяти
func (uc *AuthUseCase) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	session, err := uc.store.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.current = &session.User
	uc.mu.Unlock()

	uc.logger.Info("User signed up", zap.String("email", session.User.Email))
	return session, nil
}

// SignOut сбрасывает сессию. Всегда успешен: ошибка хранилища логируется,
// состояние в памяти очищается в любом случае.
func (uc *AuthUseCase) SignOut(ctx context.Context) {
	if err := uc.store.SignOut(ctx); err != nil {
		uc.logger.Error("Failed to clear persisted session", zap.Error(err))
	}

	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()

	uc.logger.Info("User signed out")
}
