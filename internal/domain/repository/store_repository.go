package repository

import (
	"context"

	"github.com/luis-epic/el-point-ai/internal/domain"
)

// Store определяет единый контракт хранилища пользовательских данных.
// Реализации: локальное SQLite-хранилище (mock-режим) и удалённый
// Postgres-бэкенд. Выбирается один раз при старте по наличию credentials.
type Store interface {
	// IsRemote возвращает true для удалённого бэкенда. Флаг используется
	// только для бейджа в UI, логика от него не ветвится.
	IsRemote() bool

	// GetUser восстанавливает сохранённую сессию (nil, nil если сессии нет)
	GetUser(ctx context.Context) (*domain.UserProfile, error)

	// SignIn выполняет вход и сохраняет сессию
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)

	// SignUp регистрирует пользователя и выполняет вход
	SignUp(ctx context.Context, email, password string) (*domain.Session, error)

	// SignOut удаляет сохранённую сессию. Всегда успешен.
	SignOut(ctx context.Context) error

	// GetFavorites возвращает избранное в порядке добавления
	GetFavorites(ctx context.Context) ([]domain.DirectoryItem, error)

	// AddFavorite выполняет upsert по id: существующая запись заменяется
	// на месте (без смены позиции), новая добавляется в конец
	AddFavorite(ctx context.Context, item domain.DirectoryItem) error

	// RemoveFavorite удаляет запись по id. Идемпотентен.
	RemoveFavorite(ctx context.Context, id string) error

	// GetHistory возвращает историю просмотров, самые свежие первыми
	GetHistory(ctx context.Context) ([]domain.HistoryItem, error)

	// AddToHistory ставит отметку времени, удаляет дубликат по id,
	// вставляет запись в начало и обрезает историю до лимита
	AddToHistory(ctx context.Context, item domain.DirectoryItem) error

	// UpdateHistoryNote переписывает заметку в записи истории на месте,
	// без изменения порядка. Отсутствующий id - no-op.
	UpdateHistoryNote(ctx context.Context, id, note string) error
}
