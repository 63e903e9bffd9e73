package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/domain/repository"
	"github.com/luis-epic/el-point-ai/internal/pkg/errors"
	"go.uber.org/zap"
)

// Именованные слоты локального хранилища. Схема значений не версионируется.
const (
	slotSession   = "geodir_user_session"
	slotFavorites = "geodir_favorites"
	slotHistory   = "geodir_history"
)

const mockUserID = "mock-user-123"

type store struct {
	db     *DB
	logger *zap.Logger
}

// NewStore - локальная реализация хранилища (mock-режим).
// Принимает любой синтаксически валидный email и работает без сети.
func NewStore(db *DB, logger *zap.Logger) repository.Store {
	return &store{
		db:     db,
		logger: logger,
	}
}

func (s *store) IsRemote() bool {
	return false
}

// ==========================================
// Слоты
// ==========================================

func (s *store) getSlot(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM slots WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to read slot", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *store) setSlot(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		s.logger.Error("Failed to write slot", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

func (s *store) deleteSlot(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		s.logger.Error("Failed to delete slot", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}

// ==========================================
// Аутентификация
// ==========================================

func (s *store) GetUser(ctx context.Context) (*domain.UserProfile, error) {
	data, err := s.getSlot(ctx, slotSession)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var user domain.UserProfile
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Error("Failed to unmarshal session", zap.Error(err))
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &user, nil
}

// SignIn принимает любые учётные данные с валидным email и собирает
// детерминированный профиль из его локальной части
func (s *store) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if !strings.Contains(email, "@") {
		return nil, errors.ErrInvalidEmail
	}

	name := strings.SplitN(email, "@", 2)[0]
	avatarURL := fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&background=0ea5e9&color=fff",
		url.QueryEscape(email),
	)

	user := domain.UserProfile{
		ID:        mockUserID,
		Email:     email,
		Name:      &name,
		AvatarURL: &avatarURL,
		JoinedAt:  time.Now(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.setSlot(ctx, slotSession, data); err != nil {
		return nil, err
	}

	return &domain.Session{User: user}, nil
}

// SignUp в локальном режиме не отличается от входа: таблицы аккаунтов нет
func (s *store) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.SignIn(ctx, email, password)
}

func (s *store) SignOut(ctx context.Context) error {
	return s.deleteSlot(ctx, slotSession)
}

// ==========================================
// Избранное
// ==========================================

func (s *store) GetFavorites(ctx context.Context) ([]domain.DirectoryItem, error) {
	data, err := s.getSlot(ctx, slotFavorites)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []domain.DirectoryItem{}, nil
	}

	var items []domain.DirectoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Error("Failed to unmarshal favorites", zap.Error(err))
		return nil, fmt.Errorf("unmarshal favorites: %w", err)
	}
	return items, nil
}

// AddFavorite - upsert по id: существующая запись заменяется на месте,
// чтобы обновление заметок шло тем же путём, новая добавляется в конец
func (s *store) AddFavorite(ctx context.Context, item domain.DirectoryItem) error {
	current, err := s.GetFavorites(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range current {
		if current[i].ID == item.ID {
			current[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		current = append(current, item)
	}

	return s.saveFavorites(ctx, current)
}

func (s *store) RemoveFavorite(ctx context.Context, id string) error {
	current, err := s.GetFavorites(ctx)
	if err != nil {
		return err
	}

	next := make([]domain.DirectoryItem, 0, len(current))
	for _, item := range current {
		if item.ID != id {
			next = append(next, item)
		}
	}

	return s.saveFavorites(ctx, next)
}

func (s *store) saveFavorites(ctx context.Context, items []domain.DirectoryItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	return s.setSlot(ctx, slotFavorites, data)
}

// ==========================================
// История
// ==========================================

func (s *store) GetHistory(ctx context.Context) ([]domain.HistoryItem, error) {
	data, err := s.getSlot(ctx, slotHistory)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []domain.HistoryItem{}, nil
	}

	var items []domain.HistoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Error("Failed to unmarshal history", zap.Error(err))
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return items, nil
}

// AddToHistory удаляет старую запись с тем же id, вставляет новую в начало
// и обрезает историю до domain.HistoryLimit записей
func (s *store) AddToHistory(ctx context.Context, item domain.DirectoryItem) error {
	current, err := s.GetHistory(ctx)
	if err != nil {
		return err
	}

	entry := domain.HistoryItem{
		DirectoryItem: item,
		VisitedAt:     time.Now(),
	}

	next := make([]domain.HistoryItem, 0, len(current)+1)
	next = append(next, entry)
	for _, h := range current {
		if h.ID != item.ID {
			next = append(next, h)
		}
	}
	if len(next) > domain.HistoryLimit {
		next = next[:domain.HistoryLimit]
	}

	return s.saveHistory(ctx, next)
}

// UpdateHistoryNote переписывает заметку на месте, не меняя порядок записей
func (s *store) UpdateHistoryNote(ctx context.Context, id, note string) error {
	current, err := s.GetHistory(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range current {
		if current[i].ID == id {
			n := note
			current[i].UserNotes = &n
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	return s.saveHistory(ctx, current)
}

func (s *store) saveHistory(ctx context.Context, items []domain.HistoryItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.setSlot(ctx, slotHistory, data)
}
