package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/domain/repository"
)

// DirectoryUseCase - согласование пользовательских коллекций (избранное,
// история, заметки) поверх выбранного хранилища. Ошибки хранилища логируются
// и деградируют: чтение возвращает пустую коллекцию, запись проглатывается.
type DirectoryUseCase struct {
	store  repository.Store
	logger *zap.Logger
}

// NewDirectoryUseCase - создание нового DirectoryUseCase
func NewDirectoryUseCase(store repository.Store, logger *zap.Logger) *DirectoryUseCase {
	return &DirectoryUseCase{
		store:  store,
		logger: logger,
	}
}

// IsRemote - capability-флаг активного бэкенда
func (uc *DirectoryUseCase) IsRemote() bool {
	return uc.store.IsRemote()
}

// GetFavorites возвращает избранное в порядке добавления
func (uc *DirectoryUseCase) GetFavorites(ctx context.Context) []domain.DirectoryItem {
	items, err := uc.store.GetFavorites(ctx)
	if err != nil {
		uc.logger.Error("Failed to get favorites", zap.Error(err))
		return []domain.DirectoryItem{}
	}
	return items
}

// AddFavorite - upsert по id
func (uc *DirectoryUseCase) AddFavorite(ctx context.Context, item domain.DirectoryItem) {
	if err := uc.store.AddFavorite(ctx, item); err != nil {
		uc.logger.Error("Failed to add favorite", zap.String("id", item.ID), zap.Error(err))
	}
}

// RemoveFavorite удаляет запись. Отсутствующий id - no-op.
func (uc *DirectoryUseCase) RemoveFavorite(ctx context.Context, id string) {
	if err := uc.store.RemoveFavorite(ctx, id); err != nil {
		uc.logger.Error("Failed to remove favorite", zap.String("id", id), zap.Error(err))
	}
}

// ToggleFavorite добавляет место в избранное, если его там нет, иначе
// удаляет. Возвращает новое состояние.
func (uc *DirectoryUseCase) ToggleFavorite(ctx context.Context, item domain.DirectoryItem) bool {
	favorites := uc.GetFavorites(ctx)

	for _, f := range favorites {
		if f.ID == item.ID {
			uc.RemoveFavorite(ctx, item.ID)
			return false
		}
	}

	uc.AddFavorite(ctx, item)
	return true
}

// UpdateNote обновляет заметку во всех коллекциях, где живёт элемент:
// в избранном через upsert, в истории - переписыванием на месте.
// Каждая коллекция хранит собственную копию (fan-out, а не join).
// Если id нигде нет - no-op без ошибки.
func (uc *DirectoryUseCase) UpdateNote(ctx context.Context, id, note string) {
	favorites, err := uc.store.GetFavorites(ctx)
	if err != nil {
		uc.logger.Error("Failed to read favorites for note update", zap.Error(err))
	} else {
		for _, f := range favorites {
			if f.ID == id {
				n := note
				f.UserNotes = &n
				if err := uc.store.AddFavorite(ctx, f); err != nil {
					uc.logger.Error("Failed to update favorite note", zap.String("id", id), zap.Error(err))
				}
				break
			}
		}
	}

	if err := uc.store.UpdateHistoryNote(ctx, id, note); err != nil {
		uc.logger.Error("Failed to update history note", zap.String("id", id), zap.Error(err))
	}
}

// GetHistory возвращает историю просмотров, самые свежие первыми
func (uc *DirectoryUseCase) GetHistory(ctx context.Context) []domain.HistoryItem {
	items, err := uc.store.GetHistory(ctx)
	if err != nil {
		uc.logger.Error("Failed to get history", zap.Error(err))
		return []domain.HistoryItem{}
	}
	return items
}

// AddToHistory регистрирует просмотр места
func (uc *DirectoryUseCase) AddToHistory(ctx context.Context, item domain.DirectoryItem) {
	if err := uc.store.AddToHistory(ctx, item); err != nil {
		uc.logger.Error("Failed to add to history", zap.String("id", item.ID), zap.Error(err))
	}
}
