package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/pkg/errors"
	"github.com/luis-epic/el-point-ai/internal/pkg/utils"
	"github.com/luis-epic/el-point-ai/internal/usecase"
	"github.com/luis-epic/el-point-ai/internal/usecase/dto"
	"go.uber.org/zap"
)

// DirectoryHandler - обработчик избранного, истории и заметок
type DirectoryHandler struct {
	directoryUC *usecase.DirectoryUseCase
	logger      *zap.Logger
}

// NewDirectoryHandler - создание нового DirectoryHandler
func NewDirectoryHandler(directoryUC *usecase.DirectoryUseCase, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: directoryUC,
		logger:      logger,
	}
}

// GetBackend godoc
// @Summary Активный бэкенд
// @Description Возвращает capability-флаг для бейджа в UI: подключено ли удалённое хранилище
// @Tags Directory
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.BackendResponse}
// @Router /api/v1/backend [get]
func (h *DirectoryHandler) GetBackend(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.BackendResponse{
		IsRemote: h.directoryUC.IsRemote(),
	}, nil)
}

// GetFavorites godoc
// @Summary Список избранного
// @Description Возвращает избранные места в порядке добавления
// @Tags Favorites
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.DirectoryItem}
// @Router /api/v1/favorites [get]
func (h *DirectoryHandler) GetFavorites(c *fiber.Ctx) error {
	items := h.directoryUC.GetFavorites(c.Context())
	return utils.SendSuccess(c, items, &utils.Meta{
		Total: len(items),
	})
}

// AddFavorite godoc
// @Summary Добавление в избранное
// @Description Upsert по id: существующая запись заменяется на месте, новая добавляется в конец
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body domain.DirectoryItem true "Место"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/favorites [post]
func (h *DirectoryHandler) AddFavorite(c *fiber.Ctx) error {
	var item domain.DirectoryItem
	if err := c.BodyParser(&item); err != nil || item.ID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	h.directoryUC.AddFavorite(c.Context(), item)
	return utils.SendSuccess(c, nil, nil)
}

// RemoveFavorite godoc
// @Summary Удаление из избранного
// @Description Идемпотентное удаление: отсутствующий id - no-op
// @Tags Favorites
// @Produce json
// @Param id path string true "Идентификатор места"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/favorites/{id} [delete]
func (h *DirectoryHandler) RemoveFavorite(c *fiber.Ctx) error {
	h.directoryUC.RemoveFavorite(c.Context(), c.Params("id"))
	return utils.SendSuccess(c, nil, nil)
}

// ToggleFavorite godoc
// @Summary Переключение избранного
// @Description Добавляет место в избранное, если его там нет, иначе удаляет
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор места"
// @Param request body domain.DirectoryItem true "Место"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToggleResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/favorites/{id}/toggle [post]
func (h *DirectoryHandler) ToggleFavorite(c *fiber.Ctx) error {
	var item domain.DirectoryItem
	if err := c.BodyParser(&item); err != nil || item.ID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if item.ID != c.Params("id") {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	isFavorite := h.directoryUC.ToggleFavorite(c.Context(), item)
	return utils.SendSuccess(c, dto.ToggleResponse{
		ID:         item.ID,
		IsFavorite: isFavorite,
	}, nil)
}

// UpdateNote godoc
// @Summary Обновление личной заметки
// @Description Обновляет заметку во всех коллекциях, где есть элемент с данным id. Если id нигде нет - no-op.
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор места"
// @Param request body dto.NoteRequest true "Текст заметки"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/notes/{id} [put]
func (h *DirectoryHandler) UpdateNote(c *fiber.Ctx) error {
	var req dto.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	h.directoryUC.UpdateNote(c.Context(), c.Params("id"), req.Note)
	return utils.SendSuccess(c, nil, nil)
}

// GetHistory godoc
// @Summary История просмотров
// @Description Возвращает историю, самые свежие записи первыми. В удалённом режиме всегда пусто.
// @Tags History
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.HistoryItem}
// @Router /api/v1/history [get]
func (h *DirectoryHandler) GetHistory(c *fiber.Ctx) error {
	items := h.directoryUC.GetHistory(c.Context())
	return utils.SendSuccess(c, items, &utils.Meta{
		Total: len(items),
	})
}

// AddToHistory godoc
// @Summary Регистрация просмотра
// @Description Ставит отметку времени, удаляет дубликат по id, вставляет запись в начало и обрезает историю до 20 записей
// @Tags History
// @Accept json
// @Produce json
// @Param request body domain.DirectoryItem true "Просмотренное место"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/history [post]
func (h *DirectoryHandler) AddToHistory(c *fiber.Ctx) error {
	var item domain.DirectoryItem
	if err := c.BodyParser(&item); err != nil || item.ID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	h.directoryUC.AddToHistory(c.Context(), item)
	return utils.SendSuccess(c, nil, nil)
}
