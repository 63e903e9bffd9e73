package dto

import "github.com/luis-epic/el-point-ai/internal/domain"

// SearchResponse - результат поиска: сводка, места и количество
type SearchResponse struct {
	Summary string                 `json:"summary"`
	Items   []domain.DirectoryItem `json:"items"`
	Total   int                    `json:"total"`
}

// BackendResponse - capability-флаг активного бэкенда для бейджа в UI
type BackendResponse struct {
	IsRemote bool `json:"is_remote"`
}

// ToggleResponse - состояние избранного после переключения
type ToggleResponse struct {
	ID         string `json:"id"`
	IsFavorite bool   `json:"is_favorite"`
}
