package repository

import (
	"context"

	"github.com/luis-epic/el-point-ai/internal/domain"
)

// SearchRepository определяет контракт генеративного поиска мест
type SearchRepository interface {
	// SearchPlaces выполняет поиск по текстовому запросу. origin может быть nil,
	// тогда поиск привязывается к городу по умолчанию.
	SearchPlaces(ctx context.Context, query string, origin *domain.Coordinates) (*domain.SearchResult, error)
}
