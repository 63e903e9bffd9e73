package repository

import (
	"context"
	"time"

	"github.com/luis-epic/el-point-ai/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetSearchResult возвращает закешированный результат поиска (nil при промахе)
	GetSearchResult(ctx context.Context, key string) (*domain.SearchResult, error)

	// SetSearchResult сохраняет результат поиска с TTL
	SetSearchResult(ctx context.Context, key string, result *domain.SearchResult, ttl time.Duration) error
}
