package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/domain/repository"
	"github.com/luis-epic/el-point-ai/internal/pkg/errors"
	"github.com/luis-epic/el-point-ai/internal/pkg/utils"
	"github.com/luis-epic/el-point-ai/internal/usecase/dto"
)

// Расстояние-заглушка для сортировки и фильтрации мест без координат
const unknownDistance = 9999.0

// SearchUseCase - use case генеративного поиска мест
type SearchUseCase struct {
	searchRepo repository.SearchRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	searchRepo repository.SearchRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		searchRepo: searchRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// Search выполняет поиск, декорирует результаты расстоянием от точки запроса
// и применяет выбранный фильтр
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	var origin *domain.Coordinates
	if req.Lat != nil && req.Lon != nil {
		if !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
			return nil, errors.ErrInvalidCoordinates
		}
		origin = &domain.Coordinates{Latitude: *req.Lat, Longitude: *req.Lon}
	}

	result, err := uc.lookup(ctx, req.Query, origin)
	if err != nil {
		return nil, err
	}

	items := decorateDistance(result.Items, origin)
	items = applyFilter(items, req.Filter)

	return &dto.SearchResponse{
		Summary: result.Summary,
		Items:   items,
		Total:   len(items),
	}, nil
}

// lookup достаёт результат из кеша или выполняет запрос к поисковому API.
// Ошибки кеша логируются и трактуются как промах.
func (uc *SearchUseCase) lookup(
	ctx context.Context,
	query string,
	origin *domain.Coordinates,
) (*domain.SearchResult, error) {
	key := searchCacheKey(query, origin)

	cached, err := uc.cacheRepo.GetSearchResult(ctx, key)
	if err != nil {
		uc.logger.Warn("Search cache read failed", zap.String("key", key), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	result, err := uc.searchRepo.SearchPlaces(ctx, query, origin)
	if err != nil {
		uc.logger.Error("Search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetSearchResult(ctx, key, result, uc.cacheTTL); err != nil {
		uc.logger.Warn("Search cache write failed", zap.String("key", key), zap.Error(err))
	}

	return result, nil
}

func searchCacheKey(query string, origin *domain.Coordinates) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if origin == nil {
		return fmt.Sprintf("search:%s:none", q)
	}
	return fmt.Sprintf("search:%s:%.2f:%.2f", q, origin.Latitude, origin.Longitude)
}

// decorateDistance пересчитывает расстояние до каждого места от точки
// запроса. Расстояние - производное поле: считается заново при каждом
// запросе и никогда не читается из кеша.
func decorateDistance(items []domain.DirectoryItem, origin *domain.Coordinates) []domain.DirectoryItem {
	decorated := make([]domain.DirectoryItem, len(items))
	for i, item := range items {
		item.Distance = nil
		if origin != nil {
			if loc, ok := item.Location(); ok {
				d := utils.Distance(*origin, loc)
				item.Distance = &d
			}
		}
		decorated[i] = item
	}
	return decorated
}

func applyFilter(items []domain.DirectoryItem, filter string) []domain.DirectoryItem {
	switch filter {
	case "top_rated":
		sort.SliceStable(items, func(i, j int) bool {
			return ratingOf(items[i]) > ratingOf(items[j])
		})
	case "nearest":
		sort.SliceStable(items, func(i, j int) bool {
			return distanceOf(items[i]) < distanceOf(items[j])
		})
	case "under_2km":
		filtered := make([]domain.DirectoryItem, 0, len(items))
		for _, item := range items {
			if distanceOf(item) < 2 {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	return items
}

func ratingOf(item domain.DirectoryItem) float64 {
	if item.Rating == nil {
		return 0
	}
	return *item.Rating
}

func distanceOf(item domain.DirectoryItem) float64 {
	if item.Distance == nil {
		return unknownDistance
	}
	return *item.Distance
}
