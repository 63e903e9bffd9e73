package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/luis-epic/el-point-ai/internal/pkg/errors"
	"github.com/luis-epic/el-point-ai/internal/pkg/utils"
	"github.com/luis-epic/el-point-ai/internal/pkg/validator"
	"github.com/luis-epic/el-point-ai/internal/usecase"
	"github.com/luis-epic/el-point-ai/internal/usecase/dto"
	"go.uber.org/zap"
)

// SearchHandler - обработчик поисковых запросов
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Генеративный поиск мест
// @Description Выполняет поиск мест через генеративный API с привязкой к геопозиции. Результаты декорируются расстоянием от переданной точки и фильтруются.
// @Tags Search
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Param lat query number false "Широта пользователя"
// @Param lon query number false "Долгота пользователя"
// @Param filter query string false "Фильтр результатов (top_rated, nearest, under_2km)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	req.Query = c.Query("q")
	req.Filter = c.Query("filter")

	lat, err := parseOptionalFloat(c.Query("lat"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	lon, err := parseOptionalFloat(c.Query("lon"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	req.Lat = lat
	req.Lon = lon

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
