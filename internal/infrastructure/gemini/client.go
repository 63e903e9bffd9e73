package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/luis-epic/el-point-ai/internal/config"
	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/domain/repository"
	"github.com/luis-epic/el-point-ai/internal/pkg/errors"
	"go.uber.org/zap"
)

// Координаты Каракаса - точка привязки поиска, когда геопозиция не передана
var caracas = domain.Coordinates{Latitude: 10.4806, Longitude: -66.9036}

var imageNameCleaner = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
	now        func() time.Time
}

// NewClient создает новый клиент генеративного поиска мест
func NewClient(cfg *config.GeminiConfig, logger *zap.Logger) repository.SearchRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		logger:  logger,
		now:     time.Now,
	}
}

// SearchPlaces выполняет запрос к generateContent с Maps grounding и
// собирает найденные места из grounding chunks
func (c *client) SearchPlaces(
	ctx context.Context,
	query string,
	origin *domain.Coordinates,
) (*domain.SearchResult, error) {
	if c.apiKey == "" {
		return nil, errors.ErrSearchUnavailable
	}

	focus := caracas
	locationInstruction := "The user has not provided a GPS location. Assume the user is in **Caracas, Venezuela**. " +
		"You MUST find places located in **Caracas**. Do not show results from other cities unless explicitly asked."
	if origin != nil {
		focus = *origin
		locationInstruction = fmt.Sprintf(
			"The user is at lat:%f, lon:%f. Prioritize finding places strictly NEARBY this location.",
			origin.Latitude, origin.Longitude,
		)
	}

	prompt := fmt.Sprintf(
		"User Query: %q.\n%s\nIf the query is generic (e.g. \"restaurants\", \"cafe\"), list the best ones in Caracas.\nProvide a helpful summary of the results.",
		query, locationInstruction,
	)

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleMaps: map[string]interface{}{}}},
		ToolConfig: &toolConfig{
			RetrievalConfig: retrievalConfig{
				LatLng: latLng{Latitude: focus.Latitude, Longitude: focus.Longitude},
			},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	c.logger.Debug("Calling generateContent",
		zap.String("model", c.model),
		zap.String("query", query),
		zap.Float64("lat", focus.Latitude),
		zap.Float64("lon", focus.Longitude))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Gemini API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("gemini API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return c.buildResult(query, &genResp), nil
}

// buildResult превращает grounding chunks в элементы справочника
func (c *client) buildResult(query string, resp *generateResponse) *domain.SearchResult {
	result := &domain.SearchResult{
		Summary: "No text summary available.",
		Items:   []domain.DirectoryItem{},
	}

	if len(resp.Candidates) == 0 {
		return result
	}
	cand := resp.Candidates[0]

	var summary strings.Builder
	for _, p := range cand.Content.Parts {
		summary.WriteString(p.Text)
	}
	if summary.Len() > 0 {
		result.Summary = summary.String()
	}

	if cand.GroundingMetadata == nil {
		return result
	}

	for idx, chunk := range cand.GroundingMetadata.GroundingChunks {
		if chunk.Maps == nil {
			continue
		}
		mapData := chunk.Maps

		name := "Unknown Place"
		if mapData.SourcePlace != nil && mapData.SourcePlace.Name != "" {
			name = mapData.SourcePlace.Name
		} else if mapData.Title != "" {
			name = mapData.Title
		}

		address := "Address not available"
		var lat, lon *float64
		if mapData.SourcePlace != nil {
			if mapData.SourcePlace.Address != "" {
				address = mapData.SourcePlace.Address
			}
			if loc := mapData.SourcePlace.Location; loc != nil {
				la, lo := loc.Latitude, loc.Longitude
				lat, lon = &la, &lo
			}
		}

		description := "No details available."
		if len(mapData.PlaceAnswerSources) > 0 &&
			len(mapData.PlaceAnswerSources[0].ReviewSnippets) > 0 {
			description = mapData.PlaceAnswerSources[0].ReviewSnippets[0].Content
		}

		var mapsURI *string
		if mapData.URI != "" {
			uri := mapData.URI
			mapsURI = &uri
		}

		rating := 4.0 + float64(idx%10)/10

		item := domain.DirectoryItem{
			ID:          fmt.Sprintf("place-%d-%d", idx, c.now().UnixMilli()),
			Name:        name,
			Address:     address,
			Latitude:    lat,
			Longitude:   lon,
			Description: &description,
			Rating:      &rating,
			MapsURI:     mapsURI,
			Tags:        []string{query, "El Point"},
			ImageURL:    c.imageURL(query, name, idx),
			Reviews:     generateReviews(name, []string{query, "place"}),
		}
		result.Items = append(result.Items, item)
	}

	return result
}

// imageURL собирает контекстный URL картинки по названию места и запросу
func (c *client) imageURL(query, name string, seed int) string {
	cleanName := url.QueryEscape(imageNameCleaner.ReplaceAllString(name, ""))
	cleanQuery := url.QueryEscape(strings.SplitN(query, " ", 2)[0])
	return fmt.Sprintf(
		"https://image.pollinations.ai/prompt/%s%%20%s%%20venezuela?width=400&height=300&nologo=true&seed=%d",
		cleanQuery, cleanName, seed,
	)
}
