package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/luis-epic/el-point-ai/internal/config"
	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/pkg/errors"
)

func testConfig(baseURL string) *config.GeminiConfig {
	return &config.GeminiConfig{
		APIKey:         "test_key",
		BaseURL:        baseURL,
		Model:          "gemini-2.5-flash",
		RequestTimeout: 5,
	}
}

func groundedResponse() generateResponse {
	return generateResponse{
		Candidates: []candidate{
			{
				Content: content{
					Parts: []part{{Text: "Here are two arepa spots in Caracas."}},
				},
				GroundingMetadata: &groundingMetadata{
					GroundingChunks: []groundingChunk{
						{
							Maps: &mapsChunk{
								Title: "Arepera Dona Carmen",
								URI:   "https://maps.google.com/?cid=1",
								SourcePlace: &placeSource{
									Name:    "Arepera Dona Carmen",
									Address: "Av. Francisco de Miranda, Caracas",
									Location: &latLng{
										Latitude:  10.4910,
										Longitude: -66.8520,
									},
								},
								PlaceAnswerSources: []placeAnswerSource{
									{
										ReviewSnippets: []reviewSnippet{
											{Content: "Las mejores arepas de la zona."},
										},
									},
								},
							},
						},
						{
							// chunk without a maps payload is skipped
						},
						{
							Maps: &mapsChunk{
								Title: "El Budare del Este",
							},
						},
					},
				},
			},
		},
	}
}

func TestClient_SearchPlaces(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("successful request maps grounding chunks to items", func(t *testing.T) {
		var gotPath string
		var gotReq generateRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(groundedResponse())
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		origin := &domain.Coordinates{Latitude: 10.4806, Longitude: -66.9036}
		result, err := client.SearchPlaces(ctx, "arepas", origin)

		require.NoError(t, err)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
		assert.Equal(t, "Here are two arepa spots in Caracas.", result.Summary)
		require.Len(t, result.Items, 2)

		first := result.Items[0]
		assert.Equal(t, "Arepera Dona Carmen", first.Name)
		assert.Equal(t, "Av. Francisco de Miranda, Caracas", first.Address)
		require.NotNil(t, first.Latitude)
		assert.Equal(t, 10.4910, *first.Latitude)
		require.NotNil(t, first.Description)
		assert.Equal(t, "Las mejores arepas de la zona.", *first.Description)
		require.NotNil(t, first.MapsURI)
		assert.Equal(t, "https://maps.google.com/?cid=1", *first.MapsURI)
		assert.Equal(t, []string{"arepas", "El Point"}, first.Tags)
		assert.Contains(t, first.ImageURL, "image.pollinations.ai")
		assert.NotEmpty(t, first.Reviews)
		assert.LessOrEqual(t, len(first.Reviews), 3)

		second := result.Items[1]
		assert.Equal(t, "El Budare del Este", second.Name)
		assert.Equal(t, "Address not available", second.Address)
		assert.Nil(t, second.Latitude)
		require.NotNil(t, second.Description)
		assert.Equal(t, "No details available.", *second.Description)

		// Request carried the caller's location for grounding.
		require.NotNil(t, gotReq.ToolConfig)
		assert.Equal(t, 10.4806, gotReq.ToolConfig.RetrievalConfig.LatLng.Latitude)
		require.Len(t, gotReq.Tools, 1)
	})

	t.Run("falls back to Caracas without an origin", func(t *testing.T) {
		var gotReq generateRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			json.NewEncoder(w).Encode(generateResponse{})
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		result, err := client.SearchPlaces(ctx, "cafe", nil)

		require.NoError(t, err)
		assert.Equal(t, "No text summary available.", result.Summary)
		assert.Empty(t, result.Items)
		require.NotNil(t, gotReq.ToolConfig)
		assert.Equal(t, caracas.Latitude, gotReq.ToolConfig.RetrievalConfig.LatLng.Latitude)
		assert.Equal(t, caracas.Longitude, gotReq.ToolConfig.RetrievalConfig.LatLng.Longitude)
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := testConfig("https://generativelanguage.googleapis.com/v1beta")
		cfg.APIKey = ""

		client := NewClient(cfg, logger)

		result, err := client.SearchPlaces(ctx, "arepas", nil)

		assert.ErrorIs(t, err, errors.ErrSearchUnavailable)
		assert.Nil(t, result)
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		result, err := client.SearchPlaces(ctx, "arepas", nil)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "gemini API error")
	})

	t.Run("summary without grounding metadata", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(generateResponse{
				Candidates: []candidate{
					{Content: content{Parts: []part{{Text: "Nothing found nearby."}}}},
				},
			})
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		result, err := client.SearchPlaces(ctx, "arepas", nil)

		require.NoError(t, err)
		assert.Equal(t, "Nothing found nearby.", result.Summary)
		assert.Empty(t, result.Items)
	})
}

func TestGenerateReviews(t *testing.T) {
	for i := 0; i < 50; i++ {
		reviews := generateReviews("Arepera Dona Carmen", []string{"arepas", "place"})

		require.NotEmpty(t, reviews)
		assert.LessOrEqual(t, len(reviews), 3)
		for _, r := range reviews {
			assert.NotEmpty(t, r.Author)
			assert.NotEmpty(t, r.Text)
			assert.GreaterOrEqual(t, r.Rating, 3.5)
			assert.LessOrEqual(t, r.Rating, 5.0)
			assert.NotEmpty(t, r.RelativeTime)
		}
	}
}
