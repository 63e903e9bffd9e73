package gemini

// Wire-типы REST API generateContent с Maps grounding

type generateRequest struct {
	Contents   []content   `json:"contents"`
	Tools      []tool      `json:"tools,omitempty"`
	ToolConfig *toolConfig `json:"toolConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleMaps map[string]interface{} `json:"googleMaps,omitempty"`
}

type toolConfig struct {
	RetrievalConfig retrievalConfig `json:"retrievalConfig"`
}

type retrievalConfig struct {
	LatLng latLng `json:"latLng"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Maps *mapsChunk `json:"maps,omitempty"`
}

type mapsChunk struct {
	SourcePlace        *placeSource        `json:"sourcePlace,omitempty"`
	URI                string              `json:"uri,omitempty"`
	Title              string              `json:"title,omitempty"`
	PlaceAnswerSources []placeAnswerSource `json:"placeAnswerSources,omitempty"`
}

type placeSource struct {
	Name     string  `json:"name,omitempty"`
	Address  string  `json:"address,omitempty"`
	Location *latLng `json:"location,omitempty"`
}

type placeAnswerSource struct {
	ReviewSnippets []reviewSnippet `json:"reviewSnippets,omitempty"`
}

type reviewSnippet struct {
	Content string `json:"content"`
}
