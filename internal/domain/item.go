package domain

import "time"

// HistoryLimit - максимальное количество записей в истории просмотров
const HistoryLimit = 20

// Coordinates - географические координаты в градусах (WGS84)
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Review - отзыв о месте (сгенерированный или полученный из внешнего источника)
type Review struct {
	Author       string  `json:"author"`
	Text         string  `json:"text"`
	Rating       float64 `json:"rating"`
	RelativeTime string  `json:"relativeTime"`
}

// DirectoryItem - основная сущность места в справочнике
type DirectoryItem struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Address     string   `json:"address" db:"address"`
	Latitude    *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64 `json:"longitude,omitempty" db:"longitude"`
	Description *string  `json:"description,omitempty" db:"description"`
	Rating      *float64 `json:"rating,omitempty" db:"rating"`
	MapsURI     *string  `json:"mapsUri,omitempty" db:"maps_uri"`
	Tags        []string `json:"tags" db:"-"`
	ImageURL    string   `json:"imageUrl" db:"image_url"`

	// Расстояние от пользователя в километрах. Производное поле:
	// пересчитывается при каждой смене геопозиции и не хранится в базе.
	Distance *float64 `json:"distance,omitempty" db:"-"`

	// Личные заметки пользователя. Каждая коллекция хранит свою копию.
	UserNotes *string `json:"userNotes,omitempty" db:"user_notes"`

	Reviews []Review `json:"reviews,omitempty" db:"-"`
}

// Location возвращает координаты места, если они известны
func (i *DirectoryItem) Location() (Coordinates, bool) {
	if i.Latitude == nil || i.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: *i.Latitude, Longitude: *i.Longitude}, true
}

// HistoryItem - элемент истории просмотров. В истории не может быть двух
// записей с одним id: повторный просмотр поднимает запись наверх.
type HistoryItem struct {
	DirectoryItem
	VisitedAt time.Time `json:"visitedAt"`
}

// SearchResult - результат генеративного поиска: текстовая сводка и найденные места
type SearchResult struct {
	Summary string          `json:"summary"`
	Items   []DirectoryItem `json:"items"`
}
