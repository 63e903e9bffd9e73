package dto

// CredentialsRequest - тело запросов входа и регистрации
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SearchRequest - параметры поиска мест
type SearchRequest struct {
	Query  string   `json:"q" validate:"required,min=1"`
	Lat    *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon    *float64 `json:"lon" validate:"omitempty,longitude"`
	Filter string   `json:"filter" validate:"omitempty,oneof=top_rated nearest under_2km"`
}

// NoteRequest - обновление личной заметки. Пустая строка очищает заметку.
type NoteRequest struct {
	Note string `json:"note"`
}
