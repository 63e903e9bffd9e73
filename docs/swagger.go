// Package docs El Point Directory API.
//
// Бэкенд мобильного справочника мест: генеративный поиск с привязкой
// к геопозиции, избранное, история просмотров, личные заметки и сессия
// пользователя.
//
// Основные возможности:
// - Поиск мест через генеративный API с Maps grounding
// - Избранное с upsert-семантикой и сохранением порядка добавления
// - История просмотров с дедупликацией и лимитом в 20 записей
// - Личные заметки с распространением по всем коллекциям
// - Локальный (mock) и удалённый режимы хранения
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
