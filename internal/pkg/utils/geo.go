package utils

import (
	"fmt"
	"math"

	"github.com/luis-epic/el-point-ai/internal/domain"
)

const earthRadiusKm = 6371.0

// Distance вычисляет расстояние между двумя точками в километрах
// по формуле гаверсинуса. Результат округляется до одного знака.
func Distance(a, b domain.Coordinates) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	d := earthRadiusKm * c
	return math.Round(d*10) / 10
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// FormatDistance форматирует расстояние для отображения: nil - пустая строка,
// меньше километра - целые метры, иначе километры с одним знаком
func FormatDistance(km *float64) string {
	if km == nil {
		return ""
	}
	if *km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(*km*1000)))
	}
	return fmt.Sprintf("%.1f km", *km)
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
