package gemini

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/luis-epic/el-point-ai/internal/domain"
)

// Фразы для синтеза отзывов в венесуэльском разговорном стиле
var (
	adjectives = []string{
		"brutal", "mundial", "chévere", "criminal", "fino",
		"resuelto", "buenísimo", "normalito", "depinga",
	}
	foodComments = []string{
		"Las empanadas son de otro mundo", "La salsa de ajo es clave",
		"Bien resuelto el plato", "Tienen malta bien fría",
		"Un pelo caro pero vale la pena", "Atención 10/10",
		"Me comí dos y quedé explotado",
	}
	genericComments = []string{
		"El ambiente es super chill", "La música está dura",
		"Full seguridad", "Buen point para ir con los panas",
		"Se hace cola pero camina rápido", "Estacionamiento cómodo",
		"Aire acondicionado a full mecha",
	}
	authorNames = []string{
		"Carlos", "Maria", "Luis", "Ana", "Jose",
		"Valentina", "Andrés", "Sofía", "Gaby", "Miguel",
	}
)

func pick(list []string) string {
	return list[rand.Intn(len(list))]
}

func isFoodPlace(tags []string) bool {
	for _, t := range tags {
		lower := strings.ToLower(t)
		if strings.Contains(lower, "food") ||
			strings.Contains(lower, "restaurant") ||
			strings.Contains(lower, "cafe") {
			return true
		}
	}
	return false
}

// generateReviews синтезирует 1-3 отзыва с рейтингом 3.5-5.0
func generateReviews(placeName string, tags []string) []domain.Review {
	count := rand.Intn(3) + 1
	reviews := make([]domain.Review, 0, count)
	food := isFoodPlace(tags)

	for i := 0; i < count; i++ {
		rating := float64(rand.Intn(15)+35) / 10

		var text string
		if food {
			adj := pick(adjectives)
			text = fmt.Sprintf("%s. ¡%s%s!",
				pick(foodComments),
				strings.ToUpper(adj[:1]), adj[1:],
			)
		} else {
			text = fmt.Sprintf("%s. %s es %s.",
				pick(genericComments), placeName, pick(adjectives),
			)
		}

		reviews = append(reviews, domain.Review{
			Author:       pick(authorNames),
			Text:         text,
			Rating:       rating,
			RelativeTime: fmt.Sprintf("%dd", rand.Intn(10)+1),
		})
	}
	return reviews
}
