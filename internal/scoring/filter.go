package scoring

import "milestone-quiz-service/internal/domain"

// SelectQuestions returns every catalog question whose inclusive age range
// covers ageMonths, preserving catalog order. Entries with inverted bounds
// (AgeMin > AgeMax) are treated as never applicable rather than an error;
// ages past the catalog range simply yield an empty result.
func SelectQuestions(ageMonths int, catalog []domain.Question) []domain.Question {
	selected := make([]domain.Question, 0, len(catalog))
	for _, q := range catalog {
		if q.AgeMin > q.AgeMax {
			continue
		}
		if ageMonths >= q.AgeMin && ageMonths <= q.AgeMax {
			selected = append(selected, q)
		}
	}
	return selected
}
