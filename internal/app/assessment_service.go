package app

import (
	"context"

	"milestone-quiz-service/internal/domain"
	"milestone-quiz-service/internal/scoring"
)

// CatalogRepository loads the question catalog (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) ([]domain.Question, error)
}

// AssessmentService contains the milestone quiz use cases: select questions
// for an age, evaluate an answer set. It holds no per-call state.
type AssessmentService struct {
	catalog CatalogRepository
	calc    *scoring.Calculator
}

func NewAssessmentService(catalog CatalogRepository, calc *scoring.Calculator) *AssessmentService {
	return &AssessmentService{catalog: catalog, calc: calc}
}

// QuestionsForAge returns the catalog questions applicable to a subject age
// in months, in catalog order. A negative age is a caller contract violation.
func (s *AssessmentService) QuestionsForAge(ctx context.Context, ageMonths int) ([]domain.Question, error) {
	if ageMonths < 0 {
		return nil, domain.ErrInvalidAge
	}
	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.SelectQuestions(ageMonths, catalog), nil
}

// Evaluate computes the assessment for one answer set. The computation is
// pure and instantaneous, so it takes no context; the same answers always
// produce the same result.
func (s *AssessmentService) Evaluate(answers []domain.Answer) domain.QuizResult {
	return s.calc.Calculate(answers)
}
