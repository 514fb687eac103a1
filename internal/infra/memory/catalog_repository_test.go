package memory

import (
	"context"
	"testing"
	"time"

	"milestone-quiz-service/internal/domain"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		CatalogLoader: NewStaticCatalogLoader(sampleCatalog()),
	}
	repo := NewCatalogRepository(loader, time.Minute)

	catalog, err := repo.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(catalog))
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestStaticCatalogLoaderMissing(t *testing.T) {
	loader := NewStaticCatalogLoader(nil)
	if _, err := loader.LoadCatalog(context.Background()); err != domain.ErrCatalogNotFound {
		t.Fatalf("expected catalog-not-found, got %v", err)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) ([]domain.Question, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx)
}

func sampleCatalog() []domain.Question {
	return []domain.Question{
		{ID: "gm-rolls", Category: domain.CategoryGrossMotor, AgeMin: 3, AgeMax: 6, Weight: 1,
			Prompt: "Does your baby roll over in both directions?"},
		{ID: "lang-babbles", Category: domain.CategoryLanguage, AgeMin: 4, AgeMax: 9, Weight: 1,
			Prompt: "Does your baby babble with consonant sounds?"},
	}
}
