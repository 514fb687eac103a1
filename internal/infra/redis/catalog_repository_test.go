package redis

import (
	"context"
	"testing"
	"time"

	"milestone-quiz-service/internal/domain"
	"milestone-quiz-service/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestCatalogRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		CatalogLoader: memory.NewStaticCatalogLoader(sampleCatalog()),
	}
	repo := NewCatalogRepository(client, loader, time.Minute)

	catalog, err := repo.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists(catalogKey) {
		t.Fatalf("expected catalog cached in redis")
	}

	// Second call should hit redis, loader not incremented.
	cached, err := repo.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if len(cached) != len(catalog) {
		t.Fatalf("expected same catalog from cache, got %d vs %d entries", len(cached), len(catalog))
	}
	for i := range catalog {
		if cached[i].ID != catalog[i].ID {
			t.Fatalf("catalog order lost at %d: %s vs %s", i, cached[i].ID, catalog[i].ID)
		}
	}
}

func TestCatalogRepositoryLoaderError(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewCatalogRepository(newClient(mr), memory.NewStaticCatalogLoader(nil), time.Minute)
	if _, err := repo.GetCatalog(context.Background()); err != domain.ErrCatalogNotFound {
		t.Fatalf("expected loader error surfaced, got %v", err)
	}
}

type countingLoader struct {
	memory.CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) ([]domain.Question, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx)
}

func sampleCatalog() []domain.Question {
	return []domain.Question{
		{ID: "gm-sits", Category: domain.CategoryGrossMotor, AgeMin: 5, AgeMax: 9, Weight: 1.5,
			Prompt: "Does your baby sit without support?"},
		{ID: "fm-pincer", Category: domain.CategoryFineMotor, AgeMin: 8, AgeMax: 12, Weight: 1,
			Prompt: "Does your baby pick up small pieces with thumb and finger?"},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
