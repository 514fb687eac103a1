package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"milestone-quiz-service/internal/app"
	"milestone-quiz-service/internal/config"
	"milestone-quiz-service/internal/domain"
	"milestone-quiz-service/internal/infra/memory"
	pgloader "milestone-quiz-service/internal/infra/postgres"
	rediscatalog "milestone-quiz-service/internal/infra/redis"
	"milestone-quiz-service/internal/scoring"
	transport "milestone-quiz-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the milestone quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(sampleCatalog())
	if pool != nil {
		loader = pgloader.NewCatalogLoader(pool)
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	var catalogRepo app.CatalogRepository
	if redisClient != nil {
		catalogRepo = rediscatalog.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalogRepo = memory.NewCatalogRepository(loader, catalogTTL)
	}

	service := app.NewAssessmentService(catalogRepo, scoring.NewCalculator(scoring.DefaultConfig()))
	handler := transport.NewHandler(service)
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/questions", handler.Questions)
	mux.HandleFunc("/api/assessment", handler.Assessment)
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting milestone quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleCatalog provides a minimal question set; the Postgres loader replaces this in production.
func sampleCatalog() []domain.Question {
	notYet := []domain.Option{
		{Label: "Not yet", Score: 0},
		{Label: "Starting to", Score: 1},
		{Label: "Sometimes", Score: 2},
		{Label: "Yes, consistently", Score: 3},
	}
	return []domain.Question{
		{ID: "gm-head-control", Category: domain.CategoryGrossMotor, AgeMin: 1, AgeMax: 4, Weight: 1,
			Prompt: "Does your baby hold their head steady when held upright?", Options: notYet},
		{ID: "gm-sits", Category: domain.CategoryGrossMotor, AgeMin: 5, AgeMax: 9, Weight: 1.5,
			Prompt: "Does your baby sit without support?", Options: notYet},
		{ID: "gm-walks", Category: domain.CategoryGrossMotor, AgeMin: 10, AgeMax: 18, Weight: 1.5,
			Prompt: "Does your baby walk holding onto furniture or independently?", Options: notYet},
		{ID: "fm-grasps", Category: domain.CategoryFineMotor, AgeMin: 2, AgeMax: 6, Weight: 1,
			Prompt: "Does your baby grasp a rattle or toy placed in their hand?", Options: notYet},
		{ID: "fm-pincer", Category: domain.CategoryFineMotor, AgeMin: 8, AgeMax: 14, Weight: 1,
			Prompt: "Does your baby pick up small pieces with thumb and finger?", Options: notYet},
		{ID: "lang-coos", Category: domain.CategoryLanguage, AgeMin: 1, AgeMax: 5, Weight: 1,
			Prompt: "Does your baby coo and make vowel sounds?", Options: notYet},
		{ID: "lang-babbles", Category: domain.CategoryLanguage, AgeMin: 5, AgeMax: 10, Weight: 1,
			Prompt: "Does your baby babble with consonant sounds (ba, da, ma)?", Options: notYet},
		{ID: "lang-words", Category: domain.CategoryLanguage, AgeMin: 11, AgeMax: 18, Weight: 1.5,
			Prompt: "Does your baby say one or more real words?", Options: notYet},
		{ID: "cog-object-permanence", Category: domain.CategoryCognitive, AgeMin: 6, AgeMax: 12, Weight: 1,
			Prompt: "Does your baby look for a toy hidden under a cloth?", Options: notYet},
		{ID: "cog-cause-effect", Category: domain.CategoryCognitive, AgeMin: 9, AgeMax: 16, Weight: 1,
			Prompt: "Does your baby press buttons or shake toys to make things happen?", Options: notYet},
		{ID: "se-smiles", Category: domain.CategorySocialEmotional, AgeMin: 1, AgeMax: 4, Weight: 1,
			Prompt: "Does your baby smile back at you?", Options: notYet},
		{ID: "se-stranger", Category: domain.CategorySocialEmotional, AgeMin: 7, AgeMax: 14, Weight: 1,
			Prompt: "Does your baby react differently to strangers than to family?", Options: notYet},
	}
}
