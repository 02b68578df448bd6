package main

import (
	"context"
	"log"

	gstorage "cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Mahesh0843/Telugu-DOCX/internal/api"
	"github.com/Mahesh0843/Telugu-DOCX/internal/config"
	"github.com/Mahesh0843/Telugu-DOCX/internal/gcp"
	"github.com/Mahesh0843/Telugu-DOCX/internal/services"
	"github.com/Mahesh0843/Telugu-DOCX/internal/storage"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.Load()
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	ledger := buildLedger(ctx, cfg)
	translator := buildTranslator(ctx, cfg)

	extractor := services.NewExtractor(cfg.OCRLanguage, cfg.OCRConcurrency)
	emitter := services.NewDocEmitter()
	pipeline := services.NewPipeline(extractor, translator, emitter, store, ledger)
	handler := api.NewHandler(pipeline)

	gin.SetMode(gin.ReleaseMode)
	r := api.NewRouter(cfg, handler, store)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func buildStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.OutputBucket == "" {
		return storage.NewLocalStore(cfg.UploadDir, cfg.OutputDir), nil
	}

	client, err := gstorage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Committing generated documents to gs://%s", cfg.OutputBucket)
	return storage.NewGCSStore(client, cfg.OutputBucket, cfg.UploadDir)
}

func buildLedger(ctx context.Context, cfg *config.Config) *services.Ledger {
	if cfg.ProjectID == "" {
		return nil
	}

	client, err := gcp.NewFirestoreClient(ctx, cfg.ProjectID)
	if err != nil {
		log.Printf("WARNING: Firestore unavailable, conversion ledger disabled: %v", err)
		return nil
	}
	return services.NewLedger(client, cfg.FirestoreCollection)
}

func buildTranslator(ctx context.Context, cfg *config.Config) *services.Translator {
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not set; documents will keep their original text")
		return services.NewTranslator(nil, cfg.TranslateTimeout)
	}

	model, err := gcp.NewGeminiModel(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("WARNING: Gemini client unavailable, translation disabled: %v", err)
		return services.NewTranslator(nil, cfg.TranslateTimeout)
	}
	return services.NewTranslator(model, cfg.TranslateTimeout)
}
