package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/redis/go-redis/v9"

	"github.com/inmolista/listing_crm/src/internal/api"
	appdocument "github.com/inmolista/listing_crm/src/internal/application/document"
	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	appmedia "github.com/inmolista/listing_crm/src/internal/application/media"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
	"github.com/inmolista/listing_crm/src/internal/infrastructure/auth"
	"github.com/inmolista/listing_crm/src/internal/infrastructure/cache"
	"github.com/inmolista/listing_crm/src/internal/infrastructure/config"
	"github.com/inmolista/listing_crm/src/internal/infrastructure/events"
	"github.com/inmolista/listing_crm/src/internal/infrastructure/persistence"
	persdocument "github.com/inmolista/listing_crm/src/internal/infrastructure/persistence/document"
	perslisting "github.com/inmolista/listing_crm/src/internal/infrastructure/persistence/listing"
	persmedia "github.com/inmolista/listing_crm/src/internal/infrastructure/persistence/media"
	"github.com/inmolista/listing_crm/src/internal/infrastructure/storage"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&perslisting.PropertyGORM{},
		&persdocument.DocumentGORM{},
		&persmedia.MediaAssetGORM{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("[WARN] failed to close redis client: %v", err)
		}
	}()

	s3Storage, err := storage.NewS3Storage(cfg)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// 基礎設施
	clock := shared.SystemClock{}
	txManager := persistence.NewGORMTransactionManager(db)
	authGateway := auth.NewContextAuthGateway()
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	publisher := events.NewLogEventPublisher()
	listingCache := cache.NewRedisListingCache(redisClient)

	// Repository
	propertyRepo := perslisting.NewPropertyRepository(db)
	docRepo := persdocument.NewDocumentRepository(db)
	mediaRepo := persmedia.NewMediaRepository(db)

	// Domain Service
	factory := listing.NewPropertyFactory(clock)
	readinessService := listing.NewReadinessService()
	refresher := applisting.NewCompletenessRefresher(mediaRepo, docRepo)

	// 房源 Use Case
	propertyHandler := api.NewPropertyHandler(
		applisting.NewCreatePropertyUseCase(factory, propertyRepo, txManager, authGateway, publisher, listingCache),
		applisting.NewUpdatePropertyUseCase(propertyRepo, refresher, txManager, authGateway, listingCache),
		applisting.NewGetPropertyUseCase(propertyRepo, mediaRepo, docRepo, authGateway),
		applisting.NewListPropertiesUseCase(propertyRepo, authGateway, listingCache),
		applisting.NewPublishPropertyUseCase(propertyRepo, refresher, txManager, authGateway, clock, publisher, listingCache),
		applisting.NewPausePropertyUseCase(propertyRepo, txManager, authGateway, publisher, listingCache),
		applisting.NewMarkPropertySoldUseCase(propertyRepo, txManager, authGateway, clock, publisher, listingCache),
		applisting.NewSoftDeletePropertyUseCase(propertyRepo, txManager, authGateway, clock, publisher, listingCache),
		applisting.NewRestorePropertyUseCase(propertyRepo, txManager, authGateway, listingCache),
		applisting.NewDuplicatePropertyUseCase(propertyRepo, mediaRepo, docRepo, txManager, authGateway, clock, publisher, listingCache),
		applisting.NewComputeReadinessUseCase(propertyRepo, mediaRepo, docRepo, readinessService, authGateway),
	)

	// 文件 Use Case
	documentHandler := api.NewDocumentHandler(
		appdocument.NewAttachDocumentUseCase(propertyRepo, docRepo, refresher, txManager, authGateway, clock, listingCache),
		appdocument.NewVerifyDocumentUseCase(propertyRepo, docRepo, txManager, authGateway, clock, listingCache),
		appdocument.NewListDocumentsUseCase(propertyRepo, docRepo, authGateway),
		appdocument.NewDeleteDocumentUseCase(propertyRepo, docRepo, refresher, s3Storage, txManager, authGateway, listingCache),
	)

	// 媒體 Use Case
	mediaHandler := api.NewMediaHandler(
		appmedia.NewRequestMediaUploadUseCase(propertyRepo, s3Storage, authGateway),
		appmedia.NewAttachMediaUseCase(propertyRepo, mediaRepo, refresher, txManager, authGateway, clock, listingCache),
		appmedia.NewReorderMediaUseCase(propertyRepo, mediaRepo, txManager, authGateway, listingCache),
		appmedia.NewSetCoverUseCase(propertyRepo, mediaRepo, txManager, authGateway, listingCache),
		appmedia.NewRemoveMediaUseCase(propertyRepo, mediaRepo, refresher, s3Storage, txManager, authGateway, listingCache),
	)

	handler := api.NewRouter(cfg, tokens, propertyHandler, documentHandler, mediaHandler)

	server := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("server running on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}
	log.Println("server stopped")
}
