package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "sarb_ai/docs" // swag-generated swagger spec
	"sarb_ai/internal/adapter/http/handlers"
	"sarb_ai/internal/adapter/persistence/repository"
	adaptersnapshot "sarb_ai/internal/adapter/snapshot"
	"sarb_ai/internal/infrastructure/cache"
	"sarb_ai/internal/infrastructure/database"
	"sarb_ai/internal/infrastructure/provider"
	"sarb_ai/internal/infrastructure/random"
	"sarb_ai/internal/infrastructure/seed"
	"sarb_ai/internal/usecase"
	"sarb_ai/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const shutdownTimeout = 5 * time.Second

type dependencies struct {
	source  interfaces.ISnapshotSource
	archive interfaces.ISnapshotArchive
}

// Run wires the service together, starts the HTTP server and blocks until
// SIGINT/SIGTERM. The latest snapshot is archived best-effort on the way out.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	deps := getRoutes()

	srv := &http.Server{
		Addr:    ":" + getenvDefault("PORT", "8080"),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()
	log.Printf("[routes] listening on %s", srv.Addr)

	<-ctx.Done()
	archiveLatestSnapshot(deps)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[routes] shutdown failed err=%v", err)
	}
}

func getRoutes() dependencies {
	providerClient := provider.NewClientFromEnv()
	redisClient := cache.NewRedisFromEnv()
	ddb := database.ConnectDynamoDB()

	archive := repository.NewSnapshotDynamoRepository(ddb)
	source := adaptersnapshot.NewSource(providerClient, redisClient, archive, seed.NewGeneratorFromEnv())
	noise := random.NewUniformNoiseFromEnv()

	demandUseCase := usecase.NewDemandUseCase(source, noise)
	pricingUseCase := usecase.NewPricingUseCase(source)
	cancellationUseCase := usecase.NewCancellationUseCase(source)
	recommendationUseCase := usecase.NewRecommendationUseCase(source)
	notificationUseCase := usecase.NewHostNotificationUseCase(source, demandUseCase, noise)

	demandHandler := handlers.NewDemandHandler(demandUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	cancellationHandler := handlers.NewCancellationHandler(cancellationUseCase)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	dataHandler := handlers.NewDataHandler(source)

	api := router.Group("/api")
	addPingRoutes(router.Group("/"))
	addDataRoutes(api, dataHandler)
	addAIRoutes(api, demandHandler, pricingHandler, cancellationHandler, recommendationHandler, notificationHandler)

	return dependencies{source: source, archive: archive}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
}

// archiveLatestSnapshot persists the current snapshot so a later boot can
// serve it when the provider is down. Fire-and-forget: failures are logged,
// never fatal.
func archiveLatestSnapshot(deps dependencies) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	snap, err := deps.source.Snapshot(ctx)
	if err != nil {
		log.Printf("[routes] snapshot for archive failed err=%v", err)
		return
	}
	if err := deps.archive.SaveLatest(ctx, snap); err != nil {
		log.Printf("[routes] snapshot archive failed err=%v", err)
		return
	}
	log.Printf("[routes] snapshot archived")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
