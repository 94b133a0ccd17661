package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "telematics_roi/docs" // This will be auto-generated
	"telematics_roi/internal/adapter/http/handlers"
	"telematics_roi/internal/adapter/persistence/repository"
	"telematics_roi/internal/config"
	"telematics_roi/internal/infrastructure/database"
	"telematics_roi/internal/infrastructure/presets"
	"telematics_roi/internal/usecase"
	"telematics_roi/internal/usecase/interfaces"
	"telematics_roi/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the API from cfg and blocks serving it.
func Run(cfg config.Config, log *zap.Logger) error {
	log = logger.OrNop(log)
	gin.SetMode(cfg.Server.GinMode)

	repo, err := newEstimateRepository(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	router := NewRouter(Dependencies{
		EstimateUseCase: usecase.NewEstimateUseCase(repo, log),
		Presets:         presets.Builtin(),
		Logger:          log,
	})

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Info("http server listening", zap.String("addr", addr), zap.String("storage", cfg.Storage.Driver))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

type Dependencies struct {
	EstimateUseCase usecase.IEstimateUseCase
	Presets         handlers.PresetCatalog
	Logger          *zap.Logger
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger.OrNop(deps.Logger))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	roiHandler := handlers.NewRoiHandler(deps.EstimateUseCase)
	estimateHandler := handlers.NewEstimateHandler(deps.EstimateUseCase)
	presetHandler := handlers.NewPresetHandler(deps.Presets)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRoiRoutes(v1, roiHandler, estimateHandler, presetHandler)
	return router
}

func newEstimateRepository(ctx context.Context, cfg config.Config, log *zap.Logger) (interfaces.IEstimateRepository, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn("using in-memory estimate storage; saved estimates are lost on restart")
		return repository.NewEstimateMemoryRepository(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
	}
	return repository.NewEstimateDynamoRepository(ddb, cfg.Storage.EstimatesTable), nil
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
