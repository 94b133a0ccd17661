package main

import (
	"log"

	_ "telematics_roi/docs"
	"telematics_roi/internal/adapter/http/routes"
	"telematics_roi/internal/config"
	"telematics_roi/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Telematics ROI Estimator API
// @version         1.0
// @description     Fleet telematics savings, payback and ROI estimator.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	if err := routes.Run(cfg, l); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}
