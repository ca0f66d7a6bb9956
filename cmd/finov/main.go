package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/finovai/finov"
	"github.com/finovai/finov/common/logger"
	"github.com/finovai/finov/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "config file path")
	flag.Parse()

	// .env keeps API keys out of the config file during development.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("logger setup failed: %v", err)
	}

	client, err := finov.NewClient(cfg)
	if err != nil {
		log.Fatalf("client initialization failed: %v", err)
	}
	defer client.Close()

	logger.Infof("finov %s serving over stdio (models %s / %s)", finov.Version, cfg.LLM.Model, cfg.LLM.FallbackModel)

	if err := mcpserver.ServeStdio(finov.NewServer(client)); err != nil {
		logger.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
