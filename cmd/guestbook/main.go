package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/cylin-dev/guestbook/internal/config"
	"github.com/cylin-dev/guestbook/internal/logger"
	"github.com/cylin-dev/guestbook/internal/router"
	"github.com/cylin-dev/guestbook/internal/setup"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("setup failed", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	server := configureServer(router.SetupRouter(deps), cfg.Public.Port)
	logger.Log.Info("starting server", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func configureServer(handler http.Handler, port string) *http.Server {
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	return &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
