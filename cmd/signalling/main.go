package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/carelink/callrelay/internal/config"
	"github.com/carelink/callrelay/internal/signalling"
	"github.com/gofiber/fiber/v2"
	"github.com/lmittmann/tint"
)

const defaultConfigPath = "conf/signalling.yaml"

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	})))

	configPath := defaultConfigPath
	if p := os.Getenv("CALLRELAY_CONFIG"); p != "" {
		configPath = p
	}

	manager, err := config.NewManager(configPath)
	if err != nil {
		slog.Error("can not load config", "path", configPath, "error", err)
		os.Exit(1)
	}
	cfg := manager.Get()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	server := signalling.NewServer(&cfg, app)
	defer server.Close()
	server.SetupRoutes()

	manager.OnUpdate(server.ApplyConfig)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	if cfg.Server.TLSCrtFile != nil && cfg.Server.TLSKeyFile != nil {
		slog.Info("listening with TLS", "addr", addr)
		err = app.ListenTLS(addr, *cfg.Server.TLSCrtFile, *cfg.Server.TLSKeyFile)
	} else {
		slog.Info("listening", "addr", addr)
		err = app.Listen(addr)
	}
	if err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
