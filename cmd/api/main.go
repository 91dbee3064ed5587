package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"desktop-assistant/config"
	_ "desktop-assistant/docs" // Swagger docs
	"desktop-assistant/internal/capability"
	"desktop-assistant/internal/capability/local"
	commandHTTP "desktop-assistant/internal/command/delivery/http"
	"desktop-assistant/internal/dispatch"
	"desktop-assistant/internal/httpserver"
	"desktop-assistant/internal/intent"
	"desktop-assistant/internal/llm"
	"desktop-assistant/internal/permission"
	"desktop-assistant/internal/pipeline"
	"desktop-assistant/internal/safety"
	"desktop-assistant/pkg/llmprovider"
	"desktop-assistant/pkg/log"
	"desktop-assistant/pkg/ollama"
)

// @title       Desktop Assistant API
// @description Natural language command processing with local/remote LLM routing.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Desktop Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "LLM routing mode: %s", cfg.LLM.Mode)

	// 3. Provider tiers
	var localProvider llmprovider.Provider
	ollamaClient, err := ollama.New(ollama.Config{
		BaseURL:   cfg.LLM.Local.BaseURL,
		Model:     cfg.LLM.Local.Model,
		CodeModel: cfg.LLM.Local.CodeModel,
		HTTPClient: &http.Client{
			Timeout: parseDuration(cfg.LLM.Local.Timeout, 60*time.Second),
		},
	})
	if err != nil {
		logger.Warnf(ctx, "Local model server not configured: %v", err)
	} else {
		localProvider = llmprovider.NewOllamaAdapter(ollamaClient)
	}

	remoteProviders, err := llmprovider.InitializeRemoteProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "Remote providers unavailable: %v", err)
	} else {
		for _, p := range remoteProviders {
			logger.Infof(ctx, "Remote provider ready: %s (%s)", p.Name(), p.Model())
		}
	}

	// 4. Router
	prober := llm.NewHTTPProber(cfg.LLM.Routing.ProbeURL,
		parseDuration(cfg.LLM.Routing.ProbeTimeout, 3*time.Second))
	router := llm.New(logger, localProvider, remoteProviders, prober, llm.OptionsFromConfig(&cfg.LLM))

	if err := router.VerifyAvailability(ctx); err != nil {
		logger.Warnf(ctx, "No LLM tier currently available: %v", err)
	}

	// 5. Gates
	safetyChecker := safety.New(logger, cfg.Safety)
	permissions := permission.New(logger, cfg.Permissions,
		permission.PolicyConsenter{GrantAll: cfg.Permissions.AutoGrant})

	// 6. Capabilities
	adapters := local.New(logger, cfg.Speech.Command)

	// 7. Core pipeline
	resolver := intent.New(logger, router)
	dispatcher := dispatch.New(logger, dispatch.Capabilities{
		App:     adapters.App,
		Browser: adapters.Browser,
		Input:   adapters.Input,
		Shell:   adapters.Shell,
		System:  adapters.System,
		Files:   adapters.Files,
	}, permissions, safetyChecker, router)

	var speaker *local.Speaker
	if cfg.Speech.Enabled {
		speaker = adapters.Speaker
	}
	p := pipeline.New(logger, resolver, dispatcher, router, speakerOrNil(speaker))

	// 8. HTTP Server
	handler := commandHTTP.New(logger, p, permissions)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AuthToken:       cfg.Security.AuthToken,
		RateLimitPerMin: cfg.Security.RateLimitPerMin,
		CommandHandler:  handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// speakerOrNil avoids handing the pipeline a non-nil interface wrapping a
// nil adapter when speech is disabled.
func speakerOrNil(s *local.Speaker) capability.Speaker {
	if s == nil {
		return nil
	}
	return s
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
