package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/theaftaab/govassist/agent"
	"github.com/theaftaab/govassist/config"
	"github.com/theaftaab/govassist/logging"
	"github.com/theaftaab/govassist/model"
	"github.com/theaftaab/govassist/model/anthropic"
	"github.com/theaftaab/govassist/model/openai"
	"github.com/theaftaab/govassist/runner"
	"github.com/theaftaab/govassist/session"
	"github.com/theaftaab/govassist/transport/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "govassist: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Output:    os.Stdout,
		AddSource: cfg.Debug,
		Component: "main",
	})

	mdl, err := buildModel(cfg)
	if err != nil {
		return err
	}
	info := mdl.Info()
	logger.Info("using model %s (%s)", info.Name, info.Provider)

	router := agent.NewRouter(logger,
		agent.NewGreeter(),
		agent.NewContactAgent(),
		agent.NewFellingAgent(),
	)
	rn := runner.NewRunner(router, mdl, session.NewRegistry(logger), logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", ws.NewServer(rn, logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildModel constructs the configured provider adapter.
func buildModel(cfg config.Config) (model.Model, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		// The OpenAI client reads OPENAI_API_KEY from the environment.
		return openai.NewModel(func(o *openai.Options) {
			if cfg.ModelName != "" {
				o.Model = cfg.ModelName
			}
			o.Temperature = cfg.Temperature
			o.MaxCompletionTokens = int64(cfg.MaxTokens)
		}), nil
	case config.ProviderAnthropic:
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.ModelName != "" {
				o.Model = sdk.Model(cfg.ModelName)
			}
			o.Temperature = cfg.Temperature
			o.MaxTokens = int64(cfg.MaxTokens)
			o.APIKey = cfg.AnthropicAPIKey
		}), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
}
