package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kairos-coach/kairos/core/coach"
	"github.com/kairos-coach/kairos/core/config"
	"github.com/kairos-coach/kairos/core/gateway"
	"github.com/kairos-coach/kairos/core/prompt"
	"github.com/kairos-coach/kairos/core/scenario"
	"github.com/kairos-coach/kairos/core/scrum"
	"github.com/kairos-coach/kairos/core/server"
	"github.com/kairos-coach/kairos/core/store"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the coaching HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(serveConfigPath)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "kairos.yaml", "path to configuration file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry, err := buildRegistry(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer registry.Close()

	kb := scrum.NewKnowledgeBase()
	catalog := scenario.NewCatalog()
	st := store.New(prompt.Welcome)
	svc := coach.NewService(st, catalog, kb, registry, cfg.LLM.Timeout, logger)

	if svc.Offline() {
		logger.Warn("no provider credentials configured, running in offline fallback mode")
	}

	srv := server.New(svc, logger)
	err = srv.ListenAndServe(ctx,
		cfg.Server.Addr,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		cfg.Server.ShutdownTimeout,
	)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// buildRegistry registers every provider that has a credential. A
// registry with no providers is valid and puts the service in offline
// mode.
func buildRegistry(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gateway.Registry, error) {
	registry := gateway.NewRegistry()

	if cfg.Providers.OpenRouter.APIKey != "" {
		if err := registry.RegisterOpenRouter(cfg.Providers.OpenRouter); err != nil {
			return nil, fmt.Errorf("register openrouter: %w", err)
		}
		logger.Info("registered provider", zap.String("provider", string(gateway.ProviderTypeOpenRouter)))
	}
	if cfg.Providers.OpenAI.APIKey != "" {
		if err := registry.RegisterOpenAI(cfg.Providers.OpenAI); err != nil {
			return nil, fmt.Errorf("register openai: %w", err)
		}
		logger.Info("registered provider", zap.String("provider", string(gateway.ProviderTypeOpenAI)))
	}
	if cfg.Providers.Anthropic.APIKey != "" {
		if err := registry.RegisterAnthropic(cfg.Providers.Anthropic); err != nil {
			return nil, fmt.Errorf("register anthropic: %w", err)
		}
		logger.Info("registered provider", zap.String("provider", string(gateway.ProviderTypeAnthropic)))
	}
	if cfg.Providers.Google.APIKey != "" {
		if err := registry.RegisterGoogle(ctx, cfg.Providers.Google); err != nil {
			return nil, fmt.Errorf("register google: %w", err)
		}
		logger.Info("registered provider", zap.String("provider", string(gateway.ProviderTypeGoogle)))
	}

	if !registry.Empty() && cfg.LLM.DefaultProvider != "" {
		if err := registry.SetDefault(gateway.ProviderType(cfg.LLM.DefaultProvider)); err != nil {
			logger.Warn("configured default provider not registered, using first available",
				zap.String("provider", cfg.LLM.DefaultProvider),
			)
		}
	}
	return registry, nil
}
