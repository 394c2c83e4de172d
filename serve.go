package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"chatbox/config"
	"chatbox/provider"
	"chatbox/server"
)

type serveFlags struct {
	addr     string
	provider string
	model    string
	baseURL  string
	envFile  string
	logLevel string
}

func newServeCommand(root *rootFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reference chat backend (POST /chat)",
		Long: `Run an HTTP server that answers {"message": "..."} on POST /chat with
{"reply": "..."} from the configured provider (echo, ollama, openai,
openrouter, anthropic or gemini). API keys are read from the environment
and from a .env file in the working directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (default from settings.toml, "+config.DefaultServerAddr+")")
	cmd.Flags().StringVar(&flags.provider, "provider", "", "provider: echo, ollama, openai, openrouter, anthropic, gemini")
	cmd.Flags().StringVar(&flags.model, "model", "", "model name (provider default when empty)")
	cmd.Flags().StringVar(&flags.baseURL, "base-url", "", "provider API base URL override")
	cmd.Flags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file with API keys")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runServe(ctx context.Context, root *rootFlags, flags *serveFlags) error {
	logger := config.NewConsoleLogger(os.Stderr, flags.logLevel)
	log.Logger = logger

	config.LoadDotEnv(flags.envFile)

	cfg, err := config.Load(root.configDir)
	if err != nil {
		return err
	}

	sc := cfg.Server
	if flags.addr != "" {
		sc.Addr = flags.addr
	}
	if flags.provider != "" {
		sc.Provider = flags.provider
	}
	if flags.model != "" {
		sc.Model = flags.model
	}
	if flags.baseURL != "" {
		sc.BaseURL = flags.baseURL
	}

	replier, err := provider.NewProvider(provider.Config{
		Type:    provider.MapProviderIDToType(sc.Provider),
		BaseURL: sc.BaseURL,
		Model:   sc.Model,
		APIKey:  config.APIKey(sc.Provider),
	})
	if err != nil {
		if env := config.APIKeyEnv(sc.Provider); env != "" && config.APIKey(sc.Provider) == "" {
			return errors.Wrapf(err, "set %s or add it to %s", env, flags.envFile)
		}
		return errors.Wrapf(err, "provider %q", sc.Provider)
	}
	if closer, ok := replier.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(replier, logger, server.Options{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(gctx, sc.Addr, nil)
	})
	if pinger, ok := replier.(interface{ Ping(context.Context) error }); ok {
		// A failed ping is only a warning; the provider may come up later.
		g.Go(func() error {
			if err := pinger.Ping(gctx); err != nil {
				logger.Warn().Err(err).Str("provider", replier.Name()).Msg("provider not reachable yet")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
