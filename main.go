package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"chatbox/client"
	"chatbox/config"
	"chatbox/console"
	"chatbox/ui"
	"chatbox/widget"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

type rootFlags struct {
	endpoint  string
	configDir string
	line      bool
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "chatbox",
		Short:         "A minimal chat client for a JSON reply endpoint",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.endpoint, "endpoint", "e", "", "chat endpoint URL (overrides settings.toml and CHATBOX_ENDPOINT)")
	cmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default ~/.config/chatbox)")
	cmd.Flags().BoolVar(&flags.line, "line", false, "read messages line by line from stdin instead of starting the terminal UI")

	cmd.AddCommand(newServeCommand(flags))

	return cmd
}

func runChat(ctx context.Context, flags *rootFlags) error {
	interactive := !flags.line &&
		isatty.IsTerminal(os.Stdin.Fd()) &&
		isatty.IsTerminal(os.Stdout.Fd())

	cfg, err := config.Load(flags.configDir)
	if err == nil {
		cfg.WithEndpoint(flags.endpoint)
		err = cfg.Validate()
	}
	if err != nil {
		if interactive {
			showErrorModal("Configuration Error", err.Error())
		}
		return errors.Wrap(err, "configuration error")
	}

	closer := config.InitDebugLog(cfg.Dir())
	defer closer.Close()

	c, err := client.New(cfg.EndpointURL(),
		client.WithTimeout(cfg.Timeout()),
		client.WithUserAgent("chatbox/"+Version),
	)
	if err != nil {
		return err
	}
	log.Debug().Str("endpoint", c.Endpoint()).Dur("timeout", cfg.Timeout()).Bool("interactive", interactive).Msg("starting chat")

	if !interactive {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return console.Run(ctx, os.Stdin, os.Stdout, c, widget.Options{Placeholder: cfg.Widget.Placeholder})
	}

	p := tea.NewProgram(
		ui.NewAppView(cfg, c, Version, License),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running chatbox")
	}
	return nil
}

func showErrorModal(title, message string) {
	p := tea.NewProgram(
		ui.NewErrorModal(title, message),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
