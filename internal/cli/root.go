// Package cli implements the deezer-flow command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/llehouerou/deezer-flow/internal/config"
	"github.com/llehouerou/deezer-flow/internal/deezer"
	"github.com/llehouerou/deezer-flow/internal/errmsg"
	"github.com/llehouerou/deezer-flow/internal/logging"
	"github.com/llehouerou/deezer-flow/internal/mediactl"
	"github.com/llehouerou/deezer-flow/internal/plugin"
)

// options holds the flags shared by every command.
type options struct {
	configPath string
	logLevel   string
}

// newRootCmd builds the command tree. Each run gets a fresh tree so no flag
// or context state leaks between executions.
func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "deezer-flow",
		Short:         "Deezer search and playback control for Flow Launcher",
		SilenceUsage:  true, // don't print usage on operational errors
		SilenceErrors: true, // Execute prints them
		Long: `deezer-flow searches the Deezer catalog and controls the Deezer desktop app.

Flow Launcher runs it with a single JSON-RPC argument; the other commands
run the same pipeline from a terminal.`,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a config file loaded after the default locations")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newRPCCmd(opts),
		newQueryCmd(opts),
		newTUICmd(opts),
		newPlayPauseCmd(opts),
		newStopCmd(opts),
		newStatusCmd(opts),
		newOpenCmd(opts),
	)
	return root
}

// Execute is called by main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	root.SetArgs(normalizeArgs(os.Args[1:]))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1) //nolint:gocritic // stop is called above
	}
}

// normalizeArgs routes a bare JSON argument, as passed by Flow Launcher, to
// the rpc command.
func normalizeArgs(args []string) []string {
	if len(args) > 0 && strings.HasPrefix(strings.TrimSpace(args[0]), "{") {
		return append([]string{rpcCommand}, args...)
	}
	return args
}

// env holds what every command needs, built from config and flags.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	plugin *plugin.Plugin
}

// setup loads config and builds the plugin. Logs go to logw.
func setup(opts *options, logw io.Writer) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	level := cfg.LogLevel()
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger := logging.New(level, logw)

	dc := cfg.GetDeezerConfig()
	clientOpts := []deezer.Option{
		deezer.WithHTTPClient(&http.Client{Timeout: dc.Timeout()}),
		deezer.WithAccessToken(dc.AccessToken),
	}
	if dc.BaseURL != "" {
		clientOpts = append(clientOpts, deezer.WithBaseURL(dc.BaseURL))
	}
	client := deezer.NewClient(clientOpts...)

	sc := cfg.GetSearchConfig()
	pluginOpts := []plugin.Option{
		plugin.WithLogger(logger),
		plugin.WithIcon(cfg.IconPath),
		plugin.WithLimit(sc.MaxResultsPerType),
		plugin.WithConcurrent(sc.Concurrent),
	}

	media, err := mediactl.New(cfg.GetPlayerConfig().MPRISName)
	if err != nil {
		logger.Warn("media control unavailable", "err", err)
	} else {
		pluginOpts = append(pluginOpts, plugin.WithMedia(media))
	}

	logger.Debug("configured",
		"base_url", dc.BaseURL,
		"token", cfg.HasAccessToken(),
		"limit", sc.MaxResultsPerType,
		"concurrent", sc.Concurrent,
	)

	return &env{cfg: cfg, logger: logger, plugin: plugin.New(client, pluginOpts...)}, nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

// logs returns the diagnostics writer. stdout carries launcher responses.
func logs(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}
