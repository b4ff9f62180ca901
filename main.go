package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"fmanalyzer/app"
	"fmanalyzer/config"
	"fmanalyzer/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options carries the persistent flags and the logger they produce.
type options struct {
	debug      bool
	configPath string
	logger     *logging.Logger
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{logger: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "fmanalyzer",
		Short: "Financial metrics analyzer placeholder application",
		Long: `fmanalyzer announces the source artifacts of the financial metrics
dashboard and exits. The artifacts are never opened.

Run without arguments to print the fixed application sequence.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := app.NewRunner(app.DefaultManifest(), opts.logger.Logger)
			return runner.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: .fmanalyzer/config.yaml, then ~/.config/fmanalyzer/config.yaml)")

	rootCmd.AddCommand(newStubCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd, opts
}

// setup loads configuration and builds the logger. A broken implicit
// config falls back to defaults; an explicit --config must load.
func (o *options) setup(stderr io.Writer) error {
	var (
		cfg     *config.Config
		loadErr error
	)
	if o.configPath != "" {
		cfg, loadErr = config.LoadFromPath(o.configPath)
		if loadErr != nil {
			return loadErr
		}
	} else {
		cfg, loadErr = config.Load()
		if loadErr != nil {
			cfg = config.DefaultConfig()
		}
	}

	debug := cfg.Debug || o.debug
	logger, err := logging.New(cfg.Log, debug, stderr)
	if err != nil && o.configPath == "" && cfg.Log.File != "" {
		// Implicit log file is unusable; fall back to stderr.
		fileErr := err
		fallback := cfg.Log
		fallback.File = ""
		logger, err = logging.New(fallback, debug, stderr)
		if err == nil {
			logger.Warn("ignoring log file, logging to stderr", zap.String("file", cfg.Log.File), zap.Error(fileErr))
		}
	}
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger = logger

	if loadErr != nil {
		logger.Warn("ignoring config, using defaults", zap.Error(loadErr))
	}
	logger.Debug("logger ready", zap.String("level", cfg.Log.Level), zap.String("format", string(cfg.Log.Format)))
	return nil
}

func (o *options) close() {
	_ = o.logger.Close()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd, opts := newRootCmd()
	defer opts.close()

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
