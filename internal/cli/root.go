// Package cli implements the earning-formula command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/earning-formula/internal/app"
	"github.com/iwvelando/earning-formula/internal/config"
	"github.com/iwvelando/earning-formula/pkg/constants"
	"github.com/iwvelando/earning-formula/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Options customises a run of the command tree.
type Options struct {
	Version string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// session carries the flags and the wired application of one invocation.
type session struct {
	opts Options

	configPath   string
	logLevel     string
	outputFormat string

	app     *app.App
	cleanup func()
}

// Execute runs the command line of the current process and returns the exit
// code.
func Execute(version string) int {
	err := Run(context.Background(), os.Args[1:], Options{Version: version})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// Run executes args against a fresh command tree.
func Run(ctx context.Context, args []string, opts Options) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	s := &session{opts: opts}
	defer s.close()

	root := s.rootCommand()
	root.SetArgs(args)
	root.SetIn(opts.Stdin)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	return root.ExecuteContext(ctx)
}

func (s *session) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "earning-formula",
		Short: "Earning Formula – hourly rate calculator for several jobs",
		Long: `earning-formula derives weekly and monthly hours, hourly rates and the
weekday/weekend split from the salary and schedule of each of your jobs.
Job sets can be saved as named configurations, exported and imported.`,
		Version:           s.opts.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.bootstrap,
	}

	root.PersistentFlags().StringVar(&s.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&s.outputFormat, "output", "o", "", "output format override: pretty, csv, json, yaml")

	root.AddCommand(
		s.summaryCommand(),
		s.jobCommand(),
		s.configCommand(),
		s.currencyCommand(),
		s.languageCommand(),
		s.serveCommand(),
	)
	return root
}

// bootstrap loads the configuration, builds the logger and wires the
// manager before any subcommand runs.
func (s *session) bootstrap(cmd *cobra.Command, args []string) error {
	envErr := godotenv.Load()

	conf, err := config.LoadConfiguration(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", s.configPath, err)
	}

	// CLI override takes precedence over config
	if s.outputFormat == "" {
		s.outputFormat = conf.Output.Format
	}
	s.outputFormat = strings.ToLower(strings.TrimSpace(s.outputFormat))
	if err := validation.ValidateOutputFormat(s.outputFormat); err != nil {
		return err
	}

	logger, err := app.NewLogger(conf.Logging, s.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("failed to load .env file",
			zap.String("op", "cli.bootstrap"),
			zap.Error(envErr),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "cli.bootstrap"),
		)
	}

	a, cleanup, err := app.Initialize(cmd.Context(), conf, logger)
	if err != nil {
		_ = logger.Sync()
		return fmt.Errorf("failed to open storage: %w", err)
	}
	s.app = a
	s.cleanup = cleanup

	return a.Manager.Start(cmd.Context())
}

func (s *session) close() {
	if s.cleanup != nil {
		s.cleanup()
	}
	if s.app != nil {
		_ = s.app.Logger.Sync()
	}
}

func (s *session) out() io.Writer {
	return s.opts.Stdout
}
