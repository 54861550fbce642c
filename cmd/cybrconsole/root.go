package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"cybrconsole/actions"
	"cybrconsole/internal/config"
	"cybrconsole/internal/logging"
	"cybrconsole/internal/tui"
	"cybrconsole/workflow"
)

// app is the state shared by every subcommand, set up in PersistentPreRunE.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	console *tui.Console
	fs      afero.Fs
}

var (
	cfgFile   string
	logLevel  string
	logFormat string

	state = &app{fs: afero.NewOsFs()}
)

var rootCmd = &cobra.Command{
	Use:   "cybrconsole",
	Short: "CybrConsole runs multi-step workflows with a rich terminal display",
	Long: `CybrConsole runs named workflows made of ordered phases and actions.
Each phase is announced, each action reports its progress, and the first
failure stops the run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return state.init(cmd)
	},
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = logFormat
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.console = tui.NewConsole(cmd.OutOrStdout(),
		tui.WithProgress(cfg.Progress.Interval, cfg.Progress.MaxStep),
		tui.WithPlainProgress(cfg.Progress.Plain),
	)
	return nil
}

// newManager builds a manager holding the builtin workflows.
func (a *app) newManager(opts ...workflow.Option) (*workflow.Manager, *actions.Catalog, error) {
	catalog := actions.NewCatalog()
	actions.NewLibrary(a.fs, a.cfg.Demo.Pause).Register(catalog)

	opts = append([]workflow.Option{
		workflow.WithReporter(a.console),
		workflow.WithLogger(a.logger),
	}, opts...)
	m := workflow.NewManager(opts...)

	err := actions.DefineExamples(m, catalog, actions.ExampleParams{
		Workdir:   a.cfg.Demo.Workdir,
		InputFile: a.cfg.Demo.InputFile,
		Email:     a.cfg.Demo.Email,
	})
	if err != nil {
		return nil, nil, err
	}
	return m, catalog, nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if state.console != nil {
			state.console.Failure(err.Error())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./cybrconsole.yaml or $HOME/cybrconsole.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}
