package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/listmanager/internal/config"
	"github.com/idilsaglam/listmanager/internal/logging"
	"github.com/idilsaglam/listmanager/internal/model"
	"github.com/idilsaglam/listmanager/internal/store"
	"github.com/idilsaglam/listmanager/internal/tracing"
	"github.com/idilsaglam/listmanager/internal/tui"
	"github.com/idilsaglam/listmanager/internal/ui"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// Exit codes: 0 ok, 1 runtime error, 2 usage or validation error.
const (
	codeOK      = 0
	codeRuntime = 1
	codeUsage   = 2
)

// codeError carries an exit code out of a command. A nil err means the
// command already reported what went wrong.
type codeError struct {
	code int
	err  error
}

func (e *codeError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *codeError) Unwrap() error { return e.err }

func usageErr(format string, a ...any) error {
	return &codeError{code: codeUsage, err: fmt.Errorf(format, a...)}
}

// app holds state shared by every subcommand of one invocation.
type app struct {
	configFile string
	theme      string
	seed       string

	cfg config.Config
	log *zap.Logger
}

// Execute runs the CLI with os args and returns the process exit code.
func Execute(args []string) int {
	return run(context.Background(), args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{log: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	_ = a.log.Sync()
	if err == nil {
		return codeOK
	}

	var ce *codeError
	if errors.As(err, &ce) {
		if ce.err != nil {
			ui.Fail(stderr, ce.err.Error())
		}
		return ce.code
	}
	ui.Fail(stderr, err.Error())
	return codeRuntime
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "listmanager",
		Short: "Manage a list of titled items in the terminal",
		Long: `listmanager keeps a list of titled items in memory and lets you
create, edit and delete them from an interactive terminal screen.

Nothing is written to disk: the list lives only as long as the process.
A seed file (--seed) can preload items at startup.`,
		Version:           Version,
		Args:              noArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &codeError{code: codeUsage, err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/listmanager/config.yaml or ./config.yaml)")
	pf.StringVar(&a.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&a.seed, "seed", "", "JSON or YAML file with items to preload")

	root.AddCommand(a.lsCmd(), a.validateCmd(), a.versionCmd())
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErr("unknown subcommand: %s (see %s --help)", args[0], cmd.CommandPath())
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErr("usage: %s", cmd.UseLine())
		}
		return nil
	}
}

// setup loads config and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v := config.New(a.configFile)
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(config.KeyTheme, flags.Lookup("theme")); err != nil {
		return err
	}
	if err := v.BindPFlag(config.KeySeed, flags.Lookup("seed")); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logger.With(zap.String("command", cmd.Name()))
	a.log.Debug("config loaded", zap.String("config_file", v.ConfigFileUsed()))
	return nil
}

// loadSeed returns the configured seed items, or none when no seed is set.
func (a *app) loadSeed() ([]model.Item, error) {
	if a.cfg.Seed == "" {
		return nil, nil
	}
	items, err := store.LoadFixture(a.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	a.log.Info("seed loaded", zap.String("path", a.cfg.Seed), zap.Int("count", len(items)))
	return items, nil
}

func (a *app) newStore(latency store.Latency) *store.Store {
	return store.New(store.WithLatency(latency), store.WithLogger(a.log.Named("store")))
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	seed, err := a.loadSeed()
	if err != nil {
		return err
	}

	tc := tracing.DefaultConfig("listmanager", Version)
	tc.OTLPEndpoint = a.cfg.TracingEndpoint
	tc.SampleRatio = a.cfg.TracingSampleRatio
	tc.Environment = a.cfg.TracingEnvironment
	shutdown, err := tracing.Setup(ctx, tc, a.log)
	if err != nil {
		return err
	}
	defer func() { _ = tracing.Shutdown(shutdown, a.log) }()

	s := a.newStore(store.Latency{
		Load:   a.cfg.LoadDelay,
		Add:    a.cfg.AddDelay,
		Edit:   a.cfg.EditDelay,
		Delete: a.cfg.DeleteDelay,
	})
	return tui.Run(ctx, s, tui.Options{
		Seed:              seed,
		ToastLifetime:     a.cfg.ToastLifetime,
		HighlightLifetime: a.cfg.HighlightLifetime,
		Logger:            a.log.Named("tui"),
	})
}
