package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/codegen-labs/codegen/internal/ai"
	"github.com/codegen-labs/codegen/internal/branding"
	"github.com/codegen-labs/codegen/internal/config"
	"github.com/codegen-labs/codegen/internal/console"
	"github.com/codegen-labs/codegen/internal/interaction"
	"github.com/codegen-labs/codegen/internal/logging"
	"github.com/codegen-labs/codegen/internal/release"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	root     string
	endpoint string
	verbose  bool
	noColor  bool
	logJSON  bool
}

// app carries build info, I/O streams and per-run state for one command tree.
type app struct {
	version string
	commit  string
	date    string

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	opts    globalOptions
	logger  *zap.Logger
	console *console.Console

	// Overridable in tests.
	prompter   interaction.Prompter
	httpClient *http.Client
	releaseOps []release.Option
}

func newApp(version, commit, date string, in io.Reader, out, errOut io.Writer) *app {
	return &app{
		version: version,
		commit:  commit,
		date:    date,
		in:      in,
		out:     out,
		errOut:  errOut,
		logger:  zap.NewNop(),
		console: console.New(out, errOut, false),
	}
}

// skipsBanner lists commands that print machine-readable or config output.
var skipsBanner = map[string]bool{
	"version": true,
	"config":  true,
	"get":     true,
	"set":     true,
	"list":    true,
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds React components, hooks and CRUD services under src/.
Code is generated by a remote service and falls back to built-in templates
when the service is unavailable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			if f := cmd.Flags().Lookup("endpoint"); f != nil && f.Changed {
				viper.Set(config.KeyEndpoint, a.opts.endpoint)
			}

			if err := a.initLogger(); err != nil {
				return err
			}
			a.console = console.New(a.out, a.errOut, a.colorEnabled())

			if !skipsBanner[cmd.Name()] {
				a.releaseChecker().PrintBanner(a.errOut, config.Dir())
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if !skipsBanner[cmd.Name()] {
				a.releaseChecker().Refresh(cmd.Context(), config.Dir())
			}
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.root, "root", "", "project directory to write into (default: current directory)")
	pf.StringVar(&a.opts.endpoint, "endpoint", "", "generation service URL (overrides config)")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.opts.noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&a.opts.logJSON, "log-json", false, "write logs as JSON")

	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(
		newComponentCmd(a),
		newHookCmd(a),
		newCRUDCmd(a),
		newDoctorCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) initLogger() error {
	if a.opts.logJSON {
		l, err := logging.FromConfig(a.opts.verbose)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		a.logger = l
		return nil
	}
	a.logger = logging.New(a.errOut, a.opts.verbose)
	return nil
}

func (a *app) colorEnabled() bool {
	if a.opts.noColor || config.NoColor() {
		return false
	}
	f, ok := a.out.(*os.File)
	return ok && interaction.IsTerminal(f)
}

func (a *app) releaseChecker() *release.Checker {
	opts := append([]release.Option{release.WithLogger(a.logger)}, a.releaseOps...)
	return release.New(a.version, opts...)
}

func (a *app) getPrompter() interaction.Prompter {
	if a.prompter != nil {
		return a.prompter
	}
	return interaction.Default(a.in, a.errOut)
}

func (a *app) newClient() *ai.Client {
	hc := a.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: config.Timeout()}
	}
	return ai.New(
		ai.WithEndpoint(config.Endpoint()),
		ai.WithHTTPClient(hc),
		ai.WithLogger(a.logger),
		ai.WithUserAgent(fmt.Sprintf("%s/%s", branding.CLIName(), a.version)),
	)
}

// outputRoot resolves --root, defaulting to the working directory.
func (a *app) outputRoot() (string, error) {
	if a.opts.root != "" {
		return a.opts.root, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return wd, nil
}

// run executes the command tree and reports any error on stderr.
func (a *app) run(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		a.console.Error(err.Error())
	}
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(version, commit, date, os.Stdin, os.Stdout, os.Stderr)
	return a.run(ctx, os.Args[1:])
}
