package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gocalc/internal/config"
	"gocalc/internal/eval"
	"gocalc/internal/ui"
)

type flags struct {
	configPath string
	theme      string
	precision  uint32
	logLevel   string
	logDir     string
	journal    bool
	noTape     bool
}

// NewCommand returns the gocalc root command.
func NewCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "gocalc",
		Short: "A keypad calculator for the terminal",
		Long: `gocalc shows a display and a keypad. Type or click digits and operators,
press enter or = to evaluate and c to clear.

When stdin is not a terminal every input line is replayed as key presses
and the display is printed after each line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := f.newApp(cmd.Flags())
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	f.register(cmd.PersistentFlags())

	cmd.AddCommand(&cobra.Command{
		Use:     "eval EXPR...",
		Short:   "Evaluate expressions and print their results",
		Example: `  gocalc eval "2+3*4" "7/2"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.newApp(cmd.Flags())
			if err != nil {
				return err
			}
			defer a.Close()
			return a.EvalArgs(args, cmd.OutOrStdout())
		},
	})

	return cmd
}

func (f *flags) register(fs *pflag.FlagSet) {
	defaults := config.Default()
	fs.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&f.theme, "theme", defaults.Theme, "color theme ("+strings.Join(ui.ThemeNames(), ", ")+")")
	fs.Uint32Var(&f.precision, "precision", eval.DefaultPrecision, "significant digits kept in results")
	fs.StringVar(&f.logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&f.logDir, "log-dir", defaults.LogDir, "directory for log files, empty to disable")
	fs.BoolVar(&f.journal, "journal", false, "also log to the systemd journal")
	fs.BoolVar(&f.noTape, "no-tape", false, "hide the calculation tape on start")
}

// resolve loads the config file and applies every flag set on the command line.
func (f *flags) resolve(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if fs.Changed("theme") {
		cfg.Theme = f.theme
	}
	if fs.Changed("precision") {
		cfg.Precision = f.precision
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("log-dir") {
		cfg.LogDir = f.logDir
	}
	if fs.Changed("journal") {
		cfg.Journal = f.journal
	}
	if fs.Changed("no-tape") {
		cfg.Tape = !f.noTape
	}
	return cfg, nil
}

func (f *flags) newApp(fs *pflag.FlagSet) (*App, error) {
	cfg, err := f.resolve(fs)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}
