package pkgls

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pkgls/internal/version"
	"github.com/arthur-debert/pkgls/pkg/config"
	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
	"github.com/arthur-debert/pkgls/pkg/manager"
	"github.com/arthur-debert/pkgls/pkg/ui"
)

// Replaced in tests.
var (
	newRunner = func() manager.Runner { return manager.NewExecRunner() }
	lookPath  = manager.LookPathFunc(exec.LookPath)
)

// globalOptions holds the persistent flags and the configuration resolved
// from them before any command runs.
type globalOptions struct {
	verbosity int
	quiet     bool
	program   string
	color     bool
	noColor   bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "pkgls",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity, opts.quiet)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand lists installed packages
			return runList(cmd, opts, &listOptions{})
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "log", "l", MsgFlagLog)
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, MsgFlagQuiet)
	flags.StringVarP(&opts.program, "program", "p", "", MsgFlagProgram)
	flags.BoolVar(&opts.color, "color", false, MsgFlagColor)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.MarkFlagsMutuallyExclusive("log", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("color", "no-color")
	_ = rootCmd.RegisterFlagCompletionFunc("program", programCompletion)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load resolves the configuration with the flag overrides applied.
func (o *globalOptions) load() error {
	overrides := map[string]interface{}{}
	if o.program != "" {
		overrides[config.KeyManager] = o.program
	}
	switch {
	case o.color:
		overrides[config.KeyColor] = true
	case o.noColor:
		overrides[config.KeyColor] = false
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}
	if cfg.Styles != "" {
		if err := ui.LoadStylesFile(cfg.Styles); err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "failed to load styles").
				WithDetail("path", cfg.Styles)
		}
	}
	o.cfg = cfg
	return nil
}

// newManager resolves the configured package manager, detecting one from
// PATH when none is configured.
func (o *globalOptions) newManager() (manager.Manager, error) {
	var (
		kind manager.Kind
		err  error
	)
	if o.cfg.Manager != "" {
		kind, err = manager.ParseKind(o.cfg.Manager)
	} else {
		kind, err = manager.Detect(lookPath)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Str("manager", kind.String()).Msg("Using package manager")
	return manager.New(kind, newRunner())
}

// renderer builds a renderer for the command output.
func (o *globalOptions) renderer(cmd *cobra.Command) *ui.Renderer {
	format := ui.FormatText
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		format = ui.FormatAuto.Resolve(f, o.cfg.Color)
	}
	return ui.NewRenderer(format)
}

func programCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(manager.Kinds))
	for _, kind := range manager.Kinds {
		names = append(names, kind.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrOutputWrite, "failed to create %s", dir)
			}

			header := &doc.GenManHeader{
				Title:   "PKGLS",
				Section: "1",
				Source:  "pkgls " + version.Version,
				Manual:  "pkgls manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrOutputWrite, "failed to generate man pages")
			}
			log.Info().Str("dir", dir).Msg("Generated man pages")
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
