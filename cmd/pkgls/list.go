package pkgls

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
	"github.com/arthur-debert/pkgls/pkg/output"
	"github.com/arthur-debert/pkgls/pkg/packagelist"
	"github.com/arthur-debert/pkgls/pkg/pkgset"
	"github.com/arthur-debert/pkgls/pkg/reconcile"
)

type listOptions struct {
	inputs []string
	force  bool
	format string
}

func newListCmd(opts *globalOptions) *cobra.Command {
	listOpts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list [output]",
		Aliases: []string{"show"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, listOpts, args...)
		},
	}

	cmd.Flags().StringArrayVarP(&listOpts.inputs, "input", "i", nil, MsgFlagExclude)
	cmd.Flags().BoolVarP(&listOpts.force, "force", "f", false, MsgFlagForce)
	cmd.Flags().StringVar(&listOpts.format, "format", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"txt", "toml", "yaml", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runList(cmd *cobra.Command, opts *globalOptions, listOpts *listOptions, args ...string) error {
	logger := logging.GetLogger("list")
	defer logging.LogOperationStart(logger, "list")()

	dest := output.Destination{Force: listOpts.force}
	if len(args) > 0 {
		dest.Path = args[0]
	}
	if dest.Force && dest.IsStdout() {
		return errors.New(errors.ErrInvalidInput, MsgErrForceNeedsOutput)
	}
	format, err := listFormat(opts, listOpts, dest)
	if err != nil {
		return err
	}
	dest.Format = format

	excluded := pkgset.Set{}
	if len(listOpts.inputs) > 0 {
		names, err := packagelist.FromFiles(listOpts.inputs)
		if err != nil {
			return err
		}
		excluded = pkgset.Normalize(names)
	}

	m, err := opts.newManager()
	if err != nil {
		return err
	}
	tracker := reconcile.NewTracker(m, logger)
	if err := tracker.Initialize(cmd.Context()); err != nil {
		return err
	}

	listed, err := reconcile.List(tracker, excluded)
	if err != nil {
		return err
	}
	logger.Info().
		Int("listed", listed.Len()).
		Int("excluded", excluded.Len()).
		Msg("Listing installed packages")

	return output.Write(cmd.OutOrStdout(), dest, listed)
}

// listFormat returns the output format from --format or, for files, the
// configuration. An empty format means the output file extension decides.
func listFormat(opts *globalOptions, listOpts *listOptions, dest output.Destination) (packagelist.Format, error) {
	if listOpts.format == "" {
		if dest.IsStdout() {
			return "", nil
		}
		if opts.cfg.Output.Format == "" {
			return "", nil
		}
		format, ok := opts.cfg.OutputFormat()
		if !ok {
			return "", errors.Newf(errors.ErrOutputFormat, MsgErrUnknownFormat, opts.cfg.Output.Format)
		}
		return format, nil
	}
	format, ok := packagelist.ParseFormat(listOpts.format)
	if !ok {
		return "", errors.Newf(errors.ErrOutputFormat, MsgErrUnknownFormat, listOpts.format)
	}
	return format, nil
}
