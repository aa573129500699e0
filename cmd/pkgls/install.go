package pkgls

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
	"github.com/arthur-debert/pkgls/pkg/manager"
	"github.com/arthur-debert/pkgls/pkg/packagelist"
	"github.com/arthur-debert/pkgls/pkg/pkgset"
	"github.com/arthur-debert/pkgls/pkg/reconcile"
	"github.com/arthur-debert/pkgls/pkg/ui"
)

type installOptions struct {
	inputs   []string
	explicit bool
}

// OutcomeError is returned when an install ended with packages still
// missing. The outcome has already been printed when it is returned.
type OutcomeError struct {
	Outcome reconcile.Outcome
}

func (e *OutcomeError) Error() string {
	return e.Outcome.Message()
}

func newInstallCmd(opts *globalOptions) *cobra.Command {
	installOpts := &installOptions{}

	cmd := &cobra.Command{
		Use:     "install [packages...]",
		Aliases: []string{"add"},
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts, installOpts, args)
		},
	}

	cmd.Flags().StringArrayVarP(&installOpts.inputs, "input", "i", nil, MsgFlagInput)
	cmd.Flags().BoolVar(&installOpts.explicit, "explicit", false, MsgFlagExplicit)

	return cmd
}

func runInstall(cmd *cobra.Command, opts *globalOptions, installOpts *installOptions, args []string) error {
	logger := logging.GetLogger("install")
	defer logging.LogOperationStart(logger, "install")()

	desired, err := desiredPackages(installOpts, args)
	if err != nil {
		return err
	}

	m, err := opts.newManager()
	if err != nil {
		return err
	}
	tracker := reconcile.NewTracker(m, logger)
	if err := tracker.Initialize(cmd.Context()); err != nil {
		return err
	}

	outcome, err := reconcile.NewOrchestrator(tracker, m, logger).InstallMissing(cmd.Context(), desired)
	if err != nil {
		return err
	}

	renderer := opts.renderer(cmd)
	if !opts.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderOutcome(outcome))
	}
	if outcome.Failed() {
		return &OutcomeError{Outcome: outcome}
	}

	if installOpts.explicit && outcome.Kind == reconcile.Success {
		return markExplicit(cmd, opts, renderer, m, outcome.Attempted)
	}
	return nil
}

// desiredPackages reads the requested packages from --input files or from
// the arguments, never both.
func desiredPackages(installOpts *installOptions, args []string) (pkgset.Set, error) {
	var (
		names []string
		err   error
	)
	switch {
	case len(installOpts.inputs) > 0 && len(args) > 0:
		return pkgset.Set{}, errors.New(errors.ErrInvalidInput, MsgErrInputConflict)
	case len(installOpts.inputs) > 0:
		names, err = packagelist.FromFiles(installOpts.inputs)
	default:
		names, err = packagelist.FromArgs(args)
	}
	if err != nil {
		return pkgset.Set{}, err
	}

	desired := pkgset.Normalize(names)
	if desired.IsEmpty() {
		return pkgset.Set{}, errors.New(errors.ErrInvalidInput, MsgErrNoPackages)
	}
	return desired, nil
}

// markExplicit records newly installed packages as explicitly installed on
// managers that track install reasons.
func markExplicit(cmd *cobra.Command, opts *globalOptions, renderer *ui.Renderer, m manager.Manager, installed pkgset.Set) error {
	marker, ok := m.(manager.ExplicitMarker)
	if !ok {
		logger := logging.GetLogger("install")
		logger.Info().
			Str("manager", m.Kind().String()).
			Msg("Package manager does not track explicit installs")
		return nil
	}

	if err := marker.MarkExplicit(cmd.Context(), installed.Names()); err != nil {
		return errors.Wrap(err, errors.ErrManager, MsgErrExplicit).
			WithDetail("manager", m.Kind().String())
	}
	if !opts.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Styled(ui.StyleMuted, fmt.Sprintf(MsgMarkedExplicit, installed.Len())))
	}
	return nil
}
