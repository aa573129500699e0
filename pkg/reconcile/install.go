package reconcile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pkgls/pkg/pkgset"
)

// Installer is the part of a manager the Orchestrator drives.
type Installer interface {
	Install(ctx context.Context, names []string) error
}

// Orchestrator installs missing packages and classifies the outcome
// against the Tracker's snapshot.
type Orchestrator struct {
	Tracker   *Tracker
	Installer Installer
	Logger    zerolog.Logger
}

// NewOrchestrator returns an Orchestrator for an initialized tracker.
func NewOrchestrator(tracker *Tracker, installer Installer, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{Tracker: tracker, Installer: installer, Logger: logger}
}

// InstallMissing ensures desired is installed.
//
// The manager's success is trusted without re-querying. When the manager
// reports a failure the tracker is refreshed and the outcome is derived
// from what is actually installed. The only error returned is a failed
// refresh, since without fresh data the outcome cannot be classified.
func (o *Orchestrator) InstallMissing(ctx context.Context, desired pkgset.Set) (Outcome, error) {
	logger := o.Logger.With().Str("manager", o.Tracker.Manager().String()).Logger()

	missing := pkgset.Missing(desired, o.Tracker.Current())
	if missing.IsEmpty() {
		logger.Info().Int("desired", desired.Len()).Msg("Nothing to install")
		return Outcome{Kind: NothingMissing}, nil
	}

	logger.Info().Strs("packages", missing.Names()).Msg("Installing missing packages")
	installErr := o.Installer.Install(ctx, missing.Names())
	if installErr == nil {
		return Outcome{Kind: Success, Attempted: missing}, nil
	}

	logger.Warn().Err(installErr).Msg("Package manager reported a failure, verifying installed packages")
	if err := o.Tracker.Refresh(ctx); err != nil {
		logger.Error().Err(err).Msg("Unable to verify installed packages")
		return Outcome{}, err
	}

	outcome := classify(missing, pkgset.Missing(desired, o.Tracker.Current()), installErr)
	event := logger.Warn()
	if !outcome.Failed() {
		event = logger.Info()
	}
	event.Str("outcome", outcome.Kind.String()).Strs("residual", outcome.Residual.Names()).Msg("Install reconciled")
	return outcome, nil
}

// classify derives the outcome of a failed install from the set that was
// attempted and the set still missing after a refresh.
func classify(attempted, residual pkgset.Set, installErr error) Outcome {
	outcome := Outcome{Attempted: attempted, ManagerErr: installErr}
	switch {
	case residual.IsEmpty():
		outcome.Kind = Success
	case residual.ContainsAll(attempted):
		// Nothing that was attempted landed.
		outcome.Kind = TotalFailure
		outcome.Residual = residual
	default:
		outcome.Kind = PartialFailure
		outcome.Residual = residual
	}
	return outcome
}
