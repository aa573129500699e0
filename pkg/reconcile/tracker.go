package reconcile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
	"github.com/arthur-debert/pkgls/pkg/manager"
	"github.com/arthur-debert/pkgls/pkg/pkgset"
)

// Lister is the part of a manager the Tracker needs.
type Lister interface {
	Kind() manager.Kind
	ListInstalled(ctx context.Context) ([]string, error)
}

// Tracker owns the last known installed set for one manager. The snapshot
// only changes through Initialize or Refresh, and always wholesale.
type Tracker struct {
	lister   Lister
	logger   zerolog.Logger
	snapshot pkgset.Set
	loaded   bool
}

// NewTracker returns a Tracker for lister. It holds no snapshot until
// Initialize succeeds.
func NewTracker(lister Lister, logger zerolog.Logger) *Tracker {
	return &Tracker{lister: lister, logger: logger}
}

// Manager returns the kind of the tracked manager.
func (t *Tracker) Manager() manager.Kind {
	return t.lister.Kind()
}

// Initialize takes the first snapshot. An empty or absent listing fails
// with ErrPackagesNotFound: it almost always means the manager could not be
// queried, not that nothing is installed.
func (t *Tracker) Initialize(ctx context.Context) error {
	return t.load(ctx, "initialize")
}

// Refresh replaces the snapshot with a fresh query. On failure the previous
// snapshot is kept and the error returned.
func (t *Tracker) Refresh(ctx context.Context) error {
	return t.load(ctx, "refresh")
}

func (t *Tracker) load(ctx context.Context, operation string) error {
	done := logging.LogOperationStart(t.logger, operation)
	defer done()

	kind := t.lister.Kind()
	names, err := t.lister.ListInstalled(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return errors.PackagesNotFound(kind.String())
	}

	t.snapshot = pkgset.Normalize(names)
	t.loaded = true
	t.logger.Debug().
		Str("manager", kind.String()).
		Int("installed", t.snapshot.Len()).
		Msg("Installed snapshot loaded")
	return nil
}

// Current returns the snapshot. It panics when called before a successful
// Initialize.
func (t *Tracker) Current() pkgset.Set {
	if !t.loaded {
		panic("reconcile: Tracker.Current called before Initialize")
	}
	return t.snapshot
}

// Snapshot returns the snapshot and whether one has been loaded.
func (t *Tracker) Snapshot() (pkgset.Set, bool) {
	return t.snapshot, t.loaded
}
