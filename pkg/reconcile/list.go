package reconcile

import (
	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/pkgset"
)

// List returns the installed snapshot minus excluded. It never refreshes
// and fails with ErrPackagesNotFound when the tracker holds no snapshot.
func List(tracker *Tracker, excluded pkgset.Set) (pkgset.Set, error) {
	installed, ok := tracker.Snapshot()
	if !ok {
		return pkgset.Set{}, errors.PackagesNotFound(tracker.Manager().String())
	}
	return installed.Without(excluded), nil
}
