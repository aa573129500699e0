package reconcile

import (
	"fmt"

	"github.com/arthur-debert/pkgls/pkg/pkgset"
)

// OutcomeKind classifies the result of an install attempt.
type OutcomeKind int

const (
	// NothingMissing means every desired package was already installed.
	NothingMissing OutcomeKind = iota
	// Success means every desired package is installed after the attempt.
	Success
	// PartialFailure means some, but not all, missing packages landed.
	PartialFailure
	// TotalFailure means none of the missing packages landed.
	TotalFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case NothingMissing:
		return "nothing-missing"
	case Success:
		return "success"
	case PartialFailure:
		return "partial-failure"
	case TotalFailure:
		return "total-failure"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of InstallMissing. Failures are carried as
// data so callers can report the residual list.
type Outcome struct {
	Kind OutcomeKind
	// Attempted is the set passed to the manager. Empty for NothingMissing.
	Attempted pkgset.Set
	// Residual holds the packages still missing after a PartialFailure or
	// TotalFailure.
	Residual pkgset.Set
	// ManagerErr is the error the manager reported, if any. It is set for
	// failures and for a Success that was recovered by re-verification.
	ManagerErr error
}

// Failed reports whether the outcome should map to a non-zero exit status.
func (o Outcome) Failed() bool {
	return o.Kind == PartialFailure || o.Kind == TotalFailure
}

// Recovered reports whether the manager reported an error that observed
// state proved harmless.
func (o Outcome) Recovered() bool {
	return o.Kind == Success && o.ManagerErr != nil
}

// Message returns a one-line user facing summary.
func (o Outcome) Message() string {
	switch o.Kind {
	case NothingMissing:
		return "All packages are already installed"
	case Success:
		if o.Recovered() {
			return fmt.Sprintf("Installed %d package(s) despite errors reported by the package manager", o.Attempted.Len())
		}
		return fmt.Sprintf("Installed %d package(s)", o.Attempted.Len())
	case PartialFailure:
		return fmt.Sprintf("Failed to install %d of %d package(s): %s",
			o.Residual.Len(), o.Attempted.Len(), o.Residual.Join(", "))
	case TotalFailure:
		return "Installation cancelled, no packages were installed"
	default:
		return o.Kind.String()
	}
}
