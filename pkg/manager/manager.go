// Package manager adapts host package managers to the two operations the
// reconciliation core needs: listing explicitly installed packages and
// installing a batch of packages.
//
// Each supported manager is a Kind. New returns the adapter for a kind and
// Detect picks the first kind whose program is found in PATH.
package manager

import (
	"context"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/pkgls/pkg/errors"
)

// Kind identifies a supported package manager.
type Kind string

const (
	Pacman Kind = "pacman"
	Apt    Kind = "apt"
	Brew   Kind = "brew"
)

// Kinds lists supported managers in detection order.
var Kinds = []Kind{Pacman, Apt, Brew}

func (k Kind) String() string {
	return string(k)
}

// Program returns the executable whose presence in PATH signals the kind.
func (k Kind) Program() string {
	switch k {
	case Apt:
		return "apt-get"
	default:
		return string(k)
	}
}

// ParseKind converts a user supplied name to a Kind. Matching is case
// insensitive.
func ParseKind(input string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(input))
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", errors.Newf(errors.ErrUnsupportedManager,
		"unsupported package manager '%s' (supported: %s)", input, kindList()).
		WithDetail("input", input)
}

func kindList() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Manager is the adapter contract consumed by the reconciliation core.
type Manager interface {
	// Kind returns the manager tag, used in error messages.
	Kind() Kind

	// ListInstalled returns explicitly installed package names. A nil slice
	// with a nil error means the manager produced no data at all, for
	// example because its program is missing.
	ListInstalled(ctx context.Context) ([]string, error)

	// Install installs names in a single invocation. Any failure reported by
	// the underlying program is returned as an ErrManager error.
	Install(ctx context.Context, names []string) error
}

// ExplicitMarker is implemented by managers that distinguish explicitly
// installed packages from dependencies.
type ExplicitMarker interface {
	MarkExplicit(ctx context.Context, names []string) error
}

// New returns the adapter for kind, running commands through runner.
func New(kind Kind, runner Runner) (Manager, error) {
	sudo := os.Geteuid() != 0
	switch kind {
	case Pacman:
		return &PacmanManager{
			Runner:      runner,
			Sudo:        sudo,
			Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		}, nil
	case Apt:
		return &AptManager{Runner: runner, Sudo: sudo}, nil
	case Brew:
		return &BrewManager{Runner: runner}, nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedManager,
			"unsupported package manager '%s' (supported: %s)", kind, kindList()).
			WithDetail("input", string(kind))
	}
}
