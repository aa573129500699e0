package testutil

import (
	"context"
	"sort"
	"strings"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/manager"
)

// FakeRunner implements manager.Runner over an in-memory package database.
// It understands the list, install and mark commands issued by the pacman,
// apt and brew managers.
type FakeRunner struct {
	installed map[string]bool
	broken    map[string]bool

	// Installs records the package names of every install command.
	Installs [][]string
	// Marked records packages marked as explicitly installed.
	Marked []string
	// Unavailable makes every command fail as if the program was missing.
	Unavailable bool
}

// NewFakeRunner returns a runner with the given packages installed.
func NewFakeRunner(installed ...string) *FakeRunner {
	f := &FakeRunner{installed: map[string]bool{}, broken: map[string]bool{}}
	for _, name := range installed {
		f.installed[name] = true
	}
	return f
}

// Break makes installs of the named packages fail.
func (f *FakeRunner) Break(names ...string) {
	for _, name := range names {
		f.broken[name] = true
	}
}

// Uninstall removes packages from the database.
func (f *FakeRunner) Uninstall(names ...string) {
	for _, name := range names {
		delete(f.installed, name)
	}
}

// Installed returns the installed packages in sorted order.
func (f *FakeRunner) Installed() []string {
	names := make([]string, 0, len(f.installed))
	for name := range f.installed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Output answers list and mark commands.
func (f *FakeRunner) Output(ctx context.Context, cmd manager.Command) (string, error) {
	if f.Unavailable {
		return "", notFound(cmd)
	}
	switch verb(cmd) {
	case "-Qeq", "showmanual", "list":
		return strings.Join(f.Installed(), "\n"), nil
	case "-D", "manual":
		f.Marked = append(f.Marked, packageArgs(cmd)...)
		return "", nil
	}
	return "", errors.Newf(errors.ErrManager, "unexpected command %s", cmd)
}

// Run answers install commands. Broken packages are skipped and make the
// command fail, the rest are installed.
func (f *FakeRunner) Run(ctx context.Context, cmd manager.Command) error {
	if f.Unavailable {
		return notFound(cmd)
	}
	if v := verb(cmd); v != "-S" && v != "install" {
		return errors.Newf(errors.ErrManager, "unexpected command %s", cmd)
	}

	names := packageArgs(cmd)
	f.Installs = append(f.Installs, names)

	failed := false
	for _, name := range names {
		if f.broken[name] {
			failed = true
			continue
		}
		f.installed[name] = true
	}
	if failed {
		return errors.Newf(errors.ErrManager, "command failed: %s", cmd).
			WithDetail("exit_code", 1)
	}
	return nil
}

func verb(cmd manager.Command) string {
	if len(cmd.Args) == 0 {
		return ""
	}
	return cmd.Args[0]
}

// packageArgs returns the non-flag arguments after the verb.
func packageArgs(cmd manager.Command) []string {
	var names []string
	for i, arg := range cmd.Args {
		if i == 0 || strings.HasPrefix(arg, "-") {
			continue
		}
		names = append(names, arg)
	}
	return names
}

func notFound(cmd manager.Command) error {
	return errors.Newf(errors.ErrNotFound, "%s: executable file not found in $PATH", cmd.Name).
		WithDetail("command", cmd.String())
}
