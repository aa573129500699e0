package manager

import "context"

// AptManager drives apt on Debian based systems.
type AptManager struct {
	Runner Runner
	Sudo   bool
}

func (a *AptManager) Kind() Kind {
	return Apt
}

// ListInstalled lists manually installed packages (apt-mark showmanual).
func (a *AptManager) ListInstalled(ctx context.Context) ([]string, error) {
	return listOutput(ctx, a.Runner, Apt, Command{
		Name: "apt-mark",
		Args: []string{"showmanual"},
	})
}

func (a *AptManager) Install(ctx context.Context, names []string) error {
	args := append([]string{"install", "-y"}, names...)
	err := a.Runner.Run(ctx, Command{
		Name: "apt-get",
		Args: args,
		Sudo: a.Sudo,
		Env:  []string{"DEBIAN_FRONTEND=noninteractive"},
	})
	if err != nil {
		return withManager(err, Apt)
	}
	return nil
}

// MarkExplicit marks names as manually installed (apt-mark manual).
func (a *AptManager) MarkExplicit(ctx context.Context, names []string) error {
	args := append([]string{"manual"}, names...)
	_, err := a.Runner.Output(ctx, Command{Name: "apt-mark", Args: args, Sudo: a.Sudo})
	if err != nil {
		return withManager(err, Apt)
	}
	return nil
}

var _ ExplicitMarker = (*AptManager)(nil)
