package manager

import "context"

// PacmanManager drives pacman on Arch Linux.
//
// Docs: https://wiki.archlinux.org/title/Pacman
type PacmanManager struct {
	Runner Runner
	Sudo   bool
	// Interactive leaves confirmation prompts to the user. When false,
	// --noconfirm is passed.
	Interactive bool
}

func (p *PacmanManager) Kind() Kind {
	return Pacman
}

// ListInstalled lists explicitly installed packages (pacman -Qeq).
func (p *PacmanManager) ListInstalled(ctx context.Context) ([]string, error) {
	return listOutput(ctx, p.Runner, Pacman, Command{
		Name: "pacman",
		Args: []string{"-Qeq"},
	})
}

func (p *PacmanManager) Install(ctx context.Context, names []string) error {
	args := []string{"-S", "--needed"}
	if !p.Interactive {
		args = append(args, "--noconfirm")
	}
	args = append(args, names...)

	err := p.Runner.Run(ctx, Command{Name: "pacman", Args: args, Sudo: p.Sudo})
	if err != nil {
		return withManager(err, Pacman)
	}
	return nil
}

// MarkExplicit marks names as explicitly installed so they show up in
// ListInstalled even if they were already present as dependencies.
func (p *PacmanManager) MarkExplicit(ctx context.Context, names []string) error {
	args := append([]string{"-D", "--asexplicit"}, names...)
	_, err := p.Runner.Output(ctx, Command{Name: "pacman", Args: args, Sudo: p.Sudo})
	if err != nil {
		return withManager(err, Pacman)
	}
	return nil
}

var _ ExplicitMarker = (*PacmanManager)(nil)
