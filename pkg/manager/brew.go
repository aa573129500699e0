package manager

import "context"

// BrewManager drives Homebrew. Homebrew never runs under sudo.
type BrewManager struct {
	Runner Runner
}

func (b *BrewManager) Kind() Kind {
	return Brew
}

// ListInstalled lists installed formulae and casks, one per line.
func (b *BrewManager) ListInstalled(ctx context.Context) ([]string, error) {
	return listOutput(ctx, b.Runner, Brew, Command{
		Name: "brew",
		Args: []string{"list", "-1"},
	})
}

func (b *BrewManager) Install(ctx context.Context, names []string) error {
	args := append([]string{"install"}, names...)
	if err := b.Runner.Run(ctx, Command{Name: "brew", Args: args}); err != nil {
		return withManager(err, Brew)
	}
	return nil
}
