package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/pkgls/cmd/pkgls"
	"github.com/arthur-debert/pkgls/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := pkgls.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Failed installs have already been reported
		var outcomeErr *pkgls.OutcomeError
		if !errors.As(err, &outcomeErr) {
			format := ui.FormatAuto.Resolve(os.Stderr, os.Getenv("NO_COLOR") == "")
			fmt.Fprintln(os.Stderr, ui.NewRenderer(format).RenderError(err))
		}
		stop()
		os.Exit(1)
	}
}
