package ui

import (
	"strings"

	"github.com/arthur-debert/pkgls/pkg/reconcile"
)

// Renderer formats user-facing messages. Styles are applied only for
// FormatTerminal.
type Renderer struct {
	format Format
}

// NewRenderer creates a renderer for an already resolved format.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// Format returns the format the renderer was created with.
func (r *Renderer) Format() Format {
	return r.format
}

// Styled renders text with the named style.
func (r *Renderer) Styled(name, text string) string {
	if r.format != FormatTerminal {
		return text
	}
	return Style(name).Render(text)
}

// RenderOutcome renders the summary of an install followed by the affected
// packages, one per line.
func (r *Renderer) RenderOutcome(o reconcile.Outcome) string {
	lines := []string{r.Styled(outcomeStyle(o), o.Message())}

	switch o.Kind {
	case reconcile.Success:
		for _, name := range o.Attempted.Names() {
			lines = append(lines, "  "+r.Styled(StylePackage, name))
		}
	case reconcile.PartialFailure, reconcile.TotalFailure:
		for _, name := range o.Residual.Names() {
			lines = append(lines, "  "+r.Styled(StyleMuted, name))
		}
	}
	if o.ManagerErr != nil {
		lines = append(lines, r.Styled(StyleMuted, "package manager: "+o.ManagerErr.Error()))
	}

	return strings.Join(lines, "\n")
}

// RenderError renders a fatal error.
func (r *Renderer) RenderError(err error) string {
	return r.Styled(StyleError, "Error: "+err.Error())
}

func outcomeStyle(o reconcile.Outcome) string {
	switch o.Kind {
	case reconcile.PartialFailure:
		return StyleWarning
	case reconcile.TotalFailure:
		return StyleError
	default:
		if o.Recovered() {
			return StyleWarning
		}
		return StyleSuccess
	}
}
