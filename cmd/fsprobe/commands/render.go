package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/nymag/nymag-fs/internal/ui/output"
	"github.com/nymag/nymag-fs/internal/ui/style"
)

type printer struct {
	w       io.Writer
	present lipgloss.Style
	absent  lipgloss.Style
	faint   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())

	return &printer{
		w:       w,
		present: r.NewStyle().Foreground(style.Green),
		absent:  r.NewStyle().Foreground(style.Red),
		faint:   r.NewStyle().Foreground(style.Mist),
	}
}

func (p *printer) line(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *printer) raw(s string) {
	_, _ = io.WriteString(p.w, s)
}

func (p *printer) bool(v bool) {
	if v {
		p.line(p.present.Render(style.Check + " true"))
		return
	}
	p.line(p.absent.Render(style.Cross + " false"))
}

func (p *printer) lines(items []string) {
	for _, item := range items {
		p.line(item)
	}
}

func (p *printer) muted(s string) {
	p.line(p.faint.Render(s))
}
