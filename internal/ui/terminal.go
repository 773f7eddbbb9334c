package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type terminalUI struct {
	out    io.Writer
	errOut io.Writer

	outStyles styles
	errStyles styles
}

func NewTerminal() Interface {
	return newTerminal(os.Stdout, os.Stderr)
}

// newTerminal crée un renderer par flux : la détection des couleurs dépend
// de la sortie réelle (un pipe ou un fichier n'a pas de couleurs).
func newTerminal(out, errOut io.Writer) *terminalUI {
	return &terminalUI{
		out:       out,
		errOut:    errOut,
		outStyles: newStyles(lipgloss.NewRenderer(out)),
		errStyles: newStyles(lipgloss.NewRenderer(errOut)),
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, t.outStyles.info.Render(s))
}

func (t *terminalUI) PrintWarning(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, t.errStyles.warning.Render("⚠️  "+s))
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, t.errStyles.err.Render("❌ "+s))
}

func (t *terminalUI) PrintCommand(ctx context.Context, cmd string) {
	fmt.Fprintln(t.out, t.outStyles.command.Render("$ "+cmd))
}

func (t *terminalUI) PrintSkip(ctx context.Context, path string) {
	fmt.Fprintln(t.out, t.outStyles.skip.Render("déjà présent, ignoré : "+path))
}
