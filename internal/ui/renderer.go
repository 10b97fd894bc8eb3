package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ImSingee/go-ex/mr"
	"github.com/ImSingee/go-ex/pp"
	"github.com/charmbracelet/lipgloss"
)

type Renderer interface {
	Success(r Report)
	Error(r Report)
	Info(r Report)
}

type kind struct {
	label string
	color lipgloss.Color
}

var (
	kindSuccess = kind{"success", lipgloss.Color("2")}
	kindError   = kind{"error", lipgloss.Color("1")}
	kindInfo    = kind{"info", lipgloss.Color("8")}
)

// TerminalRenderer draws reports as bordered banners
type TerminalRenderer struct {
	w     io.Writer
	width int
}

func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{w: w, width: 80}
}

// Default renders to stdout, or stderr for errors
var Default Renderer = &streams{
	out: NewTerminalRenderer(os.Stdout),
	err: NewTerminalRenderer(os.Stderr),
}

type streams struct {
	out *TerminalRenderer
	err *TerminalRenderer
}

func (s *streams) Success(r Report) { s.out.Success(r) }
func (s *streams) Error(r Report)   { s.err.Error(r) }
func (s *streams) Info(r Report)    { s.out.Info(r) }

func (t *TerminalRenderer) Success(r Report) {
	t.render(kindSuccess, r)
}

func (t *TerminalRenderer) Error(r Report) {
	t.render(kindError, r)
}

func (t *TerminalRenderer) Info(r Report) {
	t.render(kindInfo, r)
}

func (t *TerminalRenderer) render(k kind, r Report) {
	_, _ = fmt.Fprintln(t.w, t.banner(k, r))
}

func (t *TerminalRenderer) banner(k kind, r Report) string {
	b := strings.Builder{}

	if r.Headline != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(r.Headline))
		b.WriteString("\n")
	}

	if body := Format(r.Body); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	if len(r.NextSteps) != 0 {
		b.WriteString("\nNext steps\n")
		for _, step := range r.NextSteps {
			b.WriteString("  • ")
			b.WriteString(strings.Join(mr.Map(step, func(token Token, _ int) string {
				return formatToken(token)
			}), " "))
			b.WriteString("\n")
		}
	}

	label := lipgloss.NewStyle().Foreground(k.color).Bold(true).Render(k.label)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(k.color).
		Padding(0, 1).
		Width(t.width).
		Render(label + "\n\n" + strings.TrimRight(b.String(), "\n"))
}

// Format joins tokens the way they are shown to the user
func Format(tokens []Token) string {
	return strings.Join(mr.Map(tokens, func(token Token, _ int) string {
		return formatToken(token)
	}), "")
}

func formatToken(t Token) string {
	switch {
	case t.Link != nil:
		if t.Link.Label == "" || t.Link.Label == t.Link.URL {
			return pp.BlueString(t.Link.URL).GetForStdout()
		}
		return t.Link.Label + " (" + pp.BlueString(t.Link.URL).GetForStdout() + ")"
	case t.Command != "":
		return pp.YellowString("`%s`", t.Command).GetForStdout()
	case t.Bold != "":
		return lipgloss.NewStyle().Bold(true).Render(t.Bold)
	default:
		return t.Text
	}
}
