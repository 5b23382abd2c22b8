package diag

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/anyhandle"
	"github.com/wippyai/anyhandle/errors"
	"github.com/wippyai/anyhandle/typeid"
)

var (
	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	plainStyle = lipgloss.NewStyle()
)

// Printer writes diagnostic renderings to w.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter returns a printer for w. Output is colored only when w is a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) style(s lipgloss.Style) lipgloss.Style {
	if !p.styled {
		return plainStyle
	}
	return s
}

// Handle writes h followed by a newline.
func (p *Printer) Handle(h anyhandle.Handle) error {
	_, err := fmt.Fprintln(p.w, p.style(handleStyle).Render(FormatHandle(h)))
	return err
}

// Identity writes id followed by a newline.
func (p *Printer) Identity(id typeid.Identity) error {
	_, err := fmt.Fprintln(p.w, p.style(typeStyle).Render(FormatIdentity(id)))
	return err
}

// Error writes a cast failure followed by a newline.
func (p *Printer) Error(err error) error {
	_, werr := fmt.Fprintln(p.w, p.style(errorStyle).Render(FormatError(err)))
	return werr
}

// Registry writes the table of interned identities.
func (p *Printer) Registry() error {
	_, err := fmt.Fprintln(p.w, RenderRegistry(typeid.Entries(), p.styled))
	return err
}

// FormatHandle renders h as address(type@mutability@emptiness).
func FormatHandle(h anyhandle.Handle) string {
	return h.String()
}

// FormatIdentity renders id as type@mutability@emptiness.
func FormatIdentity(id typeid.Identity) string {
	return id.String()
}

// FormatCode renders a cast error code.
func FormatCode(k errors.Kind) string {
	return k.Message()
}

// FormatCastError renders an outcome error as { code={...} }.
func FormatCastError(e errors.CastError) string {
	return "{ code={" + FormatCode(e.Code()) + "} }"
}

// FormatError renders cast failures in their diagnostic form and any other
// error by its message.
func FormatError(err error) string {
	if err == nil {
		return "<nil>"
	}

	var raised *errors.Error
	if stderrors.As(err, &raised) {
		return raised.Error()
	}

	var outcome errors.CastError
	if stderrors.As(err, &outcome) {
		return FormatCastError(outcome)
	}

	return err.Error()
}
