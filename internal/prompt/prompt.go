// Package prompt abstracts interactive yes/no confirmations so commands
// can be driven by a real terminal, plain stdin, or a deterministic test
// double.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Confirmer answers yes/no questions.
type Confirmer interface {
	// Confirm asks the user a question. def is the answer used when the
	// user just presses Enter. A terminal abort counts as "no".
	Confirm(title, description string, def bool) (bool, error)
}

// Func adapts a function to the Confirmer interface.
type Func func(title, description string, def bool) (bool, error)

// Confirm implements Confirmer.
func (f Func) Confirm(title, description string, def bool) (bool, error) {
	return f(title, description, def)
}

// Auto returns a Confirmer that answers every question with v.
func Auto(v bool) Confirmer {
	return Func(func(string, string, bool) (bool, error) {
		return v, nil
	})
}

// NewTUI returns a Confirmer backed by an interactive form.
func NewTUI() Confirmer {
	return tuiConfirmer{}
}

type tuiConfirmer struct{}

func (tuiConfirmer) Confirm(title, description string, def bool) (bool, error) {
	v := def
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&v),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("form error: %w", err)
	}
	return v, nil
}

// NewPlain returns a Confirmer reading y/N answers from in, for scripted
// use without a TUI.
func NewPlain(in io.Reader, out io.Writer) Confirmer {
	return &plainConfirmer{in: bufio.NewReader(in), out: out}
}

type plainConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *plainConfirmer) Confirm(title, description string, def bool) (bool, error) {
	if description != "" {
		fmt.Fprintln(p.out, description)
	}
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", title, hint)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		// EOF with no answer: take the default.
		return def, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
