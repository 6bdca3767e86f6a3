package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted reports a prompt interrupted with ctrl-c.
var ErrAborted = errors.New("repl: aborted")

// Question is a free-text prompt. Check, when set, must accept the answer
// before the prompt returns.
type Question struct {
	Message string
	Help    string
	Check   func(string) error
}

// Prompter is everything a Session needs from the terminal.
type Prompter interface {
	// Line asks for one line of text.
	Line(ctx context.Context, q Question) (string, error)
	// Markup asks for text that may span several lines.
	Markup(ctx context.Context, q Question) (string, error)
	// Choose returns the index of the picked option.
	Choose(ctx context.Context, message string, options []string) (int, error)
	YesNo(ctx context.Context, message string, def bool) (bool, error)
	Print(ctx context.Context, msg string) error
}

// Terminal prompts with survey and prints to out.
type Terminal struct {
	out io.Writer
}

// NewTerminal returns a Terminal printing to out, or stdout when out is nil.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{out: out}
}

func (t *Terminal) Line(ctx context.Context, q Question) (string, error) {
	var answer string
	err := ask(ctx, &survey.Input{Message: q.Message, Help: q.Help}, &answer, q.Check)
	return answer, err
}

func (t *Terminal) Markup(ctx context.Context, q Question) (string, error) {
	var answer string
	err := ask(ctx, &survey.Multiline{Message: q.Message, Help: q.Help}, &answer, q.Check)
	return answer, err
}

func (t *Terminal) Choose(ctx context.Context, message string, options []string) (int, error) {
	var picked string
	if err := ask(ctx, &survey.Select{Message: message, Options: options}, &picked, nil); err != nil {
		return 0, err
	}
	return slices.Index(options, picked), nil
}

func (t *Terminal) YesNo(ctx context.Context, message string, def bool) (bool, error) {
	var yes bool
	err := ask(ctx, &survey.Confirm{Message: message, Default: def}, &yes, nil)
	return yes, err
}

func (t *Terminal) Print(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.out, msg)
	return err
}

// ask runs one survey prompt. Survey blocks on the terminal and cannot be
// cancelled, so the context is only checked before asking.
func ask(ctx context.Context, p survey.Prompt, answer any, check func(string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var opts []survey.AskOpt
	if check != nil {
		opts = append(opts, survey.WithValidator(func(v any) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("expected text, got %T", v)
			}
			return check(s)
		}))
	}
	err := survey.AskOne(p, answer, opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
