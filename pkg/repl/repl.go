// Package repl is an interactive loop for trying out markup: it compiles
// what the user types, shows the generated parts and renders the result
// with the values they supply.
package repl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/goliatone/go-htmlgen/pkg/codegen"
	"github.com/goliatone/go-htmlgen/pkg/escape"
	"github.com/goliatone/go-htmlgen/pkg/generate"
	"github.com/goliatone/go-htmlgen/pkg/template"
)

const typeMarkup = "Type markup"

// Option configures a Session.
type Option func(*Session)

// WithPolicy sets the escape policy templates are compiled with.
func WithPolicy(p escape.Policy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// WithFile offers the components of file as alternatives to typed markup.
func WithFile(file *codegen.File) Option {
	return func(s *Session) {
		if file != nil {
			s.components = append(s.components, file.Components...)
		}
	}
}

// Session drives one interactive run.
type Session struct {
	term       Prompter
	policy     escape.Policy
	components []*codegen.Component
}

// New returns a session prompting through term.
func New(term Prompter, opts ...Option) *Session {
	s := &Session{term: term}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run loops until the user declines to continue or aborts. Aborting is not
// an error.
func (s *Session) Run(ctx context.Context) error {
	err := s.loop(ctx)
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}

func (s *Session) loop(ctx context.Context) error {
	for {
		tpl, err := s.template(ctx)
		if err != nil {
			return err
		}
		if tpl != nil {
			if err := s.show(ctx, tpl); err != nil {
				return err
			}
		}
		again, err := s.term.YesNo(ctx, "Render another?", true)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// template returns nil without error when the markup did not compile; the
// problem has already been reported.
func (s *Session) template(ctx context.Context) (*template.Template, error) {
	if len(s.components) > 0 {
		options := []string{typeMarkup}
		for _, c := range s.components {
			options = append(options, c.Name)
		}
		idx, err := s.term.Choose(ctx, "Template", options)
		if err != nil {
			return nil, err
		}
		if idx > 0 {
			c := s.components[idx-1]
			tpl, err := template.FromNodes(c.Body, template.WithName(c.Name), template.WithPolicy(s.policy))
			return s.report(ctx, tpl, err)
		}
	}

	src, err := s.term.Markup(ctx, Question{
		Message: "Markup",
		Help:    `e.g. p { class = "note", "Hello " name }`,
		Check: func(src string) error {
			_, err := template.Compile(src, template.WithPolicy(s.policy))
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	tpl, err := template.Compile(src, template.WithPolicy(s.policy))
	return s.report(ctx, tpl, err)
}

func (s *Session) report(ctx context.Context, tpl *template.Template, err error) (*template.Template, error) {
	if err == nil {
		return tpl, nil
	}
	if printErr := s.term.Print(ctx, "error: "+err.Error()); printErr != nil {
		return nil, printErr
	}
	return nil, nil
}

func (s *Session) show(ctx context.Context, tpl *template.Template) error {
	var values map[string]any
	if _, static := tpl.Static(); !static {
		line, err := s.term.Line(ctx, Question{
			Message: "Values",
			Help:    `space separated key=value pairs, e.g. name=Ada count=3 "title=Hello there"`,
			Check: func(line string) error {
				_, err := ParseValues(line)
				return err
			},
		})
		if err != nil {
			return err
		}
		if values, err = ParseValues(line); err != nil {
			return s.term.Print(ctx, "error: "+err.Error())
		}
	}

	if err := s.term.Print(ctx, "parts:\n"+strings.TrimRight(generate.Describe(tpl.Parts()), "\n")); err != nil {
		return err
	}
	return s.term.Print(ctx, "html:\n"+tpl.Render(values))
}

// ParseValues reads shell-quoted key=value pairs. Values that parse as a
// bool, integer or float take that type; everything else stays a string.
func ParseValues(line string) (map[string]any, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("repl: values: %w", err)
	}
	values := make(map[string]any, len(words))
	for _, word := range words {
		key, raw, ok := strings.Cut(word, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("repl: values: %q is not key=value", word)
		}
		values[key] = typed(raw)
	}
	return values, nil
}

func typed(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && strings.ContainsAny(raw[:1], "+-.0123456789") {
		return f
	}
	return raw
}
