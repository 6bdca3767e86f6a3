package escape

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
)

func TestStringReplacesSpecialCharacters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "hello world", want: "hello world"},
		{name: "script", input: "<script>", want: "&lt;script&gt;"},
		{name: "ampersand", input: "fish & chips", want: "fish &amp; chips"},
		{name: "quotes", input: `say "hi"`, want: "say &quot;hi&quot;"},
		{name: "single quote untouched", input: "it's", want: "it's"},
		{name: "unicode", input: "héllo <wörld>", want: "héllo &lt;wörld&gt;"},
		{name: "already escaped", input: "&amp;", want: "&amp;amp;"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, String(tc.input)); diff != "" {
				t.Fatalf("escape mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStrictPolicyEscapesSingleQuote(t *testing.T) {
	got := Strict.Escape(`it's "fine"`)
	want := "it&#39;s &quot;fine&quot;"
	if got != want {
		t.Fatalf("strict escape: want %q, got %q", want, got)
	}
	if Default.Needs("it's") {
		t.Fatalf("default policy should not flag single quotes")
	}
	if !Strict.Needs("it's") {
		t.Fatalf("strict policy should flag single quotes")
	}
}

func TestEscapeIsIdentityOnSafeInput(t *testing.T) {
	safe := func(s string) bool {
		s = strings.Map(func(r rune) rune {
			switch r {
			case '&', '<', '>', '"':
				return -1
			}
			return r
		}, s)
		return String(s) == s
	}
	if err := quick.Check(safe, nil); err != nil {
		t.Fatalf("escape changed safe input: %v", err)
	}
}

func TestEscapeLeavesNoRawSpecials(t *testing.T) {
	total := func(s string) bool {
		out := String(s)
		if strings.ContainsAny(out, `<>"`) {
			return false
		}
		// every ampersand must start one of the substituted entities
		for i := 0; i < len(out); i++ {
			if out[i] != '&' {
				continue
			}
			rest := out[i:]
			if !strings.HasPrefix(rest, "&amp;") && !strings.HasPrefix(rest, "&lt;") &&
				!strings.HasPrefix(rest, "&gt;") && !strings.HasPrefix(rest, "&quot;") {
				return false
			}
		}
		return true
	}
	if err := quick.Check(total, nil); err != nil {
		t.Fatalf("escape left raw special characters: %v", err)
	}
}

func TestIntoAppendsToExistingBuffer(t *testing.T) {
	buf := []byte("<p>")
	buf = Into(buf, "a < b")
	buf = append(buf, "</p>"...)
	if got := string(buf); got != "<p>a &lt; b</p>" {
		t.Fatalf("unexpected buffer %q", got)
	}
}

func TestRuneInto(t *testing.T) {
	var buf []byte
	buf = Default.RuneInto(buf, '<')
	buf = Default.RuneInto(buf, 'é')
	buf = Strict.RuneInto(buf, '\'')
	if got := string(buf); got != "&lt;é&#39;" {
		t.Fatalf("unexpected rune output %q", got)
	}
}

func TestParsePolicy(t *testing.T) {
	if ParsePolicy(" Strict ") != Strict {
		t.Fatalf("expected strict policy")
	}
	if ParsePolicy("bogus") != Default {
		t.Fatalf("expected default policy for unknown values")
	}
	if Strict.String() != "strict" || Default.String() != "default" {
		t.Fatalf("unexpected policy names")
	}
}
