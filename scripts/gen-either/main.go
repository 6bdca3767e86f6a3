// Command gen-either writes pkg/runtime/either_gen.go, the fixed-arity sum
// types used to render if/else chains.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
)

const (
	minArity = 2
	maxArity = 13
)

func main() {
	out := flag.String("out", "pkg/runtime/either_gen.go", "output file")
	flag.Parse()

	src, err := generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen-either: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gen-either: write %s: %v\n", *out, err)
		os.Exit(1)
	}
}

func generate() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by gen-either. DO NOT EDIT.\n\n")
	b.WriteString("package runtime\n\n")
	fmt.Fprintf(&b, "// MaxArms is the largest number of alternatives an Either type can hold.\n")
	fmt.Fprintf(&b, "const MaxArms = %d\n", maxArity)

	for n := minArity; n <= maxArity; n++ {
		writeEither(&b, n)
	}
	writeChoose(&b)

	return format.Source(b.Bytes())
}

func params(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func writeEither(b *bytes.Buffer, n int) {
	ps := params(n)
	name := fmt.Sprintf("Either%d", n)
	decl := strings.Join(ps, ", ") + " Renderable"
	inst := name + "[" + strings.Join(ps, ", ") + "]"

	fmt.Fprintf(b, "\n// %s holds exactly one of %d renderable alternatives.\n", name, n)
	fmt.Fprintf(b, "type %s[%s] struct {\n", name, decl)
	b.WriteString("index int\n")
	for _, p := range ps {
		fmt.Fprintf(b, "%s %s\n", strings.ToLower(p), p)
	}
	b.WriteString("}\n")

	for i, p := range ps {
		fmt.Fprintf(b, "\n// %sOf%d selects alternative %d.\n", name, i, i)
		fmt.Fprintf(b, "func %sOf%d[%s](v %s) %s {\n", name, i, decl, p, inst)
		fmt.Fprintf(b, "return %s{index: %d, %s: v}\n}\n", inst, i, strings.ToLower(p))
	}

	fmt.Fprintf(b, "\n// Index reports which alternative is held.\n")
	fmt.Fprintf(b, "func (e %s) Index() int { return e.index }\n", inst)

	fmt.Fprintf(b, "\nfunc (e %s) RenderTo(buf *Buffer) {\nswitch e.index {\n", inst)
	for i, p := range ps {
		fmt.Fprintf(b, "case %d:\nrenderValue(e.%s, buf)\n", i, strings.ToLower(p))
	}
	b.WriteString("}\n}\n")

	fmt.Fprintf(b, "\nfunc (e %s) SizeHint() int {\nswitch e.index {\n", inst)
	for i, p := range ps {
		fmt.Fprintf(b, "case %d:\nreturn hintValue(e.%s)\n", i, strings.ToLower(p))
	}
	b.WriteString("}\nreturn 0\n}\n")
}

func writeChoose(b *bytes.Buffer) {
	b.WriteString("\n// Choose wraps v as alternative index of an Either type with the given\n")
	b.WriteString("// number of arms. It reports false when arity or index is out of range.\n")
	b.WriteString("func Choose(arity, index int, v Renderable) (Renderable, bool) {\n")
	b.WriteString("if index < 0 || index >= arity {\nreturn nil, false\n}\n")
	b.WriteString("switch arity {\n")
	for n := minArity; n <= maxArity; n++ {
		args := strings.TrimSuffix(strings.Repeat("Renderable, ", n), ", ")
		fmt.Fprintf(b, "case %d:\nswitch index {\n", n)
		for i := 0; i < n; i++ {
			fmt.Fprintf(b, "case %d:\nreturn Either%dOf%d[%s](v), true\n", i, n, i, args)
		}
		b.WriteString("}\n")
	}
	b.WriteString("}\nreturn nil, false\n}\n")
}
