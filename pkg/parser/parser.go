package parser

import (
	"errors"
	"fmt"
	"go/token"
	"math/big"
	"strconv"
	"strings"

	"github.com/goliatone/go-htmlgen/pkg/ast"
	"github.com/goliatone/go-htmlgen/pkg/known"
)

// MaxArms is the largest number of arms an if/else chain may have, counting
// the synthesised else of a chain written without one.
const MaxArms = 13

// Option configures a parse.
type Option func(*parser)

// WithBase sets the position of the first byte of the source, so errors in a
// template embedded in a larger file report file positions.
func WithBase(pos ast.Pos) Option {
	return func(p *parser) {
		p.base = pos
	}
}

type parser struct {
	src   string
	items []item
	pos   int
	base  ast.Pos
}

func newParser(src string, opts []Option) (*parser, error) {
	p := &parser{src: src}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	items, err := tokenize(src, p.base)
	if err != nil {
		return nil, err
	}
	p.items = items
	return p, nil
}

// Parse parses a template: a list of elements, text, expressions, branches
// and loops. A root item written as a lowercase name followed by a brace must
// name a known tag.
func Parse(src string, opts ...Option) ([]ast.Node, error) {
	p, err := newParser(src, opts)
	if err != nil {
		return nil, err
	}
	return p.nodes(token.EOF, "template", true)
}

// ParseElement parses body as the content of a single element named name:
// attributes first, then children.
func ParseElement(name, body string, opts ...Option) (*ast.Element, error) {
	p, err := newParser(body, opts)
	if err != nil {
		return nil, err
	}
	if !known.IsKnownTag(name) {
		pos := p.base
		if pos.Line == 0 {
			pos = ast.Pos{Line: 1, Col: 1}
		}
		return nil, &Error{Kind: ErrUnknownTag, Pos: pos, Fragment: name, Msg: strconv.Quote(name)}
	}
	el := &ast.Element{Name: name, Void: known.IsVoidTag(name), Pos: p.peek().pos}
	if err := p.elementItems(el, token.EOF); err != nil {
		return nil, err
	}
	return el, nil
}

func (p *parser) peek() item {
	return p.items[p.pos]
}

func (p *parser) peekN(n int) item {
	if p.pos+n >= len(p.items) {
		return p.items[len(p.items)-1]
	}
	return p.items[p.pos+n]
}

func (p *parser) at(tok token.Token) bool {
	return p.items[p.pos].tok == tok
}

// next consumes and returns the current token. EOF is never consumed.
func (p *parser) next() item {
	it := p.items[p.pos]
	if it.tok != token.EOF {
		p.pos++
	}
	return it
}

func (p *parser) skipSeparators() {
	for p.at(token.COMMA) || p.at(token.SEMICOLON) {
		p.pos++
	}
}

func (p *parser) span(start, end int) string {
	if end <= start {
		return ""
	}
	return p.src[p.items[start].off:p.items[end-1].end]
}

func (p *parser) itemError(kind error, it item, msg string) *Error {
	return &Error{Kind: kind, Pos: it.pos, Fragment: it.text(), Msg: msg}
}

func (p *parser) spanError(kind error, start, end int, msg string) *Error {
	return &Error{Kind: kind, Pos: p.items[start].pos, Fragment: p.span(start, end), Msg: msg}
}

func (p *parser) unexpected(want string) *Error {
	it := p.peek()
	return p.itemError(ErrSyntax, it, fmt.Sprintf("unexpected %s, expected %s", describe(it), want))
}

// nodes parses child nodes up to closer, which is left unconsumed.
func (p *parser) nodes(closer token.Token, where string, root bool) ([]ast.Node, error) {
	var out []ast.Node
	for {
		p.skipSeparators()
		if p.at(closer) {
			return out, nil
		}
		if p.at(token.EOF) {
			return nil, p.unexpected("'}' to close " + where)
		}
		if p.atAttribute() {
			return nil, p.itemError(ErrSyntax, p.peek(), "attributes are only allowed at the start of an element, not in "+where)
		}
		node, err := p.node(root)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
}

// elementItems parses attributes and children of el up to closer, which is
// left unconsumed.
func (p *parser) elementItems(el *ast.Element, closer token.Token) error {
	for {
		p.skipSeparators()
		if p.at(closer) {
			return nil
		}
		if p.at(token.EOF) {
			return p.unexpected(fmt.Sprintf("'}' to close <%s>", el.Name))
		}

		start := p.pos
		if p.atAttribute() {
			attr, err := p.attribute()
			if err != nil {
				return err
			}
			if len(el.Children) > 0 {
				return p.spanError(ErrAttributeAfterChild, start, p.pos,
					fmt.Sprintf("attribute %q follows content of <%s>", attr.Name, el.Name))
			}
			el.Attrs = append(el.Attrs, attr)
			continue
		}

		node, err := p.node(false)
		if err != nil {
			return err
		}
		if el.Void {
			return p.spanError(ErrVoidChildren, start, p.pos, fmt.Sprintf("<%s> is a void element", el.Name))
		}
		el.Children = append(el.Children, node)
	}
}

func (p *parser) atAttribute() bool {
	it := p.peek()
	if it.tok != token.IDENT && it.tok != token.STRING && !it.tok.IsKeyword() {
		return false
	}
	next := p.peekN(1)
	if next.tok == token.ASSIGN {
		return true
	}
	return next.isQuestion() && p.peekN(2).tok == token.ASSIGN
}

func (p *parser) attribute() (*ast.Attr, error) {
	name := p.next()
	attr := &ast.Attr{Pos: name.pos}
	if name.tok == token.STRING {
		unquoted, err := strconv.Unquote(name.lit)
		if err != nil || !validAttrName(unquoted) {
			return nil, p.itemError(ErrSyntax, name, "invalid attribute name")
		}
		attr.Name, attr.Quoted = unquoted, true
	} else {
		attr.Name = known.NormalizeName(name.lit)
	}

	if p.peek().isQuestion() {
		p.next()
		attr.Optional = true
	}
	p.next() // =

	switch p.peek().tok {
	case token.COMMA, token.SEMICOLON, token.RBRACE, token.EOF:
		return nil, p.unexpected(fmt.Sprintf("value for attribute %q", attr.Name))
	}
	value, err := p.expr(false)
	if err != nil {
		return nil, err
	}
	attr.Value = value
	return attr, nil
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r <= ' ' || r == 0x7f {
			return false
		}
		switch r {
		case '"', '\'', '>', '/', '=', '<':
			return false
		}
	}
	return true
}

func (p *parser) node(root bool) (ast.Node, error) {
	it := p.peek()
	switch it.tok {
	case token.IF:
		return p.branch()
	case token.FOR:
		return p.loop()
	}
	if p.peekN(1).tok == token.LBRACE && (it.tok == token.IDENT || it.tok.IsKeyword() && known.IsKnownTag(it.lit)) {
		return p.elementOrExpr(root)
	}
	return p.content()
}

// elementOrExpr handles `name {`, which is an element when name is a known
// tag and otherwise a Go composite literal. The element form is tried first;
// when it does not apply the same tokens are reparsed as an expression.
func (p *parser) elementOrExpr(root bool) (ast.Node, error) {
	head := p.peek()
	if known.IsKnownTag(head.lit) {
		p.next()
		return p.element(head)
	}
	if root && tagShaped(head.lit) {
		return nil, p.itemError(ErrUnknownTag, head, strconv.Quote(head.lit))
	}

	save := p.pos
	node, err := p.content()
	if err != nil {
		p.pos = save
		if tagShaped(head.lit) && errors.Is(err, ErrSyntax) {
			return nil, p.itemError(ErrUnknownTag, head, strconv.Quote(head.lit))
		}
		return nil, err
	}
	if tagShaped(head.lit) && p.elementSyntax(save+1, p.pos) {
		p.pos = save
		return nil, p.itemError(ErrUnknownTag, head, strconv.Quote(head.lit))
	}
	return node, nil
}

// elementSyntax reports whether the braces starting at from hold attribute
// assignments, which a composite literal never does.
func (p *parser) elementSyntax(from, to int) bool {
	if from >= to || p.items[from].tok != token.LBRACE {
		return false
	}
	depth := 0
	for i := from; i < to; i++ {
		it := p.items[i]
		switch {
		case it.tok == token.LPAREN || it.tok == token.LBRACK || it.tok == token.LBRACE:
			depth++
		case it.tok == token.RPAREN || it.tok == token.RBRACK || it.tok == token.RBRACE:
			depth--
			if depth == 0 {
				return false
			}
		case depth == 1 && (it.tok == token.ASSIGN || it.isQuestion()):
			return true
		}
	}
	return false
}

// tagShaped reports whether name looks like an element name rather than a
// type: lowercase ASCII letters and digits.
func tagShaped(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func (p *parser) element(head item) (*ast.Element, error) {
	if !p.at(token.LBRACE) {
		return nil, p.unexpected("'{'")
	}
	p.next()
	el := &ast.Element{Name: head.lit, Void: known.IsVoidTag(head.lit), Pos: head.pos}
	if err := p.elementItems(el, token.RBRACE); err != nil {
		return nil, err
	}
	p.next()
	return el, nil
}

// content parses an expression in node position. A lone string literal
// becomes text.
func (p *parser) content() (ast.Node, error) {
	expr, err := p.expr(false)
	if err != nil {
		return nil, err
	}
	if expr.Lit != nil && expr.Lit.Kind == ast.LitString {
		return &ast.Text{Value: expr.Lit.Value, Pos: expr.Pos}, nil
	}
	return expr, nil
}

func (p *parser) branch() (*ast.Branch, error) {
	ifItem := p.next()
	b := &ast.Branch{Pos: ifItem.pos}
	for {
		cond, err := p.condition()
		if err != nil {
			return nil, err
		}
		body, err := p.block("if")
		if err != nil {
			return nil, err
		}
		b.Arms = append(b.Arms, &ast.Arm{Cond: cond, Body: body})

		if !p.skipToElse() {
			b.Arms = append(b.Arms, &ast.Arm{Synthetic: true})
			break
		}
		p.next() // else
		if p.at(token.IF) {
			p.next()
			continue
		}
		body, err = p.block("else")
		if err != nil {
			return nil, err
		}
		b.Arms = append(b.Arms, &ast.Arm{Body: body})
		break
	}

	if len(b.Arms) > MaxArms {
		return nil, p.itemError(ErrTooManyArms, ifItem,
			fmt.Sprintf("%d arms, at most %d are supported", len(b.Arms), MaxArms))
	}
	return b, nil
}

// skipToElse consumes line breaks before an else keyword. Nothing is
// consumed when no else follows.
func (p *parser) skipToElse() bool {
	i := p.pos
	for p.items[i].isNewline() {
		i++
	}
	if p.items[i].tok != token.ELSE {
		return false
	}
	p.pos = i
	return true
}

func (p *parser) condition() (*ast.Expr, error) {
	if p.at(token.LBRACE) {
		return nil, p.unexpected("condition")
	}
	return p.expr(true)
}

func (p *parser) block(where string) ([]ast.Node, error) {
	if !p.at(token.LBRACE) {
		return nil, p.unexpected(fmt.Sprintf("'{' to open %s block", where))
	}
	p.next()
	body, err := p.nodes(token.RBRACE, where+" block", false)
	if err != nil {
		return nil, err
	}
	p.next()
	return body, nil
}

func (p *parser) loop() (*ast.Loop, error) {
	forItem := p.next()
	l := &ast.Loop{Pos: forItem.pos}

	if p.at(token.RANGE) {
		p.next()
	} else {
		key := p.peek()
		if key.tok != token.IDENT {
			return nil, p.unexpected("range clause")
		}
		p.next()
		l.Key = key.lit
		if p.at(token.COMMA) {
			p.next()
			value := p.peek()
			if value.tok != token.IDENT {
				return nil, p.unexpected("identifier")
			}
			p.next()
			l.Value = value.lit
		}
		if !p.at(token.DEFINE) {
			return nil, p.unexpected("':='")
		}
		p.next()
		if !p.at(token.RANGE) {
			return nil, p.unexpected("range")
		}
		p.next()
	}

	if p.at(token.LBRACE) {
		return nil, p.unexpected("range expression")
	}
	expr, err := p.expr(true)
	if err != nil {
		return nil, err
	}
	body, err := p.block("for")
	if err != nil {
		return nil, err
	}
	l.Expr = expr
	l.Body = body
	return l, nil
}

// expr consumes one Go expression and returns it unparsed. noLit disables
// composite literals, as in Go if and for headers.
func (p *parser) expr(noLit bool) (*ast.Expr, error) {
	start := p.pos
	if err := p.binary(noLit); err != nil {
		return nil, err
	}
	return &ast.Expr{
		Src: p.span(start, p.pos),
		Lit: p.literal(start, p.pos),
		Pos: p.items[start].pos,
	}, nil
}

func (p *parser) binary(noLit bool) error {
	if err := p.unary(noLit); err != nil {
		return err
	}
	for p.peek().tok.Precedence() > token.LowestPrec {
		p.next()
		if err := p.unary(noLit); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) unary(noLit bool) error {
	for {
		switch p.peek().tok {
		case token.ADD, token.SUB, token.NOT, token.XOR, token.MUL, token.AND, token.ARROW, token.TILDE:
			p.next()
			continue
		}
		return p.primary(noLit)
	}
}

func (p *parser) primary(noLit bool) error {
	typeLike, err := p.operand()
	if err != nil {
		return err
	}
	for {
		switch p.peek().tok {
		case token.PERIOD:
			p.next()
			switch p.peek().tok {
			case token.IDENT:
				p.next()
			case token.LPAREN:
				if err := p.balanced(); err != nil {
					return err
				}
				typeLike = false
			default:
				return p.unexpected("selector")
			}
		case token.LPAREN:
			if err := p.balanced(); err != nil {
				return err
			}
			typeLike = false
		case token.LBRACK:
			if err := p.balanced(); err != nil {
				return err
			}
		case token.LBRACE:
			if noLit || !typeLike {
				return nil
			}
			if err := p.balanced(); err != nil {
				return err
			}
			typeLike = false
		default:
			return nil
		}
	}
}

// operand consumes an operand and reports whether it can be the type of a
// composite literal.
func (p *parser) operand() (bool, error) {
	switch p.peek().tok {
	case token.IDENT:
		p.next()
		return true, nil
	case token.INT, token.FLOAT, token.IMAG, token.CHAR, token.STRING:
		p.next()
		return false, nil
	case token.LPAREN:
		p.next()
		if err := p.binary(false); err != nil {
			return false, err
		}
		if !p.at(token.RPAREN) {
			return false, p.unexpected("')'")
		}
		p.next()
		return false, nil
	case token.LBRACK:
		if err := p.balanced(); err != nil {
			return false, err
		}
		return true, p.elemType()
	case token.MAP:
		p.next()
		if !p.at(token.LBRACK) {
			return false, p.unexpected("'['")
		}
		if err := p.balanced(); err != nil {
			return false, err
		}
		return true, p.elemType()
	case token.STRUCT, token.INTERFACE:
		p.next()
		if !p.at(token.LBRACE) {
			return false, p.unexpected("'{'")
		}
		return true, p.balanced()
	case token.CHAN:
		p.next()
		if p.at(token.ARROW) {
			p.next()
		}
		return true, p.elemType()
	case token.FUNC:
		return false, p.funcLit()
	}
	return false, p.unexpected("expression")
}

// elemType consumes the element type of a slice, array, map or channel type.
func (p *parser) elemType() error {
	for p.at(token.MUL) {
		p.next()
	}
	if _, err := p.operand(); err != nil {
		return err
	}
	for {
		switch p.peek().tok {
		case token.PERIOD:
			p.next()
			if !p.at(token.IDENT) {
				return p.unexpected("type name")
			}
			p.next()
		case token.LBRACK:
			if err := p.balanced(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// funcLit consumes a function literal: signature, then body.
func (p *parser) funcLit() error {
	p.next()
	if !p.at(token.LPAREN) {
		return p.unexpected("'('")
	}
	if err := p.balanced(); err != nil {
		return err
	}
	for !p.at(token.LBRACE) {
		switch p.peek().tok {
		case token.EOF, token.COMMA, token.SEMICOLON, token.RPAREN, token.RBRACK, token.RBRACE:
			// function type without a body
			return nil
		case token.LPAREN, token.LBRACK:
			if err := p.balanced(); err != nil {
				return err
			}
		default:
			p.next()
		}
	}
	return p.balanced()
}

// balanced consumes a bracketed token run starting at the current opening
// bracket, checking that brackets nest.
func (p *parser) balanced() error {
	open := p.next()
	stack := []token.Token{closing(open.tok)}
	for len(stack) > 0 {
		it := p.next()
		switch it.tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			stack = append(stack, closing(it.tok))
		case token.RPAREN, token.RBRACK, token.RBRACE:
			want := stack[len(stack)-1]
			if it.tok != want {
				return p.itemError(ErrSyntax, it, fmt.Sprintf("unexpected %s, expected %q", describe(it), want.String()))
			}
			stack = stack[:len(stack)-1]
		case token.EOF:
			return p.itemError(ErrSyntax, open, fmt.Sprintf("unclosed %q", open.text()))
		case token.ILLEGAL:
			return p.itemError(ErrSyntax, it, fmt.Sprintf("unexpected %s", describe(it)))
		}
	}
	return nil
}

func closing(tok token.Token) token.Token {
	switch tok {
	case token.LPAREN:
		return token.RPAREN
	case token.LBRACK:
		return token.RBRACK
	}
	return token.RBRACE
}

// literal returns the constant value of the tokens in [start, end) when they
// form a single literal, optionally a negated number.
func (p *parser) literal(start, end int) *ast.Literal {
	toks := p.items[start:end]
	neg := false
	if len(toks) == 2 && toks[0].tok == token.SUB && (toks[1].tok == token.INT || toks[1].tok == token.FLOAT) {
		neg = true
		toks = toks[1:]
	}
	if len(toks) != 1 {
		return nil
	}
	raw := p.span(start, end)
	it := toks[0]

	switch it.tok {
	case token.STRING, token.CHAR:
		value, err := strconv.Unquote(it.lit)
		if err != nil {
			return nil
		}
		kind := ast.LitString
		if it.tok == token.CHAR {
			kind = ast.LitRune
		}
		return &ast.Literal{Kind: kind, Raw: raw, Value: value}
	case token.INT:
		n, ok := new(big.Int).SetString(it.lit, 0)
		if !ok {
			return nil
		}
		if neg {
			n.Neg(n)
		}
		return &ast.Literal{Kind: ast.LitInt, Raw: raw, Value: n.String()}
	case token.FLOAT:
		f, err := strconv.ParseFloat(it.lit, 64)
		if err != nil {
			return nil
		}
		if neg {
			f = -f
		}
		return &ast.Literal{Kind: ast.LitFloat, Raw: raw, Value: strconv.FormatFloat(f, 'f', -1, 64)}
	case token.IDENT:
		if it.lit == "true" || it.lit == "false" {
			return &ast.Literal{Kind: ast.LitBool, Raw: raw, Value: it.lit}
		}
	}
	return nil
}

// Describe renders a node tree in a compact indented form, mostly for
// diagnostics and the interactive preview.
func Describe(nodes []ast.Node) string {
	var b strings.Builder
	describeNodes(&b, nodes, 0)
	return b.String()
}

func describeNodes(b *strings.Builder, nodes []ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch n := n.(type) {
		case *ast.Element:
			fmt.Fprintf(b, "%selement %s", indent, n.Name)
			if n.Void {
				b.WriteString(" (void)")
			}
			b.WriteByte('\n')
			for _, attr := range n.Attrs {
				mark := ""
				if attr.Optional {
					mark = "?"
				}
				fmt.Fprintf(b, "%s  attr %s%s = %s\n", indent, attr.Name, mark, attr.Value.Src)
			}
			describeNodes(b, n.Children, depth+1)
		case *ast.Text:
			fmt.Fprintf(b, "%stext %q\n", indent, n.Value)
		case *ast.Expr:
			if n.Lit != nil {
				fmt.Fprintf(b, "%sliteral %s %s\n", indent, n.Lit.Kind, n.Lit.Value)
				continue
			}
			fmt.Fprintf(b, "%sexpr %s\n", indent, n.Src)
		case *ast.Branch:
			fmt.Fprintf(b, "%sbranch (%d arms)\n", indent, n.Arity())
			for _, arm := range n.Arms {
				switch {
				case arm.Cond != nil:
					fmt.Fprintf(b, "%s  when %s\n", indent, arm.Cond.Src)
				case arm.Synthetic:
					fmt.Fprintf(b, "%s  else (empty)\n", indent)
				default:
					fmt.Fprintf(b, "%s  else\n", indent)
				}
				describeNodes(b, arm.Body, depth+2)
			}
		case *ast.Loop:
			fmt.Fprintf(b, "%sfor %s, %s := range %s\n", indent, orBlank(n.Key), orBlank(n.Value), n.Expr.Src)
			describeNodes(b, n.Body, depth+1)
		}
	}
}

func orBlank(name string) string {
	if name == "" {
		return "_"
	}
	return name
}
