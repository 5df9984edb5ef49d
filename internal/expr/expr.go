// Package expr builds the small arithmetic trees behind every audit-trail line.
//
// A tree is evaluated for the number and rendered twice for the worksheet:
// once with symbols ("P × h × (L − h) / L") and once with the bound values
// substituted ("487.2 × 1100 × (4100 − 1100) / 4100"). The number printed in a
// result is always the evaluation of the same tree that produced the text.
package expr

import (
	"math"
	"strings"
)

// Operator precedence used to decide where parentheses are required.
const (
	precSum = iota + 1
	precProduct
	precPower
	precAtom
)

// Node is one term of an expression tree.
type Node interface {
	// Eval returns the numeric value of the term.
	Eval() float64

	write(b *strings.Builder, m mode)
	prec() int
}

type mode int

const (
	symbolic mode = iota
	substituted
)

// Formula renders n with symbols.
func Formula(n Node) string {
	var b strings.Builder
	n.write(&b, symbolic)
	return b.String()
}

// Substitute renders n with every symbol replaced by its bound value.
func Substitute(n Node) string {
	var b strings.Builder
	n.write(&b, substituted)
	return b.String()
}

// Var is a named input with a bound value, e.g. Var("L", 4100).
func Var(symbol string, v float64) Node { return variable{symbol: symbol, v: v} }

// Const is a literal coefficient that prints the same way in both renderings.
func Const(v float64) Node { return constant(v) }

// Let names an intermediate result. The formula shows the symbol, the
// substitution shows the evaluated value.
func Let(symbol string, n Node) Node { return binding{symbol: symbol, n: n} }

// Add sums the given terms.
func Add(terms ...Node) Node {
	if len(terms) == 1 {
		return terms[0]
	}
	return sum{terms: terms}
}

// Sub returns a − b.
func Sub(a, b Node) Node { return difference{a: a, b: b} }

// Mul multiplies the given factors.
func Mul(factors ...Node) Node {
	if len(factors) == 1 {
		return factors[0]
	}
	return product{factors: factors}
}

// Div returns a / b.
func Div(a, b Node) Node { return quotient{a: a, b: b} }

// Pow returns base raised to exp.
func Pow(base Node, exp float64) Node { return power{base: base, exp: exp} }

// Sqrt returns the square root of n.
func Sqrt(n Node) Node { return root{n: n} }

// Min returns the smaller of a and b.
func Min(a, b Node) Node { return call{name: "min", args: []Node{a, b}, fn: math.Min} }

// Max returns the larger of a and b.
func Max(a, b Node) Node { return call{name: "max", args: []Node{a, b}, fn: math.Max} }

// Clamp limits n to [lo, hi].
func Clamp(n Node, lo, hi float64) Node { return Min(Max(n, Const(lo)), Const(hi)) }

type variable struct {
	symbol string
	v      float64
}

func (n variable) Eval() float64 { return n.v }
func (n variable) prec() int     { return precAtom }

func (n variable) write(b *strings.Builder, m mode) {
	if m == symbolic {
		b.WriteString(n.symbol)
		return
	}
	writeNumber(b, n.v)
}

type constant float64

func (n constant) Eval() float64 { return float64(n) }
func (n constant) prec() int     { return precAtom }

func (n constant) write(b *strings.Builder, _ mode) { writeNumber(b, float64(n)) }

type binding struct {
	symbol string
	n      Node
}

func (n binding) Eval() float64 { return n.n.Eval() }
func (n binding) prec() int     { return precAtom }

func (n binding) write(b *strings.Builder, m mode) {
	if m == symbolic {
		b.WriteString(n.symbol)
		return
	}
	writeNumber(b, n.n.Eval())
}

type sum struct{ terms []Node }

func (n sum) Eval() float64 {
	var v float64
	for _, t := range n.terms {
		v += t.Eval()
	}
	return v
}

func (n sum) prec() int { return precSum }

func (n sum) write(b *strings.Builder, m mode) {
	for i, t := range n.terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		t.write(b, m)
	}
}

type difference struct{ a, b Node }

func (n difference) Eval() float64 { return n.a.Eval() - n.b.Eval() }
func (n difference) prec() int     { return precSum }

func (n difference) write(b *strings.Builder, m mode) {
	n.a.write(b, m)
	b.WriteString(" − ")
	wrap(b, n.b, m, n.b.prec() <= precSum)
}

type product struct{ factors []Node }

func (n product) Eval() float64 {
	v := 1.0
	for _, f := range n.factors {
		v *= f.Eval()
	}
	return v
}

func (n product) prec() int { return precProduct }

func (n product) write(b *strings.Builder, m mode) {
	for i, f := range n.factors {
		if i > 0 {
			b.WriteString(" × ")
		}
		wrap(b, f, m, f.prec() < precProduct)
	}
}

type quotient struct{ a, b Node }

func (n quotient) Eval() float64 { return n.a.Eval() / n.b.Eval() }
func (n quotient) prec() int     { return precProduct }

func (n quotient) write(b *strings.Builder, m mode) {
	wrap(b, n.a, m, n.a.prec() < precProduct)
	b.WriteString(" / ")
	wrap(b, n.b, m, n.b.prec() <= precProduct)
}

type power struct {
	base Node
	exp  float64
}

func (n power) Eval() float64 { return math.Pow(n.base.Eval(), n.exp) }
func (n power) prec() int     { return precPower }

func (n power) write(b *strings.Builder, m mode) {
	wrap(b, n.base, m, n.base.prec() < precAtom)
	switch n.exp {
	case 2:
		b.WriteString("²")
	case 3:
		b.WriteString("³")
	case 4:
		b.WriteString("⁴")
	default:
		b.WriteString("^")
		writeNumber(b, n.exp)
	}
}

type root struct{ n Node }

func (n root) Eval() float64 { return math.Sqrt(n.n.Eval()) }
func (n root) prec() int     { return precPower }

func (n root) write(b *strings.Builder, m mode) {
	b.WriteString("√")
	wrap(b, n.n, m, n.n.prec() < precAtom)
}

type call struct {
	name string
	args []Node
	fn   func(a, b float64) float64
}

func (n call) Eval() float64 {
	v := n.args[0].Eval()
	for _, a := range n.args[1:] {
		v = n.fn(v, a.Eval())
	}
	return v
}

func (n call) prec() int { return precAtom }

func (n call) write(b *strings.Builder, m mode) {
	b.WriteString(n.name)
	b.WriteString("(")
	for i, a := range n.args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.write(b, m)
	}
	b.WriteString(")")
}

func wrap(b *strings.Builder, n Node, m mode, paren bool) {
	if paren {
		b.WriteString("(")
	}
	n.write(b, m)
	if paren {
		b.WriteString(")")
	}
}
