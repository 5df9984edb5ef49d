package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointLoadMomentRendering(t *testing.T) {
	L := Var("L", 4100)
	h := Var("h", 1100)
	P := Let("P", Mul(Var("γQ", 1.6), Var("W", 0.75), Var("Tw", 406)))
	m := Div(Mul(P, h, Sub(L, h)), L)

	assert.Equal(t, "P × h × (L − h) / L", Formula(m))
	assert.Equal(t, "487.2 × 1100 × (4100 − 1100) / 4100", Substitute(m))
	assert.InDelta(t, 392136.585, m.Eval(), 1e-3)
}

func TestDenominatorIsParenthesised(t *testing.T) {
	n := Div(Var("a", 10), Mul(Const(6), Var("E", 2), Const(2)))
	assert.Equal(t, "a / (6 × E × 2)", Formula(n))
	assert.Equal(t, "10 / (6 × 2 × 2)", Substitute(n))
	assert.InDelta(t, 10.0/24.0, n.Eval(), 1e-12)
}

func TestNestedDifferenceIsParenthesised(t *testing.T) {
	n := Sub(Var("a", 5), Sub(Var("b", 3), Var("c", 1)))
	assert.Equal(t, "a − (b − c)", Formula(n))
	assert.Equal(t, 3.0, n.Eval())
}

func TestPowersAndFunctions(t *testing.T) {
	x := Var("x", 3)
	assert.Equal(t, "x²", Formula(Pow(x, 2)))
	assert.Equal(t, "(x − 1)^1.5", Formula(Pow(Sub(x, Const(1)), 1.5)))
	assert.Equal(t, "√3", Substitute(Sqrt(Const(3))))
	assert.Equal(t, "min(x, 2)", Formula(Min(x, Const(2))))
	assert.Equal(t, 2.0, Min(x, Const(2)).Eval())
	assert.Equal(t, 1.0, Clamp(x, 0.5, 1.0).Eval())
	assert.Equal(t, 0.5, Clamp(Const(0.1), 0.5, 1.0).Eval())
}

func TestSumOfTerms(t *testing.T) {
	n := Add(Var("M1", 2), Var("M2", 3), Var("M3", 4))
	assert.Equal(t, "M1 + M2 + M3", Formula(n))
	assert.Equal(t, 9.0, n.Eval())
	assert.Equal(t, "(M1 + M2) × k", Formula(Mul(Add(Var("M1", 1), Var("M2", 1)), Var("k", 1))))
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		1.2000000000000002: "1.2",
		125552:             "125552",
		0.73099415:         "0.731",
		-2.5:               "(−2.5)",
		-0.00001:           "0",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "input %v", in)
	}
	assert.Equal(t, "17.08", FormatFixed(4100.0/240, 2))
}
