package capacity

import (
	"testing"

	"github.com/alexiusacademia/gocfs/internal/catalog"
	"github.com/alexiusacademia/gocfs/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var steel = Material{YieldStrength: 200, ElasticModulus: 205000, MaterialFactor: 1.2}

func registry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.Default()
	require.NoError(t, err)
	return reg
}

func section(t *testing.T, id string) catalog.Section {
	t.Helper()
	s, err := registry(t).Section(id)
	require.NoError(t, err)
	return s
}

func fastener(t *testing.T, id string) catalog.Fastener {
	t.Helper()
	f, err := registry(t).Fastener(id)
	require.NoError(t, err)
	return f
}

func TestBending(t *testing.T) {
	mb := Bending(section(t, "C75x45x0.8t"), steel)

	assert.Equal(t, "Py × Sxe / γm", expr.Formula(mb))
	assert.Equal(t, "200 × 2712 / 1.2", expr.Substitute(mb))
	assert.InDelta(t, 452000, mb.Eval(), 1e-6)
}

func TestShear(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want float64
	}{
		// 0.6 × 200 / 1.2 = 100 < (1000 × 0.8 / 75)² = 113.8
		{"yield governs", "C75x45x0.8t", 100 * 75 * 0.8},
		// (1000 × 0.8 / 100)² = 64 < 100
		{"buckling governs", "C100x45x0.8t", 64 * 100 * 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc := Shear(section(t, tt.id), steel)
			assert.InDelta(t, tt.want, vc.Eval(), 1e-6)
			assert.Equal(t, "pv × D × t", expr.Formula(vc))
		})
	}
}

func TestWebCripplingEndSupport(t *testing.T) {
	pw := WebCrippling(section(t, "C75x45x0.8t"), steel, Crippling{Support: EndSupport, Restrained: true, Bearing: 32})

	assert.InDelta(t, 873.6845, pw.Eval(), 1e-3)
	assert.Equal(t, "Cr × t² × k × C3 × C4 × C12 × (1350 − 1.73 × D / t) × (1 + 0.01 × Nb / t)", expr.Formula(pw))
}

func TestWebCripplingInteriorUnrestrained(t *testing.T) {
	pw := WebCrippling(section(t, "FRC38x12x0.8t"), steel, Crippling{Support: InteriorSupport, Bearing: 32})

	assert.InDelta(t, 1457.786, pw.Eval(), 1e-2)
	assert.Contains(t, expr.Formula(pw), "3350 − 4.6 × D / t")
}

func TestWebCripplingGrowsWithBearingAndRestraint(t *testing.T) {
	s := section(t, "C75x45x0.8t")
	short := WebCrippling(s, steel, Crippling{Bearing: 20}).Eval()
	long := WebCrippling(s, steel, Crippling{Bearing: 50}).Eval()
	restrained := WebCrippling(s, steel, Crippling{Bearing: 20, Restrained: true}).Eval()

	assert.Greater(t, long, short)
	assert.InDelta(t, short*RestrainedFlangeFactor, restrained, 1e-9)
}

func TestCoefficients(t *testing.T) {
	k := YieldRatio(expr.Var("Py", 200), expr.Var("γm", 1.2))
	assert.InDelta(t, 0.730994, k.Eval(), 1e-6)
	assert.InDelta(t, 1.088772, C3(k).Eval(), 1e-6)

	// clamped at both ends
	assert.Equal(t, 1.0, C4(expr.Const(0), expr.Const(1)).Eval())
	assert.Equal(t, 0.5, C4(expr.Const(10), expr.Const(1)).Eval())
	assert.InDelta(t, 0.8524375, C4(expr.Const(1.587), expr.Const(0.8)).Eval(), 1e-9)

	assert.InDelta(t, 1.0, C12(expr.Const(90)).Eval(), 1e-12)
	assert.InDelta(t, 0.7, C12(expr.Const(0)).Eval(), 1e-12)
}

func TestFasteners(t *testing.T) {
	th := Hanger(fastener(t, "M10"), steel)
	assert.InDelta(t, 58*400/1.2/1000, th.Eval(), 1e-9)
	assert.Equal(t, "As × fu / (γm × 1000)", expr.Formula(th))

	assert.Equal(t, 8.0, Anchor(fastener(t, "HST3-M10")).Eval())
}

func TestSquash(t *testing.T) {
	pc := Squash(section(t, "C75x45x0.8t"), steel)
	assert.InDelta(t, 136.8*200/1.2, pc.Eval(), 1e-9)
}

func TestSupportString(t *testing.T) {
	assert.Equal(t, "end", EndSupport.String())
	assert.Equal(t, "interior", InteriorSupport.String())
}
