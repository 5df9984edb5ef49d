package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gocfs/internal/catalog"
	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/statics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profiles(t *testing.T) []engine.CaseProfile {
	t.Helper()
	reg, err := catalog.Default()
	require.NoError(t, err)
	cps, err := engine.New(reg).Profiles(engine.ReferenceWallStud(), 40)
	require.NoError(t, err)
	return cps
}

func TestQuantityValues(t *testing.T) {
	p := statics.Profile{
		X:          []float64{0, 1},
		Moment:     []float64{0, 392000},
		Deflection: []float64{0, 12.5},
	}
	assert.Equal(t, []float64{0, 392}, Moment.Values(p))
	assert.Equal(t, []float64{0, 12.5}, Deflection.Values(p))
	assert.Equal(t, "kN·mm", Moment.Unit())
	assert.Equal(t, "Deflection", Deflection.String())
}

func TestDrawASCII(t *testing.T) {
	cps := profiles(t)
	out := DrawASCII(cps, Moment)
	for _, cp := range cps {
		assert.Contains(t, out, "case "+cp.Case)
	}
	assert.Contains(t, out, "Bending moment (kN·mm)")
	assert.Contains(t, out, "0 to 4100 mm")

	assert.Empty(t, DrawASCII(nil, Deflection))
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"Mc = 392.14 kN·mm", "ok"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 5)

	// every row is as wide as the border
	for _, l := range lines {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(l)), l)
	}
	assert.Contains(t, lines[1], "RESULT")
}

func TestExport(t *testing.T) {
	cps := profiles(t)
	dir := t.TempDir()

	for _, name := range []string{"moment.svg", "moment.png", "nested/deflection"} {
		t.Run(name, func(t *testing.T) {
			path, err := Export(cps, Deflection, "C75x45x0.8t", filepath.Join(dir, name))
			require.NoError(t, err)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}

	path, err := Export(cps, Moment, "", filepath.Join(dir, "m"))
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(path))

	_, err = Export(nil, Moment, "", filepath.Join(dir, "empty.png"))
	assert.Error(t, err)
}
