package request

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/loads"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaults = Defaults{
	Material:   engine.Material{YieldStrength: 200, ElasticModulus: 205000, MaterialFactor: 1.2},
	Geometry:   engine.Geometry{BearingLength: 32},
	Factors:    loads.DefaultFactors,
	Deflection: engine.Deflection{Criterion: engine.CriterionL240},
}

const referenceJSON = `{
  "id": "GH-01",
  "member": "wall_stud",
  "section": "C75x45x0.8t",
  "geometry": {"span": 4100, "tributary_width": 406, "bearing_length": 32},
  "loads": {"imposed_load": 0.75, "imposed_height": 1100}
}`

func TestDecodeJSONAppliesDefaults(t *testing.T) {
	it, err := Decode([]byte(referenceJSON), JSON, defaults)
	require.NoError(t, err)

	assert.Equal(t, "GH-01", it.ID)
	if diff := cmp.Diff(engine.ReferenceWallStud(), it.Request); diff != "" {
		t.Errorf("decoded request differs (-want +got):\n%s", diff)
	}
}

func TestDecodeYAMLOverridesDefaults(t *testing.T) {
	doc := `
member: ceiling_system
section: FRC38x12x0.8t
hanger: M8
anchor: HST3-M8
material:
  yield_strength: 280
geometry:
  span: 1000
  tributary_width: 1200
  bearing_length: 32
factors:
  wind: 1.2
loads:
  wind_pressure: 0.25
  board_layers: 2
  board_weight: 9.5
  frame_weight: 3
  insulation:
    thickness: 50
deflection:
  criterion: custom
  custom: 300
`
	it, err := Decode([]byte(doc), YAML, defaults)
	require.NoError(t, err)

	r := it.Request
	assert.Equal(t, engine.KindCeilingSystem, r.Member)
	assert.Equal(t, 280.0, r.Material.YieldStrength)
	assert.Equal(t, 1.2, r.Material.MaterialFactor, "unset material fields keep defaults")
	assert.Equal(t, 1.2, r.Factors.Wind)
	assert.Equal(t, 1.4, r.Factors.Dead)
	assert.Equal(t, 2, r.Loads.BoardLayers)
	require.NotNil(t, r.Loads.Insulation)
	assert.Equal(t, 50.0, r.Loads.Insulation.Thickness)
	assert.Equal(t, engine.Deflection{Criterion: engine.CriterionCustom, Custom: 300}, r.Deflection)
	assert.Empty(t, it.ID)
}

func TestDecodeDefaultsBearingLength(t *testing.T) {
	doc := `{
  "member": "wall_stud",
  "section": "C75x45x0.8t",
  "geometry": {"span": 4100, "tributary_width": 406},
  "loads": {"imposed_load": 0.75, "imposed_height": 1100}
}`
	it, err := Decode([]byte(doc), JSON, defaults)
	require.NoError(t, err)
	assert.Equal(t, engine.Geometry{Span: 4100, TributaryWidth: 406, BearingLength: 32}, it.Request.Geometry)
	assert.Equal(t, engine.ReferenceWallStud(), it.Request)

	given, err := Decode([]byte(`{"member": "wall_stud", "section": "x", "geometry": {"span": 1, "tributary_width": 1, "bearing_length": 50}, "loads": {}}`), JSON, defaults)
	require.NoError(t, err)
	assert.Equal(t, 50.0, given.Request.Geometry.BearingLength)
}

func TestDecodeSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing section", `{"member": "wall_stud", "geometry": {"span": 1, "tributary_width": 1}, "loads": {}}`},
		{"unknown member", `{"member": "roof", "section": "x", "geometry": {"span": 1, "tributary_width": 1}, "loads": {}}`},
		{"misspelt field", `{"member": "wall_stud", "section": "x", "geometry": {"span": 1, "tributary_width": 1, "bearing": 3}, "loads": {}}`},
		{"negative load", `{"member": "wall_stud", "section": "x", "geometry": {"span": 1, "tributary_width": 1}, "loads": {"wind_pressure": -1}}`},
		{"string number", `{"member": "wall_stud", "section": "x", "geometry": {"span": "4100", "tributary_width": 1}, "loads": {}}`},
		{"ceiling without fasteners", `{"member": "ceiling_system", "section": "x", "geometry": {"span": 1, "tributary_width": 1}, "loads": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc), JSON, defaults)
			var se *SchemaError
			require.ErrorAs(t, err, &se)
			assert.NotEmpty(t, se.Errors)
			assert.Equal(t, -1, se.Index)
		})
	}
}

func TestDecodeAllList(t *testing.T) {
	doc := `[` + referenceJSON + `, {"member": "wall_stud", "section": "C100x45x0.8t", "geometry": {"span": 3000, "tributary_width": 600, "bearing_length": 40}, "loads": {"wind_pressure": 0.5, "imposed_height": 1000}}]`
	items, err := DecodeAll([]byte(doc), JSON, defaults)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "GH-01", items[0].ID)
	assert.Equal(t, "C100x45x0.8t", items[1].Request.Section)

	bad := `[` + referenceJSON + `, {"member": "wall_stud"}]`
	_, err = DecodeAll([]byte(bad), JSON, defaults)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Index)

	_, err = Decode([]byte(doc), JSON, defaults)
	assert.ErrorContains(t, err, "single request")
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "req.json")
	require.NoError(t, os.WriteFile(path, []byte(referenceJSON), 0o644))

	items, err := ReadFile(path, defaults)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = ReadFile(filepath.Join(dir, "req.txt"), defaults)
	assert.ErrorContains(t, err, "unsupported")

	_, err = Decode([]byte("{"), JSON, defaults)
	assert.ErrorContains(t, err, "failed to parse JSON")
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{"a.json": JSON, "b.YAML": YAML, "c.yml": YAML} {
		f, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}
}
