package batch

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/loads"
	"github.com/alexiusacademia/gocfs/internal/request"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the results workbook.
const (
	SummarySheet = "Results"
	ChecksSheet  = "Checks"
)

// Columns recognised in an input sheet. The first row holds the column
// names, in any order; only member, section, span and tributary_width are
// required. Blank cells keep the defaults.
var Columns = []string{
	"id", "member", "section", "hanger", "anchor",
	"span", "tributary_width", "bearing_length",
	"wind_pressure", "imposed_load", "imposed_height",
	"board_layers", "board_weight", "frame_weight",
	"insulation_thickness", "insulation_density",
	"fixture_mass", "fixture_height", "fixture_offset",
	"yield_strength", "elastic_modulus", "material_factor",
	"factor_wind", "factor_dead", "factor_imposed", "factor_fixture",
	"criterion", "custom",
}

var requiredColumns = []string{"member", "section", "span", "tributary_width"}

// ReadXLSX reads one request per row of the first sheet of a workbook.
func ReadXLSX(r io.Reader, d request.Defaults) ([]request.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no requests", sheet)
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("sheet %s: missing column %q", sheet, c)
		}
	}

	var items []request.Item
	for n, row := range rows[1:] {
		if blank(row) {
			continue
		}
		it, err := parseRow(rowReader{index: index, row: row}, d)
		if err != nil {
			// rows are numbered as the spreadsheet shows them
			return nil, fmt.Errorf("sheet %s row %d: %w", sheet, n+2, err)
		}
		items = append(items, it)
	}
	return items, nil
}

type rowReader struct {
	index map[string]int
	row   []string
	err   error
}

func (r *rowReader) text(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

// float overwrites *dst when the cell is not blank.
func (r *rowReader) float(col string, dst *float64) {
	s := r.text(col)
	if s == "" || r.err != nil {
		return
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.err = fmt.Errorf("column %s: %q is not a number", col, s)
		return
	}
	*dst = v
}

func (r *rowReader) integer(col string, dst *int) {
	var v float64
	r.float(col, &v)
	if r.text(col) != "" && r.err == nil {
		if v != float64(int(v)) {
			r.err = fmt.Errorf("column %s: %g is not a whole number", col, v)
			return
		}
		*dst = int(v)
	}
}

func parseRow(r rowReader, d request.Defaults) (request.Item, error) {
	req := engine.Request{
		Member:     engine.MemberKind(r.text("member")),
		Section:    r.text("section"),
		Hanger:     r.text("hanger"),
		Anchor:     r.text("anchor"),
		Material:   d.Material,
		Geometry:   engine.Geometry{BearingLength: d.Geometry.BearingLength},
		Factors:    d.Factors,
		Deflection: d.Deflection,
	}

	r.float("span", &req.Geometry.Span)
	r.float("tributary_width", &req.Geometry.TributaryWidth)
	r.float("bearing_length", &req.Geometry.BearingLength)

	r.float("wind_pressure", &req.Loads.WindPressure)
	r.float("imposed_load", &req.Loads.ImposedLoad)
	r.float("imposed_height", &req.Loads.ImposedHeight)
	r.integer("board_layers", &req.Loads.BoardLayers)
	r.float("board_weight", &req.Loads.BoardWeight)
	r.float("frame_weight", &req.Loads.FrameWeight)

	if r.text("insulation_thickness") != "" {
		ins := &loads.Insulation{}
		r.float("insulation_thickness", &ins.Thickness)
		r.float("insulation_density", &ins.Density)
		req.Loads.Insulation = ins
	}
	if r.text("fixture_mass") != "" {
		fx := &loads.Fixture{}
		r.float("fixture_mass", &fx.Mass)
		r.float("fixture_height", &fx.Height)
		r.float("fixture_offset", &fx.Offset)
		req.Loads.Fixture = fx
	}

	r.float("yield_strength", &req.Material.YieldStrength)
	r.float("elastic_modulus", &req.Material.ElasticModulus)
	r.float("material_factor", &req.Material.MaterialFactor)

	r.float("factor_wind", &req.Factors.Wind)
	r.float("factor_dead", &req.Factors.Dead)
	r.float("factor_imposed", &req.Factors.Imposed)
	r.float("factor_fixture", &req.Factors.Fixture)

	if c := r.text("criterion"); c != "" {
		req.Deflection = engine.Deflection{Criterion: c}
		r.float("custom", &req.Deflection.Custom)
	}

	if r.err != nil {
		return request.Item{}, r.err
	}
	return request.Item{ID: r.text("id"), Request: req}, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteXLSX writes a results workbook: one summary row per request and one
// row per check with its audit trail.
func WriteXLSX(w io.Writer, outcomes []Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ChecksSheet); err != nil {
		return err
	}

	summary := []any{"id", "calc_id", "member", "section", "pass", "governing", "max_ratio", "message"}
	if err := f.SetSheetRow(SummarySheet, "A1", &summary); err != nil {
		return err
	}
	checks := []any{"id", "calc_id", "mode", "case", "demand", "capacity", "ratio", "pass", "demand_formula", "demand_substitution", "capacity_formula", "capacity_substitution"}
	if err := f.SetSheetRow(ChecksSheet, "A1", &checks); err != nil {
		return err
	}

	checkRow := 2
	for i, o := range outcomes {
		row := summaryRow(o)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
		if o.Result == nil {
			continue
		}
		for _, c := range o.Result.Checks {
			row := []any{
				o.ID, o.CalcID, string(c.Mode), c.Case,
				c.Demand.Result, c.Capacity.Result, round(c.Ratio), c.Pass,
				c.Demand.Formula, c.Demand.Substitution,
				c.Capacity.Formula, c.Capacity.Substitution,
			}
			cell, err := excelize.CoordinatesToCellName(1, checkRow)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(ChecksSheet, cell, &row); err != nil {
				return err
			}
			checkRow++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func summaryRow(o Outcome) []any {
	if o.Err != nil {
		return []any{o.ID, o.CalcID, string(o.Request.Member), o.Request.Section, false, "", "", o.Err.Error()}
	}
	governing, ratio := "", 0.0
	if g, ok := o.Result.Governing(); ok {
		governing, ratio = string(g.Mode), g.Ratio
	}
	return []any{o.ID, o.CalcID, o.Result.Member, o.Result.Section, o.Result.Pass, governing, round(ratio), o.Result.Message}
}

// round keeps four decimals of a ratio.
func round(v float64) float64 { return math.Round(v*1e4) / 1e4 }
