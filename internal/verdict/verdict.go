// Package verdict compares demands with capacities and collects the
// per-mode results of a calculation.
package verdict

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/expr"
)

// Mode is a failure mode checked on a member or its fasteners.
type Mode string

const (
	Bending       Mode = "bending"
	Shear         Mode = "shear"
	WebCrippling  Mode = "web_crippling"
	Deflection    Mode = "deflection"
	Combined      Mode = "combined_action"
	HangerTension Mode = "hanger_tension"
	AnchorPullOut Mode = "anchor_pull_out"
)

// ResultDecimals is the precision of the Result string of a term.
const ResultDecimals = 2

// Term is one side of a check with its audit trail.
type Term struct {
	Symbol       string  `json:"symbol"`
	Value        float64 `json:"value"`
	Unit         string  `json:"unit"`
	Formula      string  `json:"formula"`
	Substitution string  `json:"substitution"`
	Result       string  `json:"result"`
}

// NewTerm evaluates n and renders its formula and substitution. The unit is
// the unit n evaluates to.
func NewTerm(symbol string, n expr.Node, unit string) Term {
	v := n.Eval()
	result := expr.FormatFixed(v, ResultDecimals)
	if unit != "" {
		result += " " + unit
	}
	return Term{
		Symbol:       symbol,
		Value:        v,
		Unit:         unit,
		Formula:      expr.Formula(n),
		Substitution: expr.Substitute(n),
		Result:       result,
	}
}

// CheckResult is the outcome of one failure mode.
type CheckResult struct {
	Mode     Mode    `json:"mode"`
	Case     string  `json:"case"` // governing load case
	Demand   Term    `json:"demand"`
	Capacity Term    `json:"capacity"`
	Ratio    float64 `json:"ratio"` // demand / capacity
	Pass     bool    `json:"pass"`
}

// Check compares demand with capacity. For deflection the capacity is the
// allowable deflection. A check passes when capacity ≥ demand.
func Check(mode Mode, loadCase string, demand, capacity Term) CheckResult {
	return CheckResult{
		Mode:     mode,
		Case:     loadCase,
		Demand:   demand,
		Capacity: capacity,
		Ratio:    demand.Value / capacity.Value,
		Pass:     capacity.Value >= demand.Value,
	}
}

// CalculationResult is the full verdict of one request.
type CalculationResult struct {
	Member  string        `json:"member"`
	Section string        `json:"section"`
	Checks  []CheckResult `json:"checks"`
	Pass    bool          `json:"pass"`
	Message string        `json:"message"`
}

// Aggregate collects the checks in order. The overall verdict is the logical
// AND of every check; all checks are kept even after one fails.
func Aggregate(member, section string, checks []CheckResult) *CalculationResult {
	r := &CalculationResult{
		Member:  member,
		Section: section,
		Checks:  checks,
		Pass:    true,
	}
	var failed []string
	for _, c := range checks {
		if !c.Pass {
			r.Pass = false
			failed = append(failed, string(c.Mode))
		}
	}
	if r.Pass {
		r.Message = fmt.Sprintf("All %d checks satisfied", len(checks))
	} else {
		r.Message = fmt.Sprintf("Inadequate: %s", strings.Join(failed, ", "))
	}
	return r
}

// Failed returns the checks that did not pass.
func (r *CalculationResult) Failed() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if !c.Pass {
			out = append(out, c)
		}
	}
	return out
}

// Governing returns the check with the highest utilisation ratio.
func (r *CalculationResult) Governing() (CheckResult, bool) {
	if len(r.Checks) == 0 {
		return CheckResult{}, false
	}
	g := r.Checks[0]
	for _, c := range r.Checks[1:] {
		if c.Ratio > g.Ratio {
			g = c
		}
	}
	return g, true
}

// Check returns the result for mode, if present.
func (r *CalculationResult) Check(mode Mode) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Mode == mode {
			return c, true
		}
	}
	return CheckResult{}, false
}
