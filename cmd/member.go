package cmd

import (
	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/logging"
	"github.com/alexiusacademia/gocfs/internal/report"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// memberCommand builds the check command of one member kind.
func memberCommand(m engine.MemberKind, use, short, long string) *cobra.Command {
	var (
		in  memberFlags
		out outputFlags
	)
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			req, err := in.request(cmd, m)
			if err != nil {
				return err
			}
			s, err := checkOne(req)
			if err != nil {
				return err
			}
			return out.emit(cmd, []report.Sheet{s})
		},
	}
	in.register(c, m)
	out.register(c)
	return c
}

// checkOne runs a single calculation under a fresh calculation id.
func checkOne(req engine.Request) (report.Sheet, error) {
	id := uuid.NewString()
	fields := logging.Calculation(id, string(req.Member), req.Section)

	res, err := newEngine().Check(req)
	if err != nil {
		logger.Warn("request rejected", append(fields, zap.Error(err))...)
		return report.Sheet{}, err
	}
	logger.Debug("request checked", append(fields, zap.Bool("pass", res.Pass))...)
	return report.Sheet{CalcID: id, Request: req, Result: res}, nil
}

func init() {
	rootCmd.AddCommand(memberCommand(engine.KindWallStud, "wallstud",
		"Check a partition wall stud",
		`Check a cold-formed steel wall stud spanning between floor and ceiling.

The stud is checked for bending, shear, web crippling at the supports,
deflection and combined bending with axial load. Loads are an imposed
horizontal line load at a height h, wind pressure and an optional fixture.
The wall self weight from boards, frame and insulation is carried axially.

Examples:
  # C75 stud, 4.1 m high at 406 mm centres, 0.75 kN/m at 1100 mm
  gocfs wallstud --section C75x45x0.8t --span 4100 --tributary 406 --imposed 0.75 --height 1100

  # With wind and a 30 kg cabinet 1500 mm up, offset 150 mm
  gocfs wallstud -s C100x45x0.8t -L 3600 -t 600 -w 0.5 --fixture-mass 30 --fixture-height 1500 --fixture-offset 150

  # Two layers of 9.5 kgf/m² board on a 3 kgf/m² frame
  gocfs wallstud -s C75x45x0.8t -L 4100 -t 406 -W 0.75 --height 1100 --boards 2 --board-weight 9.5 --frame-weight 3

  # Print the diagrams and write a PDF worksheet
  gocfs wallstud -s C75x45x0.8t -L 4100 -t 406 -W 0.75 --height 1100 --plot --pdf stud.pdf`,
	))

	rootCmd.AddCommand(memberCommand(engine.KindCeilingSystem, "ceiling",
		"Check a suspended ceiling runner, hanger and anchor",
		`Check a suspended ceiling: the runner spanning between hangers, the
hanger rod in tension and the anchor in pull-out.

The span is the hanger spacing and the tributary width the runner spacing.
Dead load is built from the board layers, frame weight and insulation; wind
pressure acts on the ceiling plane.

Examples:
  # FRC runners at 1200 mm, hangers every 1000 mm, two layers of 9.5 kgf/m² board
  gocfs ceiling --section FRC38x12x0.8t --hanger M8 --anchor HST3-M8 \
    --span 1000 --tributary 1200 --boards 2 --board-weight 9.5 --frame-weight 3 --wind 0.25 --criterion L/360`,
	))
}
