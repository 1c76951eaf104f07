// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlode/ode"
)

func tableCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Write the sampled solution as x,u CSV to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, log, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			res, err := ode.Solve(f.ODEProblem(), f.SolverOptions()...)
			if err != nil {
				log.Error("cli.table_failed", "err", err)
				return err
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			if err = w.Write([]string{"x", "u"}); err != nil {
				return err
			}
			g := res.Grid
			for i, v := range g.Values {
				row := []string{formatFloat(g.X(i)), formatFloat(v)}
				if err = w.Write(row); err != nil {
					return err
				}
			}
			w.Flush()

			return w.Error()
		},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
