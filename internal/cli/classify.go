// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlode/ode"
)

func classifyCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Print the discriminant and the root case without plotting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, log, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			p := f.ODEProblem()
			delta := ode.Discriminant(p.Alpha, p.Beta, p.Gamma)
			rc := ode.Classify(p.Alpha, p.Beta, p.Gamma, f.SolverOptions()...)
			log.Debug("cli.classified", "delta", delta, "case", rc.String())

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "delta=%g\ncase=%s\n", delta, rc)

			return err
		},
	}
}
