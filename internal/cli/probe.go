// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decodoku/geometry"
	"github.com/katalvlaran/decodoku/session"
)

func (a *app) probeCmd() *cobra.Command {
	var (
		register    string
		assignments []string
	)
	cmd := &cobra.Command{
		Use:   "probe CHECK",
		Short: "Highlight the units one check acts on",
		Long: `Probe shows which units a check touches, its type and pattern, and
the value it reports on the given error register. On toroidal codes
the error chains and their end vertices are shown as well.

Examples:
  decodoku probe --code steane 0
  decodoku probe --code rm15 4 --apply 7=Z`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("check %q: %w", args[0], err)
			}
			spec, err := a.spec()
			if err != nil {
				return err
			}
			sess, err := session.New(spec, session.WithLogger(a.log))
			if err != nil {
				return err
			}
			if err := applyErrors(sess, register, assignments); err != nil {
				return err
			}
			if _, err := sess.MeasureSyndrome(); err != nil {
				return err
			}
			p, err := sess.Probe(check)
			if err != nil {
				return err
			}
			labels, err := geometry.Labels(spec)
			if err != nil {
				return err
			}

			probed := make(map[int]bool, len(p.Units))
			for _, u := range p.Units {
				probed[u] = true
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "check:     c%d (%s-type)\n", p.Check, p.Type)
			if p.Pattern != "" {
				fmt.Fprintf(out, "pattern:   %s\n", p.Pattern)
			}
			fmt.Fprintf(out, "units:     %v\n", p.Units)
			fmt.Fprintf(out, "register:  %s\n", renderRegister(sess.Algebra(), sess.ErrorVector(), probed))
			if err := renderChains(out, sess); err != nil {
				return err
			}
			if p.Measured {
				fmt.Fprintf(out, "value:     %d\n", p.Last)
			}
			for _, u := range p.Units {
				fmt.Fprintf(out, "  %3d  %s\n", u, labels[u])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&register, "error", "e", "", "full error register")
	cmd.Flags().StringArrayVarP(&assignments, "apply", "a", nil, "single-unit error unit=symbol (repeatable)")

	return cmd
}
