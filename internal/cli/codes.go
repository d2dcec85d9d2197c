// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decodoku/codes"
	"github.com/katalvlaran/decodoku/geometry"
)

func (a *app) codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the code families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerColor.Sprintf("%-14s %-12s %s", "NAME", "PARAMS", "SUMMARY"))
			for _, f := range codes.Families() {
				var params []string
				if f.Sized {
					params = append(params, "size")
				}
				if f.Based {
					params = append(params, "base")
				}
				if f.Random {
					params = append(params, "seed")
				}
				p := strings.Join(params, ",")
				if p == "" {
					p = "-"
				}
				fmt.Fprintf(out, "%-14s %-12s %s\n", f.Name, p, f.Summary)
			}
			return nil
		},
	}
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Show the checks and geometry of the selected code",
		Long: `Describe prints the code parameters, every check with its type,
pattern and support, and the geometric label of each unit.

Examples:
  decodoku describe --code steane
  decodoku describe --code toric --size 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := a.spec()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerColor.Sprint(spec.String()))
			if spec.Demo() {
				fmt.Fprintln(out, "demo checks: random placeholder data, no structural decoding")
			}
			if order, ok := spec.IndexStructure(); ok {
				fmt.Fprintf(out, "index structure: %s\n", order)
			}
			fmt.Fprintln(out, "checks:")
			for i := 0; i < spec.Checks(); i++ {
				c, err := spec.Check(i)
				if err != nil {
					return err
				}
				row := c.Pattern
				if row == "" {
					row = fmt.Sprint(c.Weights)
				}
				fmt.Fprintf(out, "  c%-3d %s  %s  %v\n", i, c.Type, row, c.Support)
			}
			geo, err := geometry.Describe(spec)
			if err != nil {
				return err
			}
			fmt.Fprint(out, geo)
			return nil
		},
	}
}
