// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decodoku/session"
)

// applyErrors loads the --error register and every --apply unit=symbol
// into sess.
func applyErrors(sess *session.Session, register string, assignments []string) error {
	if register != "" {
		if err := sess.ApplyCorrectionString(register); err != nil {
			return err
		}
	}
	alg := sess.Algebra()
	for _, as := range assignments {
		unitStr, symStr, ok := strings.Cut(as, "=")
		if !ok {
			return fmt.Errorf("--apply %q: %w", as, ErrBadAssignment)
		}
		unit, err := strconv.Atoi(strings.TrimSpace(unitStr))
		if err != nil {
			return fmt.Errorf("--apply %q: %w", as, ErrBadAssignment)
		}
		sym, err := alg.Parse(symStr)
		if err != nil {
			return fmt.Errorf("--apply %q: %w", as, err)
		}
		if err := sess.ApplyError(unit, sym); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) measureCmd() *cobra.Command {
	var (
		register    string
		assignments []string
	)
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Inject errors, measure the syndrome and decode it",
		Long: `Measure applies the given errors to a fresh register, measures
every check, runs the code's decoder and applies its correction. Codes
without the index structure are decoded by single-location lookup. On
toroidal codes the error chains and their end vertices are shown.

Examples:
  decodoku measure --code steane --error IIIYIII
  decodoku measure --code hamming --size 4 --apply 9=X
  decodoku measure --code qudit-toric --base 5 --apply 4=3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := a.spec()
			if err != nil {
				return err
			}
			sess, err := session.New(spec, session.WithLogger(a.log), session.WithFallbackDecoder())
			if err != nil {
				return err
			}
			if err := applyErrors(sess, register, assignments); err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), sess)
		},
	}
	cmd.Flags().StringVarP(&register, "error", "e", "", "full error register, e.g. IXIIZII or 0,2,0,...")
	cmd.Flags().StringArrayVarP(&assignments, "apply", "a", nil, "single-unit error unit=symbol (repeatable)")

	return cmd
}

// report prints the error, its syndrome, the decoder's answer and the
// register after correction.
func report(out io.Writer, sess *session.Session) error {
	alg := sess.Algebra()
	fmt.Fprintf(out, "code:      %s\n", sess.Spec())
	fmt.Fprintf(out, "error:     %s (weight %d)\n", renderRegister(alg, sess.ErrorVector(), nil), sess.Weight())
	if err := renderChains(out, sess); err != nil {
		return err
	}
	syn, err := sess.MeasureSyndrome()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "syndrome:  %s\n", renderSyndrome(syn, sess.Spec().Base()))

	c, ok, err := sess.Correct()
	switch {
	case err != nil:
		fmt.Fprintf(out, "decoded:   unresolved (%v)\n", err)
		return nil
	case !ok:
		fmt.Fprintln(out, "decoded:   nothing to correct")
	default:
		fmt.Fprintf(out, "decoded:   %s on unit %d (apply %s)\n", alg.Format(c.Error), c.Unit, alg.Format(c.Symbol))
	}
	fmt.Fprintf(out, "corrected: %s (weight %d)\n", renderRegister(alg, sess.ErrorVector(), nil), sess.Weight())

	return nil
}
