// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decodoku/store"
)

func (a *app) statsCmd() *cobra.Command {
	var (
		recent int
		filter string
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize stored rounds per code",
		Long: `Stats reads the round history written by 'play --db' and prints
per-code accuracy and the most recent rounds.

Examples:
  decodoku stats --db rounds.db
  decodoku stats --db rounds.db --recent 20 --filter "Steane [[7,1,3]]"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.DBPath == "" {
				return ErrNoDatabase
			}
			ctx := cmd.Context()
			st, err := store.Open(ctx, a.cfg.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			stats, err := st.Stats(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, "no rounds recorded")
				return nil
			}
			fmt.Fprintln(out, headerColor.Sprintf("%-36s %7s %7s %9s %9s", "CODE", "ROUNDS", "CORRECT", "ACCURACY", "AVG TIME"))
			for _, s := range stats {
				fmt.Fprintf(out, "%-36s %7d %7d %8.1f%% %9s\n",
					s.Code, s.Rounds, s.Correct, 100*s.Accuracy(), s.AvgDuration.Round(time.Millisecond))
			}
			if recent <= 0 {
				return nil
			}

			rounds, err := st.Rounds(ctx, filter, recent)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, headerColor.Sprint("recent rounds:"))
			for _, r := range rounds {
				fmt.Fprintf(out, "  %s  %-28s units %-8s guess %-8s  %s  %s\n",
					r.StartedAt.Format(time.RFC3339), r.Code, unitList(r.Units, r.Unit), unitList(r.Guesses, r.Guess),
					r.Syndrome, verdict(r.Correct))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&recent, "recent", "n", 0, "also list the N most recent rounds")
	cmd.Flags().StringVar(&filter, "filter", "", "restrict recent rounds to one code name")

	return cmd
}

// unitList prints a stored unit set, falling back to the single unit of rows
// written before sets were kept.
func unitList(units []int, single int) string {
	if len(units) == 0 {
		return strconv.Itoa(single)
	}
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = strconv.Itoa(u)
	}

	return strings.Join(parts, ",")
}
