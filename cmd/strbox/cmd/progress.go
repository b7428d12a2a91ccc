package cmd

import (
	"fmt"
	"strconv"

	"github.com/mazzegi/strbox/progress"
	"github.com/spf13/cobra"
)

func (a *app) newProgressCmd() *cobra.Command {
	var label bool
	c := &cobra.Command{
		Use:   "progress ELAPSED TOTAL",
		Short: "Render a progress bar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			elapsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("elapsed %q: %w", args[0], err)
			}
			total, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("total %q: %w", args[1], err)
			}
			bar, err := progress.Bar(elapsed, total, a.cfg.Bar)
			if err != nil {
				return err
			}
			if label {
				bar += " " + mutedStyle.Render(progress.Label(elapsed, total, a.cfg.Lang))
			}
			fmt.Fprintln(cmd.OutOrStdout(), bar)
			return nil
		},
	}
	c.Flags().IntVar(&a.cfg.Bar.Length, "length", a.cfg.Bar.Length, "bar length in characters")
	c.Flags().StringVar(&a.cfg.Bar.ElapsedChar, "elapsed-char", a.cfg.Bar.ElapsedChar, "fill for the elapsed part")
	c.Flags().StringVar(&a.cfg.Bar.ProgressChar, "progress-char", a.cfg.Bar.ProgressChar, "marker for the current position")
	c.Flags().StringVar(&a.cfg.Bar.EmptyChar, "empty-char", a.cfg.Bar.EmptyChar, "fill for the remaining part")
	c.Flags().BoolVar(&label, "label", false, "append a localized count and percentage")
	return c
}
