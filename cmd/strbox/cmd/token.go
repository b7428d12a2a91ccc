package cmd

import (
	"fmt"

	"github.com/mazzegi/strbox/strx"
	"github.com/spf13/cobra"
)

func (a *app) newTokenCmd() *cobra.Command {
	var count int
	c := &cobra.Command{
		Use:   "token",
		Short: "Generate fake bot tokens for docs and tests",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), strx.FakeToken(nil))
			}
		},
	}
	c.Flags().IntVarP(&count, "count", "n", 1, "number of tokens")
	return c
}
