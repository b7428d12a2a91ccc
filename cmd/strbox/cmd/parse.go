package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mazzegi/strbox/argx"
	"github.com/mazzegi/strbox/history"
	"github.com/mazzegi/strbox/jsonx"
	"github.com/mazzegi/strbox/maps"
	"github.com/spf13/cobra"
)

func (a *app) newParseCmd() *cobra.Command {
	var (
		line   string
		asJSON bool
		record bool
	)
	c := &cobra.Command{
		Use:   "parse [--json] [--record] [--line TEXT] -- TOKENS...",
		Short: "Split tokens into content, flags and options",
		Long: `Split command tokens into content, boolean flags and options.

Every token containing "--" is a flag; the tokens up to the next flag are its value.
Pass the tokens after "--" or as one string with --line.`,
		Example: `  strbox parse -- kick @bob --reason spam --silent
  strbox parse --json --line "remind me --in 10 minutes"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if line != "" {
				args = strings.Fields(line)
			}
			res := argx.Parse(args)
			if record {
				if err := a.record(cmd.Context(), joinArgs(args), res); err != nil {
					return err
				}
			}
			if asJSON {
				return jsonx.Write(cmd.OutOrStdout(), res, true)
			}
			writeResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	c.Flags().StringVar(&line, "line", "", "parse this string instead of the arguments")
	c.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	c.Flags().BoolVar(&record, "record", false, "store the parsed line in the history")
	return c
}

func (a *app) record(ctx context.Context, line string, res argx.Result) error {
	s, err := history.Open(a.cfg.DB)
	if err != nil {
		return fmt.Errorf("open-history: %w", err)
	}
	defer s.Close()
	if _, err := s.AddResult(ctx, line, res); err != nil {
		return fmt.Errorf("add-history: %w", err)
	}
	return nil
}

func writeResult(w io.Writer, res argx.Result) {
	fmt.Fprintln(w, titleStyle.Render("content"))
	fmt.Fprintf(w, "  %s %q\n", keyStyle.Render("before options:"), res.ContentBeforeOptions)
	fmt.Fprintf(w, "  %s %q\n", keyStyle.Render("without flags: "), res.ContentWithoutFlagMarkers)

	fmt.Fprintln(w, titleStyle.Render("flags"))
	if len(res.Flags) == 0 {
		fmt.Fprintln(w, "  "+mutedStyle.Render("none"))
	}
	for _, f := range res.Flags {
		fmt.Fprintf(w, "  %s\n", keyStyle.Render(f))
	}

	fmt.Fprintln(w, titleStyle.Render("options"))
	if len(res.Options) == 0 {
		fmt.Fprintln(w, "  "+mutedStyle.Render("none"))
	}
	for _, k := range maps.OrderedKeys(res.Options) {
		fmt.Fprintf(w, "  %s = %q\n", keyStyle.Render(k), res.Options[k])
	}
}
