package cmd

import (
	"fmt"

	"github.com/mazzegi/strbox/strx"
	"github.com/spf13/cobra"
)

// textCmd wires a string transformation taking the joined arguments.
func textCmd(use, short string, fnc func(s string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TEXT...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := fnc(joinArgs(args))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newTextCmds() []*cobra.Command {
	var lower bool
	caseCmd := textCmd("case", "Proper-case every word", func(s string) (string, error) {
		return strx.ProperCase(s, lower)
	})
	caseCmd.Flags().BoolVar(&lower, "lower", false, "lower-case the text first")

	var (
		length      int
		placeholder string
	)
	shortenCmd := textCmd("shorten", "Cut the text after --length characters", func(s string) (string, error) {
		return strx.Shorten(s, length, placeholder)
	})
	shortenCmd.Flags().IntVar(&length, "length", 20, "number of characters to keep")
	shortenCmd.Flags().StringVar(&placeholder, "placeholder", strx.DefaultPlaceholder, "appended to shortened text")

	var size int
	chunkCmd := &cobra.Command{
		Use:   "chunk TEXT...",
		Short: "Split the text into pieces of --size characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chunks, err := strx.Chunks(joinArgs(args), size)
			if err != nil {
				return err
			}
			for _, c := range chunks {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	chunkCmd.Flags().IntVar(&size, "size", 2000, "characters per chunk")

	emojiCountCmd := &cobra.Command{
		Use:   "emoji-count TEXT...",
		Short: "Count custom chat emoji in the text",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strx.CountCustomEmoji(joinArgs(args)))
		},
	}

	return []*cobra.Command{
		caseCmd,
		shortenCmd,
		chunkCmd,
		emojiCountCmd,
		textCmd("mock", "Alternate the case of the text", strx.Mock),
		textCmd("emojify", "Replace letters and digits by emoji names", strx.Emojify),
		textCmd("abbrev", "Abbreviate the words of the text", strx.Abbreviate),
		textCmd("scramble", "Shuffle the characters of the text", func(s string) (string, error) {
			return strx.Scramble(s, nil)
		}),
	}
}
