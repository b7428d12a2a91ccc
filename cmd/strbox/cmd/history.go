package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mazzegi/log"
	"github.com/mazzegi/strbox/errorx"
	"github.com/mazzegi/strbox/history"
	"github.com/mazzegi/strbox/jsonx"
	"github.com/spf13/cobra"
)

func (a *app) newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded parse results",
	}
	c.AddCommand(
		a.newHistoryListCmd(),
		a.newHistoryShowCmd(),
		a.newHistoryDiffCmd(),
		a.newHistoryImportCmd(),
		a.newHistoryExportCmd(),
	)
	return c
}

func (a *app) withStore(fnc func(s *history.Store) error) error {
	s, err := history.Open(a.cfg.DB)
	if err != nil {
		return fmt.Errorf("open-history: %w", err)
	}
	defer s.Close()
	return fnc(s)
}

func (a *app) newHistoryListCmd() *cobra.Command {
	var limit int
	c := &cobra.Command{
		Use:   "list",
		Short: "List recorded lines, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *history.Store) error {
				recs, err := s.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if len(recs) == 0 {
					fmt.Fprintln(w, mutedStyle.Render("no records"))
					return nil
				}
				for _, rec := range recs {
					fmt.Fprintf(w, "%s  %s  %s\n",
						keyStyle.Render(rec.ID),
						mutedStyle.Render(rec.CreatedOn.Local().Format(time.DateTime)),
						rec.Line)
				}
				return nil
			})
		},
	}
	c.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of records; -1 lists all")
	return c
}

func (a *app) newHistoryShowCmd() *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "show ID",
		Short: "Show a recorded line and its parse result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *history.Store) error {
				rec, err := s.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if asJSON {
					return jsonx.Write(w, rec, true)
				}
				fmt.Fprintf(w, "%s %s\n", keyStyle.Render("line:"), rec.Line)
				writeResult(w, rec.Result)
				return nil
			})
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	return c
}

func (a *app) newHistoryDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff ID_A ID_B",
		Short: "Show how the parse result changed between two records",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *history.Store) error {
				cl, err := s.Diff(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if len(cl) == 0 {
					fmt.Fprintln(w, mutedStyle.Render("no changes"))
					return nil
				}
				for _, ch := range cl {
					fmt.Fprintf(w, "%-7s %s: %v -> %v\n",
						ch.Type, keyStyle.Render(strings.Join(ch.Path, ".")), ch.From, ch.To)
				}
				return nil
			})
		},
	}
}

func (a *app) newHistoryImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Record every non-empty line of FILE (- reads stdin)",
		Long: `Record every non-empty line of FILE. A FILE ending in .json is read as the output
of "history export" and its lines are recorded again. Failing lines are reported
and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return a.withStore(func(s *history.Store) error {
				errs := errorx.NewGroup()
				n := 0
				for i, line := range lines {
					if _, err := s.Add(cmd.Context(), line); err != nil {
						printError(cmd, "line "+strconv.Itoa(i+1), err)
						errs.Append(fmt.Errorf("line %d: %w", i+1, err))
						continue
					}
					n++
				}
				log.Infof("history: imported %d lines (%d failed)", n, errs.Len())
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d lines\n", n)
				return errs.Err()
			})
		},
	}
}

// readLines returns the trimmed non-empty lines of file, or the lines of the records in a .json export.
func readLines(stdin io.Reader, file string) ([]string, error) {
	if strings.HasSuffix(file, ".json") {
		recs, err := jsonx.DecodeFile[[]history.Record](file)
		if err != nil {
			return nil, err
		}
		lines := make([]string, 0, len(recs))
		for _, rec := range recs {
			lines = append(lines, rec.Line)
		}
		return lines, nil
	}

	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %q: %w", file, err)
	}
	return lines, nil
}

func (a *app) newHistoryExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write all records as JSON, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *history.Store) error {
				recs, err := s.List(cmd.Context(), -1)
				if err != nil {
					return err
				}
				slices.Reverse(recs)
				if err := jsonx.EncodeFile(args[0], recs, true); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d records\n", len(recs))
				return nil
			})
		},
	}
}
