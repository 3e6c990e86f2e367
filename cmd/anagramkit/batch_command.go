package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"anagramkit/internal/batch"
	"anagramkit/internal/config"
)

type batchOutput struct {
	Mode    string             `json:"mode"`
	Total   int                `json:"total"`
	Matched int                `json:"matched"`
	Results []batch.PairResult `json:"results"`
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var onlyMatches bool

	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Check pairs from a file or stdin",
		Long: "Check one pair per line. Fields are separated by a tab, or by a comma\n" +
			"when the line has no tab. Blank lines and lines starting with # are\n" +
			"skipped. A line with a single field has an absent right side.\n" +
			"Use - or omit FILE to read stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			input, closeInput, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			results, err := batch.Run(cmd.Context(), input, batch.Options{
				Checker: cfg.Checker(),
				Workers: cfg.Batch.Workers,
				Logger:  logger,
			})
			if err != nil {
				return fmt.Errorf("check pairs: %w", err)
			}
			total, matched := batch.Summary(results)

			if onlyMatches {
				filtered := results[:0]
				for _, r := range results {
					if r.Anagrams {
						filtered = append(filtered, r)
					}
				}
				results = filtered
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, batchOutput{
					Mode:    cfg.Anagram.Mode,
					Total:   total,
					Matched: matched,
					Results: results,
				})
			}

			out := cmd.OutOrStdout()
			if len(results) > 0 {
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{
						strconv.Itoa(r.Line),
						r.Left,
						displayOptional(r.Right),
						yesNo(r.Anagrams),
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Line", "Left", "Right", "Anagrams"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
			}
			fmt.Fprintf(out, "%d pairs checked, %d anagrams\n", total, matched)
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyMatches, "only-matches", false, "Only list pairs that are anagrams")
	return cmd
}

// openInput returns the file named by args[0], or stdin when args is empty or "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	path, err := config.ExpandPath(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}
