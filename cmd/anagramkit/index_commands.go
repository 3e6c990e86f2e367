package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"anagramkit/internal/config"
	"anagramkit/internal/textutil"
	"anagramkit/internal/wordindex"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Manage the persistent anagram index",
	}

	indexCmd.AddCommand(newIndexImportCommand(ctx))
	indexCmd.AddCommand(newIndexAddCommand(ctx))
	indexCmd.AddCommand(newIndexFindCommand(ctx))
	indexCmd.AddCommand(newIndexFamiliesCommand(ctx))
	indexCmd.AddCommand(newIndexStatsCommand(ctx))
	indexCmd.AddCommand(newIndexBatchesCommand(ctx))
	indexCmd.AddCommand(newIndexRemoveBatchCommand(ctx))
	indexCmd.AddCommand(newIndexClearCommand(ctx))

	return indexCmd
}

func newIndexImportCommand(ctx *commandContext) *cobra.Command {
	var minLength int

	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import every word found in text files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min-length") {
				minLength = cfg.Index.MinWordLength
			}

			return ctx.withStore(func(store *wordindex.Store) error {
				results := make([]*wordindex.ImportResult, 0, len(args))
				for _, arg := range args {
					path, err := config.ExpandPath(strings.TrimSpace(arg))
					if err != nil {
						return err
					}
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("read %s: %w", path, err)
					}
					words := textutil.Tokenize(string(data), minLength)
					result, err := store.Import(cmd.Context(), words, textutil.SourceLabel(path))
					if err != nil {
						return fmt.Errorf("import %s: %w", path, err)
					}
					results = append(results, result)
				}
				return printImportResults(cmd, ctx, results)
			})
		},
	}

	cmd.Flags().IntVar(&minLength, "min-length", 0, "Skip words shorter than this many characters (default from config)")
	return cmd
}

func newIndexAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add WORD...",
		Short: "Add words to the index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *wordindex.Store) error {
				result, err := store.Import(cmd.Context(), args, "cli")
				if err != nil {
					return fmt.Errorf("add words: %w", err)
				}
				return printImportResults(cmd, ctx, []*wordindex.ImportResult{result})
			})
		},
	}
}

func printImportResults(cmd *cobra.Command, ctx *commandContext, results []*wordindex.ImportResult) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, results)
	}
	out := cmd.OutOrStdout()
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			textutil.TitleFromLabel(r.Source),
			r.BatchID,
			strconv.Itoa(r.Inserted),
			strconv.Itoa(r.Duplicates),
			strconv.Itoa(r.Rejected),
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"Source", "Batch", "Inserted", "Duplicates", "Rejected"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
	))
	return nil
}

type findOutput struct {
	Word     string                  `json:"word"`
	Indexed  bool                    `json:"indexed"`
	Anagrams []wordindex.IndexedWord `json:"anagrams"`
}

func newIndexFindCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "find WORD",
		Short: "List indexed anagrams of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			return ctx.withStore(func(store *wordindex.Store) error {
				matches, err := store.Lookup(cmd.Context(), word)
				if err != nil {
					return err
				}
				indexed, err := store.Contains(cmd.Context(), word)
				if err != nil {
					return err
				}

				if ctx.jsonOutput() {
					if matches == nil {
						matches = []wordindex.IndexedWord{}
					}
					return writeJSON(cmd, findOutput{Word: word, Indexed: indexed, Anagrams: matches})
				}

				out := cmd.OutOrStdout()
				if len(matches) == 0 {
					fmt.Fprintf(out, "No anagrams of %q in the index\n", word)
					return nil
				}
				rows := make([][]string, 0, len(matches))
				for _, m := range matches {
					rows = append(rows, []string{
						m.Word,
						textutil.TitleFromLabel(m.Source),
						formatTime(m.CreatedAt),
					})
				}
				fmt.Fprintln(out, renderTable(out, []string{"Word", "Source", "Added"}, rows, nil))
				if !indexed {
					fmt.Fprintf(out, "%q itself is not indexed\n", word)
				}
				return nil
			})
		},
	}
}

func newIndexFamiliesCommand(ctx *commandContext) *cobra.Command {
	var minSize int

	cmd := &cobra.Command{
		Use:   "families",
		Short: "List anagram families in the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *wordindex.Store) error {
				families, err := store.Families(cmd.Context(), minSize)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, families)
				}
				out := cmd.OutOrStdout()
				if len(families) == 0 {
					fmt.Fprintln(out, "No anagram families found")
					return nil
				}
				fmt.Fprintln(out, renderFamilies(out, families))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&minSize, "min-size", 2, "Only show families with at least this many members")
	return cmd
}

func newIndexStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *wordindex.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, stats)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Index:      %s\n", store.Path())
				fmt.Fprintf(out, "Mode:       %s\n", stats.Mode)
				fmt.Fprintf(out, "Words:      %d\n", stats.Words)
				fmt.Fprintf(out, "Signatures: %d\n", stats.Signatures)
				fmt.Fprintf(out, "Families:   %d\n", stats.Families)
				fmt.Fprintf(out, "Batches:    %d\n", stats.Batches)
				return nil
			})
		},
	}
}

func newIndexBatchesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "batches",
		Short: "List past imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *wordindex.Store) error {
				batches, err := store.Batches(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					if batches == nil {
						batches = []wordindex.Batch{}
					}
					return writeJSON(cmd, batches)
				}
				out := cmd.OutOrStdout()
				if len(batches) == 0 {
					fmt.Fprintln(out, "No imports recorded")
					return nil
				}
				rows := make([][]string, 0, len(batches))
				for _, b := range batches {
					rows = append(rows, []string{
						b.ID,
						textutil.TitleFromLabel(b.Source),
						strconv.Itoa(b.Inserted),
						strconv.Itoa(b.Skipped),
						formatTime(b.CreatedAt),
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Batch", "Source", "Inserted", "Skipped", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newIndexRemoveBatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-batch BATCH_ID",
		Short: "Remove an import and the words it added",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			return ctx.withStore(func(store *wordindex.Store) error {
				removed, err := store.RemoveBatch(cmd.Context(), id)
				if err != nil {
					return err
				}
				if removed == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Batch %s removed no words\n", id)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d words from batch %s\n", removed, id)
				return nil
			})
		},
	}
}

func newIndexClearCommand(ctx *commandContext) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every word indexed under the current mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return errors.New("refusing to clear the index without --yes")
			}
			return ctx.withStore(func(store *wordindex.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Index cleared")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm clearing the index")
	return cmd
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
