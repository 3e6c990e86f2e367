package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"anagramkit/internal/anagram"
	"anagramkit/internal/textutil"
)

func newGroupCommand(ctx *commandContext) *cobra.Command {
	var words []string
	var minSize int

	cmd := &cobra.Command{
		Use:   "group [FILE]",
		Short: "Group words into anagram families",
		Long: "Group words into families that share a signature. Words come from\n" +
			"--words when given, otherwise from FILE or stdin, split on any\n" +
			"character that is not a letter or digit.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if len(words) == 0 {
				input, closeInput, err := openInput(cmd, args)
				if err != nil {
					return err
				}
				data, err := io.ReadAll(input)
				closeInput()
				if err != nil {
					return fmt.Errorf("read words: %w", err)
				}
				words = textutil.UniqueTokens(string(data), 1)
			}

			families := anagram.FilterFamilies(anagram.Group(words, cfg.Mode()), minSize)

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
		},
	}

	cmd.Flags().StringSliceVarP(&words, "words", "w", nil, "Words to group (comma separated or repeated)")
	cmd.Flags().IntVar(&minSize, "min-size", 2, "Only show families with at least this many members")
	return cmd
}

func renderFamilies(out io.Writer, families []anagram.Family) string {
	rows := make([][]string, 0, len(families))
	for _, fam := range families {
		rows = append(rows, []string{
			fam.Signature,
			strconv.Itoa(fam.Size()),
			strings.Join(fam.Members, ", "),
		})
	}
	return renderTable(out,
		[]string{"Signature", "Size", "Members"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	)
}
