package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"anagramkit/internal/anagram"
)

type checkOutput struct {
	Left            string  `json:"left"`
	Right           *string `json:"right"`
	NormalizedLeft  string  `json:"normalized_left"`
	NormalizedRight *string `json:"normalized_right"`
	Mode            string  `json:"mode"`
	Strategy        string  `json:"strategy"`
	Anagrams        bool    `json:"anagrams"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check TEXT [TEXT]",
		Short: "Report whether two texts are anagrams",
		Long: "Report whether two texts are anagrams of each other. Case and any\n" +
			"character dropped by the normalization mode are ignored. A missing\n" +
			"second text is treated as absent and never matches.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := ctx.checker()
			if err != nil {
				return err
			}

			left := args[0]
			var right *string
			if len(args) == 2 {
				right = &args[1]
			}
			matched := checker.Check(&left, right)

			if ctx.jsonOutput() {
				result := checkOutput{
					Left:           left,
					Right:          right,
					NormalizedLeft: anagram.Normalize(left, checker.Mode),
					Mode:           string(checker.Mode),
					Strategy:       string(checker.Strategy),
					Anagrams:       matched,
				}
				if right != nil {
					normalized := anagram.Normalize(*right, checker.Mode)
					result.NormalizedRight = &normalized
				}
				return writeJSON(cmd, result)
			}

			if matched {
				fmt.Fprintln(cmd.OutOrStdout(), "anagrams")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "not anagrams")
			}
			return nil
		},
	}
}

type normalizeOutput struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Signature  string `json:"signature"`
}

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize TEXT...",
		Short: "Show normalized forms and signatures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mode := cfg.Mode()

			results := make([]normalizeOutput, 0, len(args))
			for _, arg := range args {
				results = append(results, normalizeOutput{
					Input:      arg,
					Normalized: anagram.Normalize(arg, mode),
					Signature:  anagram.Signature(arg, mode),
				})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					strconv.Quote(r.Input),
					r.Normalized,
					r.Signature,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Input", "Normalized", "Signature"}, rows, nil))
			return nil
		},
	}
}
