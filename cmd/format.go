package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/witanlabs/cellref/ref"
)

var formatCmd = &cobra.Command{
	Use:   "format <row> <col> [<row2> <col2>]",
	Short: "Encode row and column numbers as an A1-style reference",
	Long: `Encode 1-based row and column numbers (R1C1 style) as canonical
A1-style text.

Behavior:
  - Two numbers encode a single reference, four numbers a range.
  - Every number must be between 1 and 2147483647.
  - Range corners are encoded in the order given, never reordered.

Use --json for machine-readable results.

Examples:
  cellref format 12 2          # B12
  cellref format 1 1 2 2       # A1:B2
  cellref --json format 1 27   # {"token": "AA1", ...}`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 && len(args) != 4 {
			return fmt.Errorf("expected <row> <col> or <row1> <col1> <row2> <col2>, got %d argument(s)", len(args))
		}
		return nil
	},
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

// formatArgs encodes 2 numbers as a reference or 4 as a range.
func formatArgs(args []string) (tokenResult, error) {
	nums := make([]int32, len(args))
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return tokenResult{}, fmt.Errorf("invalid number %q: must be a 32-bit integer", a)
		}
		nums[i] = int32(n)
	}

	if len(nums) == 2 {
		r := ref.Ref{Row: nums[0], Col: nums[1]}
		tok, err := ref.Format(r)
		if err != nil {
			return tokenResult{}, err
		}
		return tokenResult{Token: tok, Cell: &r}, nil
	}

	rg := ref.Range{
		From: ref.Ref{Row: nums[0], Col: nums[1]},
		To:   ref.Ref{Row: nums[2], Col: nums[3]},
	}
	tok, err := ref.FormatRange(rg)
	if err != nil {
		return tokenResult{}, err
	}
	return tokenResult{Token: tok, From: &rg.From, To: &rg.To}, nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	res, err := formatArgs(args)
	if err != nil {
		return err
	}

	if resolveJSON() {
		return jsonPrint(res)
	}
	fmt.Println(res.Token)
	return nil
}
