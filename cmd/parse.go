package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/witanlabs/cellref/ref"
)

var parseCmd = &cobra.Command{
	Use:   "parse <ref|range>...",
	Short: "Decode A1-style references into row and column numbers",
	Long: `Decode A1-style cell references or two-corner ranges into 1-based
row and column numbers (R1C1 style).

Behavior:
  - Tokens containing ':' are decoded as ranges, anything else as a
    single reference.
  - References are uppercase column letters followed by row digits,
    nothing else: no $ markers, no sheet names, no whitespace.
  - Range corners are reported exactly as written; a "reversed" range
    like B2:A1 is not reordered.
  - Invalid tokens are reported to stderr; the remaining tokens are
    still decoded. Returns exit code 2 when any token was invalid.

Use --json for machine-readable results.

Examples:
  cellref parse B12
  cellref parse A1:B2
  cellref parse A1 ZZ100000 AA100:AZ1000
  cellref --json parse B12`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// tokenResult is the outcome of decoding one token. Exactly one of
// Cell or From/To is set on success; Error is set on failure.
type tokenResult struct {
	Token string   `json:"token"`
	Cell  *ref.Ref `json:"cell,omitempty"`
	From  *ref.Ref `json:"from,omitempty"`
	To    *ref.Ref `json:"to,omitempty"`
	Error string   `json:"error,omitempty"`
}

// decodeToken decodes a single token, as a range when it contains ':'.
func decodeToken(tok string) tokenResult {
	res := tokenResult{Token: tok}
	if strings.ContainsRune(tok, ':') {
		rg, err := ref.ParseRange(&tok)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.From = &rg.From
		res.To = &rg.To
		return res
	}
	r, err := ref.Parse(&tok)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Cell = &r
	return res
}

func (res tokenResult) humanLine() string {
	switch {
	case res.Cell != nil:
		return fmt.Sprintf("%-12s row %d, column %d", res.Token, res.Cell.Row, res.Cell.Col)
	case res.From != nil:
		return fmt.Sprintf("%-12s row %d, column %d to row %d, column %d",
			res.Token, res.From.Row, res.From.Col, res.To.Row, res.To.Col)
	default:
		return fmt.Sprintf("%-12s invalid", res.Token)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	results := make([]tokenResult, 0, len(args))
	failed := 0
	for _, tok := range args {
		res := decodeToken(tok)
		if res.Error != "" {
			failed++
		}
		results = append(results, res)
	}

	if resolveJSON() {
		if err := jsonPrint(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Error != "" {
				fmt.Fprintf(os.Stderr, "error: %s\n", res.Error)
				continue
			}
			fmt.Println(res.humanLine())
		}
	}

	if failed > 0 {
		return &ExitError{Code: 2}
	}
	return nil
}
