package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Decode a list of references, one per line",
	Long: `Decode A1-style references or ranges read one per line from a file,
or from stdin when no file is given.

Behavior:
  - Blank lines are skipped; surrounding whitespace is trimmed.
  - Each valid line prints tab-separated numbers: token, row, column
    (ranges print token and all four corner numbers).
  - Invalid lines are reported to stderr with their line number;
    processing continues. Returns exit code 2 when any line failed.

Use --json for an array of per-token results.

Examples:
  cellref convert refs.txt
  printf 'B12\nA1:B2\n' | cellref convert
  cellref --json convert refs.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// lineResult pairs a decoded token with the input line it came from.
type lineResult struct {
	Line int `json:"line"`
	tokenResult
}

// convertTokens decodes every non-blank line of r.
func convertTokens(r io.Reader) ([]lineResult, error) {
	var results []lineResult
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" {
			continue
		}
		results = append(results, lineResult{Line: line, tokenResult: decodeToken(tok)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return results, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot open file: %w", err)
		}
		defer f.Close()
		in = f
	}

	results, err := convertTokens(in)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}

	if resolveJSON() {
		if results == nil {
			results = []lineResult{}
		}
		if err := jsonPrint(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			switch {
			case res.Error != "":
				fmt.Fprintf(os.Stderr, "line %d: %s\n", res.Line, res.Error)
			case res.Cell != nil:
				fmt.Printf("%s\t%d\t%d\n", res.Token, res.Cell.Row, res.Cell.Col)
			default:
				fmt.Printf("%s\t%d\t%d\t%d\t%d\n", res.Token,
					res.From.Row, res.From.Col, res.To.Row, res.To.Col)
			}
		}
	}

	if failed > 0 {
		return &ExitError{Code: 2}
	}
	return nil
}
