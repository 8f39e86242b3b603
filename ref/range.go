package ref

import (
	"fmt"
	"strings"
)

// Range is a two-corner cell block like "A1:B2". Corners are kept in
// the order they were written; From is not forced to be the smaller
// corner and degenerate ranges (From == To) are allowed.
type Range struct {
	From Ref `json:"from"`
	To   Ref `json:"to"`
}

// ParseRange decodes a range token like "A1:B2". Both sides of the
// ':' must independently satisfy the reference grammar. A nil token
// fails with ErrAbsent; a missing separator, a side shorter than two
// characters, or a malformed side fails with ErrFormat.
func ParseRange(token *string) (Range, error) {
	if token == nil {
		return Range{}, fmt.Errorf("range: %w", ErrAbsent)
	}
	s := *token
	sep := strings.IndexByte(s, ':')
	if sep < 0 {
		return Range{}, fmt.Errorf("invalid range %q: missing ':' separator: %w", s, ErrFormat)
	}
	// Each side needs at least one letter and one digit.
	if sep < 2 || len(s)-sep-1 < 2 {
		return Range{}, fmt.Errorf("invalid range %q: each side needs at least 2 characters: %w", s, ErrFormat)
	}
	from, err := parse(s[:sep])
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	to, err := parse(s[sep+1:])
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	return Range{From: from, To: to}, nil
}

// FormatRange encodes rg as A1-style text like "A1:B2". Fails with
// ErrRange if any of the four numbers is below 1.
func FormatRange(rg Range) (string, error) {
	var buf [MaxRangeLen]byte
	b, err := AppendRange(buf[:0], rg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendRange encodes rg and appends the text to dst. Both corners are
// validated before anything is written; on failure dst is returned
// unmodified.
func AppendRange(dst []byte, rg Range) ([]byte, error) {
	if rg.From.Row < 1 || rg.From.Col < 1 || rg.To.Row < 1 || rg.To.Col < 1 {
		return dst, fmt.Errorf("cannot encode range (%d,%d)-(%d,%d): %w",
			rg.From.Row, rg.From.Col, rg.To.Row, rg.To.Col, ErrRange)
	}
	dst = appendRef(dst, rg.From)
	dst = append(dst, ':')
	return appendRef(dst, rg.To), nil
}
