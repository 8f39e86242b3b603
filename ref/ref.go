// Package ref converts spreadsheet cell references between A1-style
// text ("B12") and 1-based row/column number pairs (R1C1 style).
// Column letters are bijective base-26: A=1, Z=26, AA=27, ZZ=702.
//
// All functions are pure and safe for concurrent use. Rows and columns
// are valid from 1 through 2147483647.
package ref

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Maximum encoded sizes. A 32-bit column needs at most 7 letters
// ("FXSHRXW") and a 32-bit row at most 10 digits.
const (
	MaxRefLen   = 7 + 10
	MaxRangeLen = 2*MaxRefLen + 1
)

var (
	// ErrAbsent reports a nil token, as opposed to an empty one.
	ErrAbsent = errors.New("absent input")
	// ErrFormat reports text that does not match the reference grammar.
	ErrFormat = errors.New("malformed reference")
	// ErrRange reports a row or column number below 1 passed to an encoder.
	ErrRange = errors.New("row and column must be at least 1")
)

// Ref is a cell position. Row and Col are 1-based.
type Ref struct {
	Row int32 `json:"row"`
	Col int32 `json:"col"`
}

// Parse decodes an A1-style token like "B12" into a Ref. The token
// must be one or more uppercase letters immediately followed by one or
// more digits, nothing else. A nil token fails with ErrAbsent; any
// grammar violation fails with ErrFormat.
func Parse(token *string) (Ref, error) {
	if token == nil {
		return Ref{}, fmt.Errorf("reference: %w", ErrAbsent)
	}
	return parse(*token)
}

func parse(s string) (Ref, error) {
	// The column run ends at the first byte that is not an uppercase
	// letter; everything after it must be digits. No backtracking, so
	// interleaved forms like "A1B2" are rejected outright.
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return Ref{}, fmt.Errorf("invalid reference %q: must start with column letters: %w", s, ErrFormat)
	}
	if i == len(s) {
		return Ref{}, fmt.Errorf("invalid reference %q: missing row digits: %w", s, ErrFormat)
	}
	col, err := parseColumn(s[:i])
	if err != nil {
		return Ref{}, fmt.Errorf("invalid reference %q: %w", s, err)
	}
	row, err := parseRow(s[i:])
	if err != nil {
		return Ref{}, fmt.Errorf("invalid reference %q: %w", s, err)
	}
	return Ref{Row: row, Col: col}, nil
}

// parseColumn decodes a bijective base-26 letter run. The caller
// guarantees every byte is 'A'–'Z'.
func parseColumn(letters string) (int32, error) {
	var n int64
	for i := 0; i < len(letters); i++ {
		n = n*26 + int64(letters[i]-'A'+1)
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("column %q exceeds the 32-bit limit: %w", letters, ErrFormat)
		}
	}
	return int32(n), nil
}

// parseRow decodes a decimal digit run into a 1-based row number.
func parseRow(digits string) (int32, error) {
	var n int64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("unexpected character %q in row digits: %w", c, ErrFormat)
		}
		n = n*10 + int64(c-'0')
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("row %q exceeds the 32-bit limit: %w", digits, ErrFormat)
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("row 0 is outside the 1-based domain: %w", ErrFormat)
	}
	return int32(n), nil
}

// Format encodes r as canonical A1-style text, e.g. Ref{Row: 12, Col: 2}
// becomes "B12". Fails with ErrRange if either number is below 1.
func Format(r Ref) (string, error) {
	var buf [MaxRefLen]byte
	b, err := Append(buf[:0], r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Append encodes r and appends the text to dst, returning the extended
// slice. Validation and failure semantics are identical to Format; on
// failure dst is returned unmodified.
func Append(dst []byte, r Ref) ([]byte, error) {
	if r.Row < 1 || r.Col < 1 {
		return dst, fmt.Errorf("cannot encode row %d, column %d: %w", r.Row, r.Col, ErrRange)
	}
	return appendRef(dst, r), nil
}

// appendRef writes the column letters then the row digits. The caller
// guarantees both numbers are at least 1.
func appendRef(dst []byte, r Ref) []byte {
	dst = appendColumn(dst, r.Col)
	return strconv.AppendInt(dst, int64(r.Row), 10)
}

// appendColumn writes n as bijective base-26 letters, most significant
// first. Every n >= 1 has exactly one such representation.
func appendColumn(dst []byte, n int32) []byte {
	var scratch [7]byte
	i := len(scratch)
	for n > 0 {
		n--
		i--
		scratch[i] = byte(n%26) + 'A'
		n /= 26
	}
	return append(dst, scratch[i:]...)
}
