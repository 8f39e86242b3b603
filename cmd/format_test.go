package cmd

import (
	"testing"
)

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "single cell", args: []string{"12", "2"}, want: "B12"},
		{name: "first cell", args: []string{"1", "1"}, want: "A1"},
		{name: "wide column", args: []string{"1", "2147483647"}, want: "FXSHRXW1"},
		{name: "range", args: []string{"1", "1", "2", "2"}, want: "A1:B2"},
		{name: "degenerate range", args: []string{"5", "3", "5", "3"}, want: "C5:C5"},
		{name: "reversed range stays", args: []string{"2", "2", "1", "1"}, want: "B2:A1"},
		{name: "zero row", args: []string{"0", "1"}, wantErr: true},
		{name: "zero col", args: []string{"1", "0"}, wantErr: true},
		{name: "negative", args: []string{"-3", "1"}, wantErr: true},
		{name: "bad second corner", args: []string{"1", "1", "0", "2"}, wantErr: true},
		{name: "not a number", args: []string{"one", "1"}, wantErr: true},
		{name: "overflows int32", args: []string{"2147483648", "1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := formatArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v, got %q", tt.args, res.Token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %v: %v", tt.args, err)
			}
			if res.Token != tt.want {
				t.Errorf("formatArgs(%v) = %q, want %q", tt.args, res.Token, tt.want)
			}
		})
	}
}
