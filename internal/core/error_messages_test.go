package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "nil", err: nil, wantCode: ""},
		{name: "not found", err: fmt.Errorf("%w: products.csv", ErrResourceNotFound), wantCode: "SRC001"},
		{name: "io failure", err: fmt.Errorf("%w: too large", ErrIOFailure), wantCode: "SRC002"},
		{
			name:     "field count",
			err:      &ParseError{Line: 3, Err: fmt.Errorf("%w: got 8, want 9", ErrFieldCount)},
			wantCode: "PRS001",
		},
		{
			name:     "invalid integer",
			err:      &ParseError{Line: 2, Column: "ID", Value: "x", Err: fmt.Errorf("%w: %q", ErrInvalidInteger, "x")},
			wantCode: "PRS002",
		},
		{
			name:     "invalid decimal",
			err:      &ParseError{Line: 2, Column: "Price", Err: ErrInvalidDecimal},
			wantCode: "PRS003",
		},
		{
			name:     "invalid date",
			err:      &ParseError{Line: 2, Column: "Created", Err: ErrInvalidDate},
			wantCode: "PRS004",
		},
		{
			name:     "other parse failure",
			err:      &ParseError{Line: 2, Err: errors.New("odd row")},
			wantCode: "PRS000",
		},
		{name: "unknown", err: context.Canceled, wantCode: "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.wantCode)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	err := &ParseError{Line: 4, Column: "Price", Value: "$5", Err: ErrInvalidDecimal}
	got := FormatUserError(err)
	for _, want := range []string{"Invalid price", `line 4, column "Price"`, "PRS003"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatUserError() = %q, missing %q", got, want)
		}
	}

	got = FormatUserError(fmt.Errorf("%w: products.csv", ErrResourceNotFound))
	if !strings.Contains(got, "SRC001") || strings.Contains(got, "line") {
		t.Errorf("FormatUserError(not found) = %q", got)
	}
}

func TestUserError(t *testing.T) {
	if NewUserError(nil) != nil {
		t.Fatal("NewUserError(nil) should be nil")
	}

	tech := fmt.Errorf("%w: opening products.csv", ErrIOFailure)
	uerr := NewUserError(tech)

	if uerr.Error() != "Product file could not be read" {
		t.Errorf("Error() = %q", uerr.Error())
	}
	if !errors.Is(uerr, ErrIOFailure) {
		t.Error("UserError should unwrap to the technical error")
	}
}

func TestParseError(t *testing.T) {
	err := &ParseError{Line: 5, Column: "Stock", Value: "ten", Err: ErrInvalidInteger}

	if !errors.Is(err, ErrParseFailure) {
		t.Error("ParseError should match ErrParseFailure")
	}
	if !errors.Is(err, ErrInvalidInteger) {
		t.Error("ParseError should match its cause")
	}
	want := `parse failure: line 5: column "Stock": invalid integer`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	rowErr := &ParseError{Line: 2, Err: ErrFieldCount}
	if rowErr.Error() != "parse failure: line 2: wrong field count" {
		t.Errorf("Error() = %q", rowErr.Error())
	}
}
