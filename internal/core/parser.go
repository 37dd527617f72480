package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonMunkholm/prodtable/internal/logging"
)

// ContextCheckInterval is how often (in rows) the parser checks for
// context cancellation.
var ContextCheckInterval = 100

// CSVParser parses the product CSV: one header line, then one product per
// line with nine comma-separated fields. Quoting is not supported, so a
// comma inside a value shifts the fields and fails the row.
type CSVParser struct {
	// SkipTrailingBlank drops empty lines after the last data row instead of
	// failing on them. Blank lines between data rows always fail.
	SkipTrailingBlank bool
}

// NewCSVParser creates a parser.
func NewCSVParser(skipTrailingBlank bool) *CSVParser {
	return &CSVParser{SkipTrailingBlank: skipTrailingBlank}
}

// Parse converts text into products in input order. The first line is
// discarded without looking at it. Any bad row fails the whole input and no
// products are returned.
func (p *CSVParser) Parse(ctx context.Context, text string) ([]Product, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	if p.SkipTrailingBlank {
		for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			lines = lines[:len(lines)-1]
		}
	}

	if len(lines) <= 1 {
		return []Product{}, nil
	}

	products := make([]Product, 0, len(lines)-1)
	for i, line := range lines[1:] {
		lineNum := i + 2 // 1-based, after the header

		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("parse cancelled at line %d: %w", lineNum, err)
			}
		}

		product, err := parseRow(lineNum, strings.Split(line, ","))
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	logging.FromContext(ctx).Debug("records parsed", "count", len(products))

	return products, nil
}

// parseRow converts the fields of one data line.
func parseRow(lineNum int, fields []string) (Product, error) {
	if len(fields) != len(Columns) {
		return Product{}, &ParseError{
			Line: lineNum,
			Err:  fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), len(Columns)),
		}
	}

	fail := func(col int, err error) error {
		return &ParseError{
			Line:   lineNum,
			Column: Columns[col].Name,
			Value:  CleanCell(fields[col]),
			Err:    err,
		}
	}

	var (
		p   Product
		err error
	)

	if p.ID, err = ToInt(fields[colID]); err != nil {
		return Product{}, fail(colID, err)
	}
	p.Name = CleanCell(fields[colName])
	p.Description = CleanCell(fields[colDescription])
	if p.CategoryID, err = ToInt(fields[colCategoryID]); err != nil {
		return Product{}, fail(colCategoryID, err)
	}
	if p.Price, err = ToDecimal(fields[colPrice]); err != nil {
		return Product{}, fail(colPrice, err)
	}
	if p.StockQuantity, err = ToInt(fields[colStockQuantity]); err != nil {
		return Product{}, fail(colStockQuantity, err)
	}
	p.ImageURL = CleanCell(fields[colImageURL])
	if p.CreatedAt, err = ToDate(fields[colCreatedAt]); err != nil {
		return Product{}, fail(colCreatedAt, err)
	}
	if p.UpdatedAt, err = ToDate(fields[colUpdatedAt]); err != nil {
		return Product{}, fail(colUpdatedAt, err)
	}

	return p, nil
}
