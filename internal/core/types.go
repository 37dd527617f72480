package core

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product is one parsed row of the catalog CSV.
// Values are created by the parser and never modified afterwards.
type Product struct {
	ID            int
	Name          string
	Description   string
	CategoryID    int
	Price         decimal.Decimal
	StockQuantity int
	ImageURL      string
	CreatedAt     time.Time // date only, UTC midnight
	UpdatedAt     time.Time // date only, UTC midnight
}

// String returns a compact fixed-width line with the id, name, price and
// stock of the product.
func (p Product) String() string {
	return fmt.Sprintf("| %-5d | %-20s | %-8s | %-5d |",
		p.ID, p.Name, p.Price.StringFixed(2), p.StockQuantity)
}

// Reader loads the raw text of the product resource.
type Reader interface {
	Read(ctx context.Context) (string, error)
}

// Parser turns raw CSV text into products, in input order.
type Parser interface {
	Parse(ctx context.Context, text string) ([]Product, error)
}

// Renderer writes products to its output. It must not modify the slice.
type Renderer interface {
	Render(ctx context.Context, products []Product) error
}

// FieldSpec describes one positional column of the product CSV and how it
// is laid out in the rendered table.
type FieldSpec struct {
	Name     string // Header label in the rendered table
	Width    int    // Cell width in runes
	Truncate bool   // Over-width values are shortened with "..."
}
