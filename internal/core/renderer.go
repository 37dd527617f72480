package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JonMunkholm/prodtable/internal/logging"
)

// ellipsis marks a truncated cell.
const ellipsis = "..."

// TableRenderer writes products as a bordered fixed-width ASCII table laid
// out by Columns. The output assumes a monospace display.
type TableRenderer struct {
	out io.Writer
}

// NewTableRenderer creates a renderer writing to out; nil selects os.Stdout.
func NewTableRenderer(out io.Writer) *TableRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TableRenderer{out: out}
}

// Render writes the border, header, one line per product and a closing
// border. The table is assembled first and written with a single call.
func (r *TableRenderer) Render(ctx context.Context, products []Product) error {
	var b strings.Builder

	border := borderLine()
	header := make([]string, len(Columns))
	for i, col := range Columns {
		header[i] = col.Name
	}

	b.WriteString(border)
	b.WriteString(formatLine(header))
	b.WriteString(border)
	for _, p := range products {
		b.WriteString(formatLine(productCells(p)))
	}
	b.WriteString(border)

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	logging.FromContext(ctx).Debug("table rendered", "rows", len(products))
	return nil
}

// productCells returns the display values of p in column order, truncated
// where the column asks for it.
func productCells(p Product) []string {
	cells := make([]string, len(Columns))
	cells[colID] = strconv.Itoa(p.ID)
	cells[colName] = p.Name
	cells[colDescription] = p.Description
	cells[colCategoryID] = strconv.Itoa(p.CategoryID)
	cells[colPrice] = p.Price.StringFixed(2)
	cells[colStockQuantity] = strconv.Itoa(p.StockQuantity)
	cells[colImageURL] = p.ImageURL
	cells[colCreatedAt] = p.CreatedAt.Format(time.DateOnly)
	cells[colUpdatedAt] = p.UpdatedAt.Format(time.DateOnly)

	for i, col := range Columns {
		if col.Truncate {
			cells[i] = Truncate(cells[i], col.Width)
		}
	}
	return cells
}

// formatLine pads each cell to its column width: "| a | b |\n".
// Cells wider than their column are written in full.
func formatLine(cells []string) string {
	var b strings.Builder
	b.WriteString("|")
	for i, cell := range cells {
		fmt.Fprintf(&b, " %-*s |", Columns[i].Width, cell)
	}
	b.WriteString("\n")
	return b.String()
}

// borderLine returns "+----+---...+\n" matching the column widths.
func borderLine() string {
	var b strings.Builder
	b.WriteString("+")
	for _, col := range Columns {
		b.WriteString(strings.Repeat("-", col.Width+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
	return b.String()
}

// Truncate shortens s to width runes, replacing the tail with "...".
// Values at or under width are returned unchanged.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return string(runes[:width])
	}
	return string(runes[:width-len(ellipsis)]) + ellipsis
}
