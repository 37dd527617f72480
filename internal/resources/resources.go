// Package resources bundles the product catalog shipped inside the binary.
// The file name read at runtime comes from config (CATALOG_RESOURCE).
package resources

import "embed"

// FS holds the bundled catalog.
//
//go:embed products.csv
var FS embed.FS
