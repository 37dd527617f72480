// Package core implements the product table pipeline.
//
// A run is three stages wired explicitly by the caller:
//
//  1. [ResourceReader] loads a named CSV from an fs.FS (the embedded bundle
//     in production) and decodes it as UTF-8.
//  2. [CSVParser] drops the header line and turns every remaining line into a
//     [Product], converting the nine positional fields described by [Columns].
//  3. [TableRenderer] writes the records as a bordered fixed-width table.
//
// [ProductProvider] composes the first two stages and [Pipeline] runs the
// provider followed by the renderer, once.
//
// # Error Handling
//
// Failures never produce partial output. Resource and content failures
// match exactly one of the sentinel kinds via errors.Is:
//
//   - [ErrResourceNotFound]: the named resource does not exist
//   - [ErrIOFailure]: the resource exists but could not be read
//   - [ErrParseFailure]: a row has the wrong shape or an unconvertible field
//
// Parse failures are reported as [*ParseError] with the line number and
// column name. [MapError] turns any error into a [UserMessage] with a
// support code (SRC001, PRS002, ...); cancellation maps to ERR000.
package core
