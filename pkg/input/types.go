// Package input turns puzzle input files into lazy sequences of typed values.
//
// A Sequence pulls one record at a time from a Source, decodes it and hands
// the value to the caller. Records that fail to decode are reported on a
// diagnostics writer and skipped; they never end the run.
package input

import (
	"context"
	"fmt"
)

// DecodeFunc converts the raw text of one record into a value.
// The returned error message ends up in the diagnostic line for the record.
type DecodeFunc[T any] func(record string) (T, error)

// Iterator provides sequential access to decoded records.
// Implementations are not safe for concurrent use.
type Iterator[T any] interface {
	// Next returns the next decoded value.
	// Returns io.EOF when no more values are available.
	Next(ctx context.Context) (T, error)

	// Close releases any resources held by the iterator.
	Close() error
}

// Diagnostic describes a record that could not be decoded.
type Diagnostic struct {
	// Source is the human-readable name of the input.
	Source string

	// Line is the 1-based line number reported for the record.
	Line int

	// Err is the decode error.
	Err error

	// Record is the raw record text.
	Record string
}

// String renders the diagnostic as "<source>:<line>: <error> for <record>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %v for %q", d.Source, d.Line, d.Err, d.Record)
}
