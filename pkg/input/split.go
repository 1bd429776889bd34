package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// DefaultParagraphBoundaries are the suffixes that end a paragraph record:
// a blank line, with or without a carriage return.
var DefaultParagraphBoundaries = []string{"\n\n", "\n\r\n"}

// Splitter decides where one record ends and the next begins.
type Splitter interface {
	// Split reads the next record from src into buf and advances line.
	// It returns false when the stream holds no further record.
	Split(src *Source, line *int, buf *bytes.Buffer) (bool, error)

	// Prepare returns the text handed to the decoder for a raw record.
	Prepare(record string) string

	// ReportLine maps the cursor line to the line printed in diagnostics.
	ReportLine(line int) int
}

// LinePolicy treats every physical line as one record.
// Surrounding whitespace, including the line terminator, is trimmed before decoding.
type LinePolicy struct{}

// Split reads exactly one line.
func (LinePolicy) Split(src *Source, line *int, buf *bytes.Buffer) (bool, error) {
	text, err := src.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	*line++
	buf.WriteString(text)
	return true, nil
}

// Prepare trims the record.
func (LinePolicy) Prepare(record string) string {
	return strings.TrimSpace(record)
}

// ReportLine returns the line just read.
func (LinePolicy) ReportLine(line int) int {
	return line
}

// ParagraphPolicy groups lines into one record up to and including the next
// blank line, or up to the end of the stream. Records are not trimmed.
type ParagraphPolicy struct {
	// Boundaries overrides DefaultParagraphBoundaries when set.
	Boundaries []string
}

// Split accumulates lines until a boundary suffix appears or a read returns nothing.
func (p ParagraphPolicy) Split(src *Source, line *int, buf *bytes.Buffer) (bool, error) {
	for buf.Len() == 0 || !p.atBoundary(buf.Bytes()) {
		*line++
		text, err := src.ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		if text == "" {
			break
		}
		buf.WriteString(text)
	}
	return buf.Len() > 0, nil
}

// Prepare returns the record unchanged.
func (ParagraphPolicy) Prepare(record string) string {
	return record
}

// ReportLine points at the boundary line: the cursor has already moved past it.
func (ParagraphPolicy) ReportLine(line int) int {
	return line - 1
}

func (p ParagraphPolicy) atBoundary(b []byte) bool {
	boundaries := p.Boundaries
	if len(boundaries) == 0 {
		boundaries = DefaultParagraphBoundaries
	}
	for _, boundary := range boundaries {
		if bytes.HasSuffix(b, []byte(boundary)) {
			return true
		}
	}
	return false
}
