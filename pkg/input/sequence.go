package input

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"go.uber.org/zap"
)

type state int

const (
	stateReady state = iota
	stateYielding
	stateExhausted
)

// Option configures a Sequence.
type Option func(*settings)

type settings struct {
	diagnostics io.Writer
	logger      *zap.Logger
}

// WithDiagnostics sets where skipped-record diagnostics are written.
// Defaults to os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(s *settings) {
		s.diagnostics = w
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// Sequence is a lazy, fault-tolerant stream of decoded records.
// It reads one record per step, never more, and closes its Source once it
// reaches the end of the stream.
type Sequence[T any] struct {
	src      *Source
	splitter Splitter
	decode   DecodeFunc[T]

	diagnostics io.Writer
	logger      *zap.Logger

	buf     bytes.Buffer
	line    int
	state   state
	skipped int
	err     error
}

var _ Iterator[int] = (*Sequence[int])(nil)

// NewSequence creates a sequence over src using the given splitting policy.
func NewSequence[T any](src *Source, splitter Splitter, decode DecodeFunc[T], opts ...Option) *Sequence[T] {
	cfg := settings{
		diagnostics: os.Stderr,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sequence[T]{
		src:         src,
		splitter:    splitter,
		decode:      decode,
		diagnostics: cfg.diagnostics,
		logger:      cfg.logger,
		state:       stateReady,
	}
}

// Lines decodes one record per line of src.
func Lines[T any](src *Source, decode DecodeFunc[T], opts ...Option) *Sequence[T] {
	return NewSequence(src, LinePolicy{}, decode, opts...)
}

// Paragraphs decodes one record per blank-line separated block of src.
func Paragraphs[T any](src *Source, decode DecodeFunc[T], opts ...Option) *Sequence[T] {
	return NewSequence(src, ParagraphPolicy{}, decode, opts...)
}

// OpenLines opens path and returns a line sequence over it.
func OpenLines[T any](path string, decode DecodeFunc[T], opts ...Option) (*Sequence[T], error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	return Lines(src, decode, opts...), nil
}

// OpenParagraphs opens path and returns a paragraph sequence over it.
func OpenParagraphs[T any](path string, decode DecodeFunc[T], opts ...Option) (*Sequence[T], error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	return Paragraphs(src, decode, opts...), nil
}

// ParseString returns a line sequence over data.
func ParseString[T any](data string, decode DecodeFunc[T], opts ...Option) *Sequence[T] {
	return Lines(FromString(data), decode, opts...)
}

// ParseParagraphString returns a paragraph sequence over data.
func ParseParagraphString[T any](data string, decode DecodeFunc[T], opts ...Option) *Sequence[T] {
	return Paragraphs(FromString(data), decode, opts...)
}

// Next returns the next decoded value, skipping records that fail to decode.
// Returns io.EOF once the stream is exhausted, and on every call after that.
// A read error is returned once; the sequence is exhausted afterwards.
func (s *Sequence[T]) Next(ctx context.Context) (T, error) {
	var zero T

	for {
		if s.state == stateExhausted {
			return zero, io.EOF
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		s.buf.Reset()
		more, err := s.splitter.Split(s.src, &s.line, &s.buf)
		if err != nil {
			s.finish()
			return zero, fmt.Errorf("reading %s: %w", s.src.Name(), err)
		}
		if !more {
			s.finish()
			return zero, io.EOF
		}

		record := s.splitter.Prepare(s.buf.String())
		v, err := s.decode(record)
		if err != nil {
			s.report(Diagnostic{
				Source: s.src.Name(),
				Line:   s.splitter.ReportLine(s.line),
				Err:    err,
				Record: record,
			})
			continue
		}

		s.state = stateYielding
		return v, nil
	}
}

// All returns an iterator for use with range. The source is closed when the
// loop ends, including on break. A read error stops the loop and is
// available from Err.
func (s *Sequence[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer s.Close()
		for {
			v, err := s.Next(ctx)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					s.err = err
				}
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains the sequence into a slice.
func (s *Sequence[T]) Collect(ctx context.Context) ([]T, error) {
	defer s.Close()

	var values []T
	for {
		v, err := s.Next(ctx)
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
}

// Err returns the error that stopped the last All loop, if any.
func (s *Sequence[T]) Err() error {
	return s.err
}

// Skipped returns the number of records discarded so far.
func (s *Sequence[T]) Skipped() int {
	return s.skipped
}

// Close abandons the sequence and releases the source.
func (s *Sequence[T]) Close() error {
	s.state = stateExhausted
	return s.src.Close()
}

func (s *Sequence[T]) finish() {
	s.state = stateExhausted
	if err := s.src.Close(); err != nil {
		s.logger.Warn("closing input", zap.String("source", s.src.Name()), zap.Error(err))
	}
}

func (s *Sequence[T]) report(d Diagnostic) {
	s.skipped++
	_, _ = fmt.Fprintln(s.diagnostics, d.String())
	s.logger.Debug("skipping malformed record",
		zap.String("source", d.Source),
		zap.Int("line", d.Line),
		zap.Error(d.Err))
}
