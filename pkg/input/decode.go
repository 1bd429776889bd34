package input

import (
	"encoding"
	"strconv"
	"strings"
)

// String returns the record as is.
func String(record string) (string, error) {
	return record, nil
}

// Int decodes a base-10 int.
func Int(record string) (int, error) {
	return strconv.Atoi(record)
}

// Int64 decodes a base-10 int64.
func Int64(record string) (int64, error) {
	return strconv.ParseInt(record, 10, 64)
}

// Uint64 decodes a base-10 uint64.
func Uint64(record string) (uint64, error) {
	return strconv.ParseUint(record, 10, 64)
}

// Binary decodes a string of 0s and 1s.
func Binary(record string) (uint64, error) {
	return strconv.ParseUint(record, 2, 64)
}

// Trimmed strips surrounding whitespace before calling decode.
func Trimmed[T any](decode DecodeFunc[T]) DecodeFunc[T] {
	return func(record string) (T, error) {
		return decode(strings.TrimSpace(record))
	}
}

// Separated decodes a list of values joined by sep, e.g. "3,4,3,1,2".
// The first element that fails to decode fails the whole record.
func Separated[T any](sep string, decode DecodeFunc[T]) DecodeFunc[[]T] {
	return func(record string) ([]T, error) {
		parts := strings.Split(record, sep)
		values := make([]T, 0, len(parts))
		for _, part := range parts {
			v, err := decode(part)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}
}

// Text decodes records into any type whose pointer implements
// encoding.TextUnmarshaler.
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() DecodeFunc[T] {
	return func(record string) (T, error) {
		var v T
		err := PT(&v).UnmarshalText([]byte(record))
		return v, err
	}
}
