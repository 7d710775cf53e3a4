// Package converter defines the capability that turns one raw command token
// into a typed value. Converters never panic on malformed input; a bad token
// is reported through the error return, with a message suitable for sending
// straight back to the caller.
package converter

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Converter converts a single raw token. On failure the returned error
// carries a user-facing message and the value is nil.
type Converter func(arg string) (any, error)

// String passes the token through unchanged. It never fails.
var String Converter = func(arg string) (any, error) {
	return arg, nil
}

// Bool accepts "true" and "false", case-insensitively. Anything else fails.
var Bool Converter = func(arg string) (any, error) {
	switch strings.ToLower(arg) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, conversionError(arg, "boolean")
}

// Int converts to the platform int type.
var Int Converter = func(arg string) (any, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, conversionError(arg, "integer")
	}
	return n, nil
}

// Int8 converts to int8, failing on overflow.
var Int8 Converter = func(arg string) (any, error) {
	n, err := strconv.ParseInt(arg, 10, 8)
	if err != nil {
		return nil, conversionError(arg, "8-bit integer")
	}
	return int8(n), nil
}

// Int16 converts to int16, failing on overflow.
var Int16 Converter = func(arg string) (any, error) {
	n, err := strconv.ParseInt(arg, 10, 16)
	if err != nil {
		return nil, conversionError(arg, "16-bit integer")
	}
	return int16(n), nil
}

// Int32 converts to int32, failing on overflow.
var Int32 Converter = func(arg string) (any, error) {
	n, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return nil, conversionError(arg, "32-bit integer")
	}
	return int32(n), nil
}

// Int64 converts to int64, failing on overflow.
var Int64 Converter = func(arg string) (any, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil, conversionError(arg, "64-bit integer")
	}
	return n, nil
}

// Float32 converts to float32.
var Float32 Converter = func(arg string) (any, error) {
	f, err := strconv.ParseFloat(arg, 32)
	if err != nil {
		return nil, conversionError(arg, "32-bit float")
	}
	return float32(f), nil
}

// Float64 converts to float64.
var Float64 Converter = func(arg string) (any, error) {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, conversionError(arg, "64-bit float")
	}
	return f, nil
}

// BigInt converts to *big.Int in base 10.
var BigInt Converter = func(arg string) (any, error) {
	n, ok := new(big.Int).SetString(arg, 10)
	if !ok {
		return nil, conversionError(arg, "arbitrary-precision integer")
	}
	return n, nil
}

// BigFloat converts to *big.Float.
var BigFloat Converter = func(arg string) (any, error) {
	f, ok := new(big.Float).SetString(arg)
	if !ok {
		return nil, conversionError(arg, "arbitrary-precision decimal")
	}
	return f, nil
}

// Array builds a converter that splits the token by delimiter and converts
// each part with element, in order. The first failing element aborts the
// whole conversion and its message is propagated unchanged. Trailing empty
// parts are dropped; a token made only of delimiters yields an empty slice,
// not an error. Successful conversion yields []any.
func Array(element Converter, delimiter string) Converter {
	return func(arg string) (any, error) {
		parts := strings.Split(arg, delimiter)
		for len(parts) > 0 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}

		values := make([]any, 0, len(parts))
		for _, part := range parts {
			v, err := element(part)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}
}

func conversionError(arg, kind string) error {
	return fmt.Errorf("the provided value '%s' cannot be converted to a %s", arg, kind)
}
