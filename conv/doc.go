// Package conv provides typed, bidirectional converters between CSV field
// text and Go values.
//
// A Converter never fails when formatting and reports parse failures through
// TryParse. The Parse helper applies the converter's error policy: when the
// converter is throwing, a failed parse yields a *FormatError, otherwise the
// converter's default value is substituted. Blank input (empty or
// whitespace-only) means "the column has no data" and always yields the
// default value.
//
// # Converters
//
//   - String, Bool, Rune
//   - Int[T] for every signed and unsigned integer type
//   - Float[T] for float32 and float64
//   - Decimal (github.com/shopspring/decimal)
//   - Time, Duration
//   - UUID (github.com/google/uuid)
//   - Bytes (standard base64)
//   - Enum[T] for named integer constants
//   - Custom[T] for a parse/format function pair
//
// # Decorators
//
// Decorators wrap a converter and keep its Throwing flag:
//
//   - Nullable: T -> *T, a failed or blank parse yields nil
//   - NullMarker: T -> any, blank fields read as DBNull
//   - Hex: integer converters formatted and parsed as hexadecimal
//   - Slice: []T joined and split on a non-empty separator
//
// # Numeric formats
//
// Numeric converters accept a small format language through WithFormat:
//
//	""  or G[n]   general (shortest round-trip for floats)
//	D[n]          decimal integer, zero padded to n digits
//	X[n] / x[n]   hexadecimal integer, upper or lower case
//	F[n]          fixed-point float with n decimals (default 2)
//	E[n] / e[n]   exponent float with n decimals (default 6)
//
// The round-trip specifier R is rejected: the default format already
// round-trips. Construction errors are always returned, regardless of
// the Throwing flag.
package conv
