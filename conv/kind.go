package conv

import "strings"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies a built-in converter by the name used in mapping
// definitions.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindString
	KindBool
	KindRune
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindTime
	KindDuration
	KindUUID
	KindBytes
	KindEnum

	// KindTotal is the number of kinds including the invalid zero value.
	KindTotal = int(iota)
)

var kindNames = map[string]Kind{
	"string":   KindString,
	"bool":     KindBool,
	"rune":     KindRune,
	"char":     KindRune,
	"int":      KindInt,
	"int8":     KindInt8,
	"int16":    KindInt16,
	"int32":    KindInt32,
	"int64":    KindInt64,
	"uint":     KindUint,
	"uint8":    KindUint8,
	"byte":     KindUint8,
	"uint16":   KindUint16,
	"uint32":   KindUint32,
	"uint64":   KindUint64,
	"float32":  KindFloat32,
	"float64":  KindFloat64,
	"decimal":  KindDecimal,
	"time":     KindTime,
	"duration": KindDuration,
	"uuid":     KindUUID,
	"guid":     KindUUID,
	"bytes":    KindBytes,
	"base64":   KindBytes,
	"enum":     KindEnum,
}

// KindFromName returns the kind for a mapping type name such as "int32" or
// "uuid". Matching ignores case.
func KindFromName(name string) (Kind, bool) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KindNames returns every accepted type name.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for name := range kindNames {
		names = append(names, name)
	}

	return names
}

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsNumber reports whether WithFormat accepts a numeric format for k.
func (k Kind) IsNumber() bool {
	return k.IsInteger() || k.IsFloat() || k == KindDecimal
}

// GoType returns the Go type of values converted by k's converter.
func (k Kind) GoType() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindRune:
		return "rune"
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64, KindEnum:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindDecimal:
		return "decimal.Decimal"
	case KindTime:
		return "time.Time"
	case KindDuration:
		return "time.Duration"
	case KindUUID:
		return "uuid.UUID"
	case KindBytes:
		return "[]byte"
	default:
		panic("conv: no Go type for " + k.String())
	}
}

// ImportPath returns the package that declares GoType, or "" for builtins.
func (k Kind) ImportPath() string {
	switch k {
	case KindDecimal:
		return "github.com/shopspring/decimal"
	case KindTime, KindDuration:
		return "time"
	case KindUUID:
		return "github.com/google/uuid"
	default:
		return ""
	}
}
