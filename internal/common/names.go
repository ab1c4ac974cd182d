package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is the name printed for values outside an enumeration.
const UnknownStr = "unknown"

// ImportName returns the name a package is referred to by when imported
// from importPath without an alias: "gopkg.in/yaml.v3" -> "yaml",
// "github.com/go-viper/mapstructure/v2" -> "mapstructure".
// Returns empty string if importPath is empty.
func ImportName(importPath string) string {
	if importPath == "" {
		return ""
	}

	base := path.Base(importPath)
	if isMajorVersion(base) {
		base = path.Base(path.Dir(importPath))
	}

	if i := strings.LastIndex(base, ".v"); i > 0 && isMajorVersion(base[i+1:]) {
		base = base[:i]
	}

	base = strings.TrimPrefix(base, "go-")
	base = strings.TrimSuffix(strings.TrimSuffix(base, "-go"), ".go")

	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return -1
	}, base)
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	return strings.Trim(s[1:], "0123456789") == ""
}
