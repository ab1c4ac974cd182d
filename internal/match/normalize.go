package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy comparison: words are split
// on separators and case changes, lowercased and joined.
// "Order_ID", "orderId" and "order-id" all normalize to "orderid".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase words.
func TokenizeIdent(s string) []string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return words
}

// splitWords splits s on separators and case transitions, keeping acronyms
// together: "getHTTPResponse" -> get, HTTP, Response.
func splitWords(s string) []string {
	if s == "" {
		return nil
	}

	var (
		words []string
		cur   []rune
	)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && len(cur) > 0 && wordBoundary(runes, i) {
			flush()
		}

		cur = append(cur, r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

func wordBoundary(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	switch {
	case unicode.IsDigit(r):
		return !unicode.IsDigit(prev)
	case unicode.IsDigit(prev):
		return unicode.IsUpper(r)
	case unicode.IsUpper(r) && unicode.IsLower(prev):
		return true
	case unicode.IsUpper(r) && unicode.IsUpper(prev):
		// end of an acronym: "XMLParser" splits before 'P'
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	default:
		return false
	}
}

var initialisms = map[string]bool{
	"api": true, "csv": true, "db": true, "guid": true, "html": true,
	"http": true, "id": true, "ip": true, "json": true, "sql": true,
	"uri": true, "url": true, "utc": true, "uuid": true, "xml": true,
}

// ExportedName derives an exported Go identifier from a property or column
// name: "order_id" -> "OrderID", "customer name" -> "CustomerName".
// Names that would start with a digit get an "X" prefix.
func ExportedName(s string) string {
	var sb strings.Builder

	for _, w := range splitWords(s) {
		w = strings.Map(identRune, w)
		if w == "" {
			continue
		}

		lower := strings.ToLower(w)
		if initialisms[lower] {
			sb.WriteString(strings.ToUpper(lower))
			continue
		}

		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		sb.WriteString(string(rs))
	}

	name := sb.String()

	switch {
	case name == "":
		return "X"
	case unicode.IsDigit([]rune(name)[0]):
		return "X" + name
	default:
		return name
	}
}

func identRune(r rune) rune {
	if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return r
	}

	return -1
}

// UnexportedName is ExportedName with a lowercase first word.
func UnexportedName(s string) string {
	name := ExportedName(s)

	words := splitWords(name)
	if len(words) == 0 {
		return "x"
	}

	first := words[0]
	if initialisms[strings.ToLower(first)] || first == strings.ToUpper(first) {
		return strings.ToLower(first) + name[len(first):]
	}

	rs := []rune(name)
	rs[0] = unicode.ToLower(rs[0])

	return string(rs)
}
