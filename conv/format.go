package conv

import (
	"strconv"
)

// numberFormat is a parsed numeric format string.
type numberFormat struct {
	verb byte // 'd', 'x', 'X', 'g', 'G', 'f', 'e', 'E'
	prec int  // -1 when omitted
}

func (f numberFormat) hex() bool { return f.verb == 'x' || f.verb == 'X' }

func parseFormatSpec(s string) (verb byte, prec int, err error) {
	if s == "" {
		return 0, -1, nil
	}

	verb = s[0]
	prec = -1

	if len(s) > 1 {
		prec, err = strconv.Atoi(s[1:])
		if err != nil || prec < 0 || prec > 99 {
			return 0, 0, NewConfigError("format", "%q has an invalid precision", s)
		}
	}

	return verb, prec, nil
}

func parseIntFormat(s string) (numberFormat, error) {
	verb, prec, err := parseFormatSpec(s)
	if err != nil {
		return numberFormat{}, err
	}

	switch verb {
	case 0, 'G', 'g', 'D', 'd':
		return numberFormat{verb: 'd', prec: prec}, nil
	case 'X', 'x':
		return numberFormat{verb: verb, prec: prec}, nil
	case 'R', 'r':
		return numberFormat{}, NewConfigError("format", "%q: round-trip format is not supported, the default format round-trips", s)
	default:
		return numberFormat{}, NewConfigError("format", "%q is not an integer format", s)
	}
}

func parseFloatFormat(s string) (numberFormat, error) {
	verb, prec, err := parseFormatSpec(s)
	if err != nil {
		return numberFormat{}, err
	}

	switch verb {
	case 0, 'G', 'g':
		if verb == 0 {
			verb = 'g'
		}

		return numberFormat{verb: verb, prec: prec}, nil
	case 'F', 'f':
		if prec < 0 {
			prec = 2
		}

		return numberFormat{verb: 'f', prec: prec}, nil
	case 'E', 'e':
		if prec < 0 {
			prec = 6
		}

		return numberFormat{verb: verb, prec: prec}, nil
	case 'R', 'r':
		return numberFormat{}, NewConfigError("format", "%q: round-trip format is not supported, the default format round-trips", s)
	case 'X', 'x', 'D', 'd':
		return numberFormat{}, NewConfigError("format", "%q requires an integer type", s)
	default:
		return numberFormat{}, NewConfigError("format", "%q is not a floating-point format", s)
	}
}

// pad left-pads digits with zeros to width, keeping a leading minus sign.
func pad(digits string, width int) string {
	neg := len(digits) > 0 && digits[0] == '-'
	if neg {
		digits = digits[1:]
	}

	if n := width - len(digits); n > 0 {
		buf := make([]byte, 0, width+1)
		if neg {
			buf = append(buf, '-')
		}

		for range n {
			buf = append(buf, '0')
		}

		return string(append(buf, digits...))
	}

	if neg {
		return "-" + digits
	}

	return digits
}
