package dmbc

import (
	"strconv"
	"strings"
)

// maxFractionDigits bounds the fractional part so the denominator
// 10^digits fits a uint64 (10^20 overflows, so 19 is the largest safe
// exponent). The mantissa is range-checked separately when parsed.
const maxFractionDigits = 19

var pow10Table = [maxFractionDigits + 1]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// parseDecimalRatio parses the grammar D+ ('.' D*)? into
// (numerator, denominator), where denominator = 10^(fractional digit
// count). The numerator is the decimal value of the digits with the
// dot removed, so "0.1" -> (1, 10) and "0.999999" -> (999999, 1000000).
// Negative values, exponents, and surrounding whitespace are rejected.
func parseDecimalRatio(s string) (numerator, denominator uint64, err *Error) {
	if s == "" {
		return 0, 0, newError(KindInvalidDecimal, "decimal string is empty")
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		rest := s[dot+1:]
		if strings.IndexByte(rest, '.') >= 0 {
			return 0, 0, newError(KindInvalidDecimal, "%q has more than one decimal point", s)
		}
		fracPart = rest
	}

	if intPart == "" {
		return 0, 0, newError(KindInvalidDecimal, "%q is missing an integer part", s)
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return 0, 0, newError(KindInvalidDecimal, "%q contains a non-digit character", s)
	}
	if len(fracPart) > maxFractionDigits {
		return 0, 0, newError(KindInvalidDecimal, "%q has more than %d fractional digits", s, maxFractionDigits)
	}

	mantissa := intPart + fracPart
	num, perr := strconv.ParseUint(mantissa, 10, 64)
	if perr != nil {
		return 0, 0, newError(KindInvalidDecimal, "%q overflows a 64-bit mantissa", s)
	}

	return num, pow10Table[len(fracPart)], nil
}
