package validator

import "strings"

// truncateDecimal rewrites a decimal text with at most digits fractional
// digits. It works on the text itself so that float64 rendering never
// changes digits the user typed.
func truncateDecimal(text, sep string, digits int) string {
	var sign string
	if text != "" && (text[0] == '+' || text[0] == '-') {
		sign, text = text[:1], text[1:]
	}

	integral, fraction, _ := strings.Cut(text, sep)
	if len(fraction) > digits {
		fraction = fraction[:digits]
	}
	fraction = strings.TrimRight(fraction, "0")

	if integral == "" {
		integral = "0"
	}
	if fraction == "" {
		return sign + integral
	}
	return sign + integral + sep + fraction
}
