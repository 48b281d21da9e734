// Package validate contains the field validators for bound column roles:
// the checksum-based national ID (RUT), email shape and phone shape. All
// functions are pure; prompting and error reporting live in the CLI layer.
package validate

import (
	"regexp"
	"strings"
)

// rutShape matches a normalized RUT: 7-8 digits plus one check character.
var rutShape = regexp.MustCompile(`^[0-9]{7,8}[0-9K]$`)

// rutWeights is the cyclic weight sequence applied to the digits from
// least-significant to most-significant.
var rutWeights = []int{2, 3, 4, 5, 6, 7}

// NormalizeRUT strips dots, hyphens and whitespace and uppercases the
// check character. Idempotent.
func NormalizeRUT(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '.' || r == '-' || r == ' ' || r == '\t':
			continue
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatRUT returns the canonical storage form: body, hyphen, check
// character, with no other separators. Values too short to split are
// returned unchanged.
func FormatRUT(s string) string {
	rn := NormalizeRUT(s)
	if len(rn) < 2 {
		return s
	}
	return rn[:len(rn)-1] + "-" + rn[len(rn)-1:]
}

// rutCheckDigit computes the expected check character for a digit-only
// body: weighted sum of the reversed digits, then 11 - (sum mod 11),
// mapping 10 to 'K' and 11 to '0'.
func rutCheckDigit(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[len(body)-1-i] - '0')
		sum += d * rutWeights[i%len(rutWeights)]
	}
	switch m := 11 - sum%11; m {
	case 10:
		return 'K'
	case 11:
		return '0'
	default:
		return byte('0' + m)
	}
}

// ValidRUT reports whether s, after normalization, has the expected shape
// and a matching check character. The empty string is invalid: the ID is
// mandatory whenever its role is bound.
func ValidRUT(s string) bool {
	rn := NormalizeRUT(s)
	if !rutShape.MatchString(rn) {
		return false
	}
	return rutCheckDigit(rn[:len(rn)-1]) == rn[len(rn)-1]
}
