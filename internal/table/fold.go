package table

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain decomposes, drops combining marks, then recomposes: "Muñoz"
// becomes "munoz" after lowercasing. Built once; transform.String is
// stateless per call.
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics. If the transform fails on a
// malformed value, the lowercased string is returned so matching degrades
// to plain case-insensitive comparison.
func Fold(s string) string {
	lower := strings.ToLower(s)
	folded, _, err := transform.String(foldChain, lower)
	if err != nil {
		return lower
	}
	return folded
}
