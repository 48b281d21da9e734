package validate

import (
	"regexp"
	"strings"
)

// emailShape is a conventional local@domain.tld check. No DNS or mailbox
// verification is attempted.
var emailShape = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailShape.MatchString(s)
}

// phoneStrip removes the separators tolerated in phone numbers.
var phoneStrip = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// ValidPhone reports whether s, after stripping spaces, hyphens and
// parentheses, is 7 to 15 digits.
func ValidPhone(s string) bool {
	t := phoneStrip.Replace(s)
	if len(t) < 7 || len(t) > 15 {
		return false
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	return true
}
