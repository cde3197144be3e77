package reward

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// VoucherCode builds prefix + the first two letters of each name part, uppercased.
// Short or missing name parts contribute fewer letters; nothing is padded. Letters
// whose upper case expands (ß → SS) are truncated, so each part yields at most two.
func VoucherCode(prefix, firstName, lastName string) string {
	var sb strings.Builder

	sb.WriteString(upper.String(strings.TrimSpace(prefix)))
	sb.WriteString(initials(firstName))
	sb.WriteString(initials(lastName))

	return sb.String()
}

func initials(name string) string {
	letters := make([]rune, 0, 2)

	for _, r := range name {
		if !unicode.IsLetter(r) {
			continue
		}

		for _, u := range upper.String(string(r)) {
			letters = append(letters, u)
			if len(letters) == 2 {
				return string(letters)
			}
		}
	}

	return string(letters)
}
