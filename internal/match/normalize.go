package match

import "strings"

var punctuation = strings.NewReplacer(
	"-", "",
	".", "",
	",", "",
	"'", "",
	`"`, "",
)

// Normalize lowercases a card name, strips the punctuation that card
// names commonly carry and collapses runs of whitespace. It is
// idempotent; the index and incoming queries must go through the same
// function or matching silently degrades.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = punctuation.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
