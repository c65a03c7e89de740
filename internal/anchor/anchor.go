// Package anchor turns heading text into in-page fragment identifiers.
package anchor

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is returned when nothing of the input survives sanitising.
const Fallback = "sect1"

// rejectedChars matches every character that is not allowed in an anchor id.
var rejectedChars = regexp.MustCompile("[<>\"$#%&+,/:;=?@\\[\\]^`{|}~')(\\\\]")

// Anchorize lowercases text, turns spaces into underscores and strips the
// characters that are unsafe in URLs and HTML attributes. The result is never
// empty. Anchorize does not de-duplicate ids across headings.
func Anchorize(text string) string {
	// Casers are stateful, so one per call.
	id := cases.Lower(language.Und).String(text)
	id = strings.ReplaceAll(id, " ", "_")
	id = rejectedChars.ReplaceAllLiteralString(id, "")
	if id == "" {
		return Fallback
	}
	return id
}
