// Package textutil cleans display strings coming out of the store.
package textutil

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// StripPictographs removes emoji and other decorative pictograph runes from
// s and trims any whitespace they leave at the edges. Category names in the
// money-manager store carry leading emoji that must never reach tables or
// chart labels.
func StripPictographs(s string) string {
	return strings.TrimSpace(gomoji.RemoveEmojis(s))
}
