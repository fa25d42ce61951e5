// Package matcher recognises game names that already carry a bracketed game ID.
package matcher

import (
	"path/filepath"
	"regexp"
	"strings"
)

// IDLength is the number of characters in a game ID
const IDLength = 6

// idSuffix matches a name ending in a bracketed 6-character word token, e.g. "Title [GALE01]"
var idSuffix = regexp.MustCompile(`^.*\[(\w{6})\]$`)

// MatchID reports whether name ends in a "[XXXXXX]" game ID and returns the ID.
// The same predicate is used for folder names and for image file stems.
func MatchID(name string) (string, bool) {
	m := idSuffix.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FolderName builds the normalized "<title> [<id>]" name
func FolderName(title, id string) string {
	return title + " [" + id + "]"
}

// Ext returns the last dot-suffix of name, including the dot
func Ext(name string) string {
	return filepath.Ext(name)
}

// Stem returns name without its last dot-suffix
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
