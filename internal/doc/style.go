package doc

import "strconv"

// ListStyle enumerates the marker styles an orderedList can record.
type ListStyle string

const (
	ListStyleNumber     ListStyle = "number"
	ListStyleLowerAlpha ListStyle = "lower-alpha"
	ListStyleUpperAlpha ListStyle = "upper-alpha"
)

const alphabetSize = 26

func ListStyles() []ListStyle {
	return []ListStyle{ListStyleNumber, ListStyleLowerAlpha, ListStyleUpperAlpha}
}

func (s ListStyle) Valid() bool {
	switch s {
	case ListStyleNumber, ListStyleLowerAlpha, ListStyleUpperAlpha:
		return true
	default:
		return false
	}
}

// Marker renders the marker text for the item with absolute 1-based index n.
// Alphabetic styles wrap around after z/Z.
func (s ListStyle) Marker(n int) string {
	switch s {
	case ListStyleLowerAlpha:
		return string(rune('a' + (n-1)%alphabetSize))
	case ListStyleUpperAlpha:
		return string(rune('A' + (n-1)%alphabetSize))
	default:
		return strconv.Itoa(n)
	}
}

// AlphaValue maps a marker letter to its 1-based index: a/A=1 … z/Z=26.
// Returns 0 for anything that is not an ASCII letter.
func AlphaValue(letter byte) int {
	switch {
	case letter >= 'a' && letter <= 'z':
		return int(letter-'a') + 1
	case letter >= 'A' && letter <= 'Z':
		return int(letter-'A') + 1
	default:
		return 0
	}
}
