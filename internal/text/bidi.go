package text

import "strings"

// Direction represents text direction
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// String returns the HTML dir attribute value for d.
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection maps "ltr"/"rtl" (any case) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rtl":
		return RightToLeft, true
	case "ltr":
		return LeftToRight, true
	}
	return LeftToRight, false
}

// Script classifies a run of text for font selection.
type Script int

const (
	Latin Script = iota
	Arabic
)

func (s Script) String() string {
	if s == Arabic {
		return "arabic"
	}
	return "latin"
}

// IsRTLRune reports whether r lies in the Arabic, Arabic Supplement or
// Arabic Extended-A blocks.
func IsRTLRune(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF)
}

// ContainsRTL checks if a string contains right-to-left text
func ContainsRTL(s string) bool {
	for _, r := range s {
		if IsRTLRune(r) {
			return true
		}
	}
	return false
}

// Classify returns Arabic when s contains any right-to-left codepoint.
func Classify(s string) Script {
	if ContainsRTL(s) {
		return Arabic
	}
	return Latin
}

// DirectionOf infers a direction purely from script content.
func DirectionOf(s string) Direction {
	if ContainsRTL(s) {
		return RightToLeft
	}
	return LeftToRight
}
