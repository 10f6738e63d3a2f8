package text

import "unicode"

// VisualWord returns a word in left-to-right display order. PDF text
// operators paint codepoints left to right, so an Arabic word has to be
// handed over reversed. Digits and Latin letters embedded in the word keep
// their own order.
func VisualWord(word string) string {
	if !ContainsRTL(word) {
		return word
	}
	runes := []rune(word)
	out := make([]rune, 0, len(runes))
	for i := len(runes) - 1; i >= 0; {
		if isWeakLTR(runes[i]) {
			// keep a trailing number or Latin span in logical order
			j := i
			for j > 0 && isWeakLTR(runes[j-1]) {
				j--
			}
			out = append(out, runes[j:i+1]...)
			i = j - 1
			continue
		}
		out = append(out, mirror(runes[i]))
		i--
	}
	return string(out)
}

// VisualLine reverses the order of tokens laid out on a right-to-left line
// and converts each token to display order.
func VisualLine(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[len(tokens)-1-i] = VisualWord(t)
	}
	return out
}

func isWeakLTR(r rune) bool {
	return (unicode.IsDigit(r) && !IsRTLRune(r)) || (r < 0x0590 && unicode.IsLetter(r))
}

func mirror(r rune) rune {
	switch r {
	case '(':
		return ')'
	case ')':
		return '('
	case '[':
		return ']'
	case ']':
		return '['
	case '{':
		return '}'
	case '}':
		return '{'
	case '<':
		return '>'
	case '>':
		return '<'
	}
	return r
}
