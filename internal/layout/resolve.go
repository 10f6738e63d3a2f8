package layout

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/parser/css"
	htmlparser "github.com/Walidelmasri/MemoGeneratorV1/internal/parser/html"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// Resolve decides the writing direction and alignment of a block-level node.
//
// Direction: dir attribute, then inline direction style, then script
// inference over the node's full text, then left-to-right.
// Alignment: inline text-align, then the legacy align attribute, then the
// direction default. Each fallback node (typically the enclosing list) is
// consulted for explicit values after n and before inference.
func Resolve(n *html.Node, fallbacks ...*html.Node) (Alignment, text.Direction) {
	dir, ok := explicitDirection(n)
	for _, f := range fallbacks {
		if ok {
			break
		}
		dir, ok = explicitDirection(f)
	}
	if !ok {
		dir = text.DirectionOf(htmlparser.TextContent(n))
	}

	align, ok := explicitAlignment(n)
	for _, f := range fallbacks {
		if ok {
			break
		}
		align, ok = explicitAlignment(f)
	}
	if !ok {
		align = DefaultAlignment(dir)
	}
	return align, dir
}

func explicitDirection(n *html.Node) (text.Direction, bool) {
	if n == nil {
		return text.LeftToRight, false
	}
	if v, ok := htmlparser.Attr(n, "dir"); ok {
		if d, ok := text.ParseDirection(v); ok {
			return d, true
		}
	}
	if v, ok := htmlparser.Attr(n, "style"); ok {
		if d, ok := text.ParseDirection(css.ParseInline(v).Direction); ok {
			return d, true
		}
	}
	return text.LeftToRight, false
}

func explicitAlignment(n *html.Node) (Alignment, bool) {
	if n == nil {
		return "", false
	}
	if v, ok := htmlparser.Attr(n, "style"); ok {
		if a := css.ParseInline(v).TextAlign; a != "" {
			return Alignment(a), true
		}
	}
	if v, ok := htmlparser.Attr(n, "align"); ok {
		if v = strings.ToLower(strings.TrimSpace(v)); css.IsAlignment(v) {
			return Alignment(v), true
		}
	}
	return "", false
}

// IsBlank reports whether a block carries no visible content: its text is
// empty once whitespace (including no-break and zero-width spaces) is
// removed and it holds no list or table. The editor's canonical empty line
// <p><br></p> is blank.
func IsBlank(n *html.Node) bool {
	if strings.TrimFunc(htmlparser.TextContent(n), isBlankRune) != "" {
		return false
	}
	return !htmlparser.HasDescendant(n, "table", "ul", "ol", "li")
}

func isBlankRune(r rune) bool {
	return unicode.IsSpace(r) || r == '\u200b' || r == '\ufeff'
}

// IsBlankText reports whether s is empty or whitespace only.
func IsBlankText(s string) bool {
	return strings.TrimFunc(s, isBlankRune) == ""
}
