// Package sanitize reduces untrusted editor markup to the small tag and
// attribute subset the layout engine understands.
//
// Sanitization runs in two passes. Script-like elements (script, style,
// title and friends) are unwrapped first, since bluemonday would otherwise
// drop them along with their text. The raw string then goes through a
// bluemonday policy, which drops comments and any attribute outside the
// allow-list. The result is parsed
// with golang.org/x/net/html and handed to Clean, which enforces the same
// allow-list on the tree, unwraps whatever is left over, clamps table spans
// and rewrites styles to a canonical form. Clean is idempotent.
package sanitize

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/parser/css"
	htmlparser "github.com/Walidelmasri/MemoGeneratorV1/internal/parser/html"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// AllowedTags is the fixed element allow-list.
var AllowedTags = []string{
	"p", "br",
	"b", "strong", "i", "em", "u",
	"ol", "ul", "li",
	"div", "span",
	"table", "thead", "tbody", "tr", "th", "td",
}

// skippedContent lists the elements bluemonday would remove along with their
// children. They are unwrapped like any other disallowed element.
var skippedContent = []string{
	"frame", "frameset", "iframe", "noembed", "noframes", "noscript",
	"nostyle", "object", "script", "style", "title",
}

var skipped = func() map[string]bool {
	m := make(map[string]bool, len(skippedContent))
	for _, t := range skippedContent {
		m[t] = true
	}
	return m
}()

// Span limits for table cells.
const (
	MinColSpan = 2
	MaxColSpan = 50
	MinRowSpan = 2
	MaxRowSpan = 200
)

var (
	allowed = func() map[string]bool {
		m := make(map[string]bool, len(AllowedTags))
		for _, t := range AllowedTags {
			m[t] = true
		}
		return m
	}()

	alignPattern = regexp.MustCompile(`(?i)^\s*(left|right|center|justify)\s*$`)
	dirPattern   = regexp.MustCompile(`(?i)^\s*(ltr|rtl)\s*$`)
	spanPattern  = regexp.MustCompile(`^\s*[0-9]+\s*$`)

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func markupPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements(AllowedTags...)
		// bluemonday drops these together with their text by default
		p.AllowElementsContent(skippedContent...)
		p.AllowNoAttrs().OnElements(AllowedTags...)
		p.AllowAttrs("dir").Matching(dirPattern).Globally()
		p.AllowAttrs("align").Matching(alignPattern).Globally()
		p.AllowAttrs("colspan", "rowspan").Matching(spanPattern).OnElements("td", "th")
		p.AllowStyles("text-align").Matching(alignPattern).Globally()
		p.AllowStyles("direction").Matching(dirPattern).Globally()
		policy = p
	})
	return policy
}

// Sanitize parses raw markup and returns the cleaned tree rooted at a
// synthetic <body> element. It never fails: markup the parser rejects is
// kept as a single text node.
func Sanitize(raw string) *html.Node {
	filtered := markupPolicy().Sanitize(unwrapSkipped(raw))
	doc, err := htmlparser.NewParser().ParseString(filtered)
	if err != nil {
		root := htmlparser.NewElement("body")
		root.AppendChild(htmlparser.NewText(filtered))
		return root
	}
	Clean(doc.Root)
	return doc.Root
}

// unwrapSkipped splices the children of script-like elements into their
// parents so their text reaches the policy as ordinary escaped text.
func unwrapSkipped(raw string) string {
	if !strings.Contains(raw, "<") {
		return raw
	}
	doc, err := htmlparser.NewParser().ParseString(raw)
	if err != nil {
		return raw
	}
	unwrapContent(doc.Root)
	out, err := doc.Render()
	if err != nil {
		return raw
	}
	return out
}

func unwrapContent(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if skipped[htmlparser.Tag(c)] {
			if first := unwrap(n, c); first != nil {
				next = first
			}
		} else {
			unwrapContent(c)
		}
		c = next
	}
}

// String sanitizes raw markup and serializes the result.
func String(raw string) string {
	out, err := htmlparser.RenderChildren(Sanitize(raw))
	if err != nil {
		return ""
	}
	return out
}

// Clean enforces the allow-list on the children of root in place.
// Disallowed elements are replaced by their children, comments and doctypes
// are removed, and surviving elements keep only recognized attributes.
func Clean(root *html.Node) {
	if root == nil {
		return
	}
	for c := root.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.CommentNode, html.DoctypeNode:
			root.RemoveChild(c)
		case html.ElementNode:
			tag := strings.ToLower(c.Data)
			if !allowed[tag] {
				first := unwrap(root, c)
				if first != nil {
					// revisit the spliced children in place
					next = first
				}
				break
			}
			c.Data = tag
			c.Attr = filterAttrs(tag, c.Attr)
			Clean(c)
		}
		c = next
	}
}

// unwrap splices n's children into parent at n's position, removes n and
// returns the first spliced child.
func unwrap(parent, n *html.Node) *html.Node {
	first := n.FirstChild
	for ch := n.FirstChild; ch != nil; {
		next := ch.NextSibling
		n.RemoveChild(ch)
		parent.InsertBefore(ch, n)
		ch = next
	}
	parent.RemoveChild(n)
	return first
}

func filterAttrs(tag string, attrs []html.Attribute) []html.Attribute {
	var (
		style            css.InlineStyle
		dir, align       string
		colspan, rowspan string
	)
	cell := tag == "td" || tag == "th"

	for _, a := range attrs {
		if a.Namespace != "" {
			continue
		}
		switch strings.ToLower(a.Key) {
		case "style":
			s := css.ParseInline(a.Val)
			if s.TextAlign != "" {
				style.TextAlign = s.TextAlign
			}
			if s.Direction != "" {
				style.Direction = s.Direction
			}
		case "dir":
			if d, ok := text.ParseDirection(a.Val); ok {
				dir = d.String()
			}
		case "align":
			if v := strings.ToLower(strings.TrimSpace(a.Val)); css.IsAlignment(v) {
				align = v
			}
		case "colspan":
			if cell {
				colspan = clampSpan(a.Val, MinColSpan, MaxColSpan)
			}
		case "rowspan":
			if cell {
				rowspan = clampSpan(a.Val, MinRowSpan, MaxRowSpan)
			}
		}
	}

	var out []html.Attribute
	if !style.IsZero() {
		out = append(out, html.Attribute{Key: "style", Val: style.String()})
	}
	for _, kv := range [][2]string{{"dir", dir}, {"align", align}, {"colspan", colspan}, {"rowspan", rowspan}} {
		if kv[1] != "" {
			out = append(out, html.Attribute{Key: kv[0], Val: kv[1]})
		}
	}
	return out
}

// clampSpan returns the canonical decimal form of v when it is purely
// numeric and within [lo, hi], otherwise "".
func clampSpan(v string, lo, hi int) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return ""
		}
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		return ""
	}
	return strconv.Itoa(n)
}

// Span returns the numeric colspan/rowspan of a sanitized cell, defaulting to 1.
func Span(n *html.Node, key string) int {
	v, ok := htmlparser.Attr(n, key)
	if !ok {
		return 1
	}
	s, err := strconv.Atoi(v)
	if err != nil || s < 1 {
		return 1
	}
	return s
}
