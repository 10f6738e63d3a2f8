package layout

import (
	"strconv"

	"golang.org/x/net/html"

	htmlparser "github.com/Walidelmasri/MemoGeneratorV1/internal/parser/html"
)

// Bullet is the marker used for unordered list items.
const Bullet = "•"

// OrderedMarker returns the marker for the index-th item of an ordered list.
func OrderedMarker(index int) string {
	return strconv.Itoa(index) + ". "
}

// list plans one row per li. Each item resolves its own direction and
// alignment; nested lists follow their parent item one level deeper.
func (b *Builder) list(n *html.Node, fallbacks []*html.Node) *List {
	l := &List{Ordered: htmlparser.Tag(n) == "ol"}
	b.appendItems(l, n, 0, fallbacks)
	if len(l.Items) == 0 {
		return nil
	}
	return l
}

func (b *Builder) appendItems(l *List, n *html.Node, level int, fallbacks []*html.Node) {
	ordered := htmlparser.Tag(n) == "ol"
	scope := append([]*html.Node{n}, fallbacks...)
	for i, li := range htmlparser.ChildrenByTag(n, "li") {
		item := ListItem{Level: level, Marker: Bullet}
		if ordered {
			item.Index = i + 1
			item.Marker = OrderedMarker(item.Index)
		}
		item.Alignment, item.Direction = Resolve(li, scope...)
		item.Inlines = b.item.Compose(li, Emphasis{})
		l.Items = append(l.Items, item)

		for _, sub := range nestedLists(li) {
			b.appendItems(l, sub, level+1, scope)
		}
	}
}

// nestedLists returns the outermost ul/ol elements below n in document
// order, at any depth. The item composer skips exactly these.
func nestedLists(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch htmlparser.Tag(c) {
		case "ul", "ol":
			out = append(out, c)
		case "":
		default:
			out = append(out, nestedLists(c)...)
		}
	}
	return out
}
