package render

import (
	"math"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// el creates an element node. attrs are key/value pairs.
func el(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// appendEl creates an element and appends it to parent.
func appendEl(parent *html.Node, tag string, attrs ...string) *html.Node {
	n := el(tag, attrs...)
	parent.AppendChild(n)
	return n
}

func appendText(parent *html.Node, text string) {
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// setText replaces all children of n with a single text node.
func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	appendText(n, text)
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Attr returns the value of attribute key on n, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// FindByID returns the first element under root with the given id.
func FindByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && Attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element under root, in document order, for which
// match reports true.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// HasClass reports whether n's class attribute equals class.
func HasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return Attr(n, "class") == class }
}

// TextContent concatenates all text under n.
func TextContent(n *html.Node) string {
	var s string
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			s += c.Data
		}
		return true
	})
	return s
}

// walk visits n and its descendants depth-first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// num formats a coordinate with at most three decimals. Negative zero prints
// as "0".
func num(f float64) string {
	r := math.Round(f*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func translate(x, y float64) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}
