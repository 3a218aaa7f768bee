package pages

import (
	"fmt"
	"strings"

	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// exprMain locates the element holding the printable report content.
var exprMain = xpath.MustCompile("//main")

// findMain returns the first <main> element of doc in document order,
// or nil when the document has none.
func findMain(doc *html.Node) *html.Node {
	iter := exprMain.Select(newNavigator(doc))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*nodeNavigator)
		if !ok {
			break
		}
		return nav.current
	}
	return nil
}

// nodeNavigator adapts a parsed HTML tree for the xpath query engine.
// The navigator points at one node, or at one attribute of an element
// node when attr is non-negative.
type nodeNavigator struct {
	root, current *html.Node
	attr          int
}

// newNavigator creates an xpath navigator rooted at node.
func newNavigator(node *html.Node) *nodeNavigator {
	return &nodeNavigator{current: node, root: node, attr: -1}
}

var _ xpath.NodeNavigator = &nodeNavigator{}

func (nav *nodeNavigator) NodeType() xpath.NodeType {
	switch nav.current.Type {
	case html.CommentNode:
		return xpath.CommentNode
	case html.TextNode:
		return xpath.TextNode
	case html.DocumentNode:
		return xpath.RootNode
	case html.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	case html.DoctypeNode:
		// a doctype declaration poses as a root so the engine skips it
		return xpath.RootNode
	}
	panic(fmt.Sprintf("pages: unknown html node type %v", nav.current.Type))
}

func (nav *nodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.Attr[nav.attr].Key
	}
	return nav.current.Data
}

func (*nodeNavigator) Prefix() string {
	return ""
}

func (nav *nodeNavigator) Value() string {
	switch nav.current.Type {
	case html.ElementNode:
		if nav.attr != -1 {
			return nav.current.Attr[nav.attr].Val
		}
		return innerText(nav.current)
	case html.TextNode, html.CommentNode:
		return nav.current.Data
	}
	return ""
}

func (nav *nodeNavigator) String() string {
	return nav.Value()
}

func (nav *nodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *nodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *nodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from an attribute back to its element
		return true
	}
	if nav.current == nav.root || nav.current.Parent == nil {
		return false
	}
	nav.current = nav.current.Parent
	return true
}

func (nav *nodeNavigator) MoveToNextAttribute() bool {
	if nav.current.Type != html.ElementNode {
		return false
	}
	if nav.attr >= len(nav.current.Attr)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *nodeNavigator) MoveToChild() bool {
	if nav.attr != -1 || nav.current.FirstChild == nil {
		return false
	}
	nav.current = nav.current.FirstChild
	return true
}

func (nav *nodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 {
		return false
	}
	for nav.current.PrevSibling != nil {
		nav.current = nav.current.PrevSibling
	}
	return true
}

func (nav *nodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current.NextSibling == nil {
		return false
	}
	nav.current = nav.current.NextSibling
	return true
}

func (nav *nodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current.PrevSibling == nil {
		return false
	}
	nav.current = nav.current.PrevSibling
	return true
}

func (nav *nodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*nodeNavigator)
	if !ok || o.root != nav.root {
		return false
	}
	nav.current = o.current
	nav.attr = o.attr
	return true
}

// innerText returns the concatenated text content below n, comments
// excluded.
func innerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
