// Package markup holds a generic, order-preserving tree of WordprocessingML
// elements and the plain-text flattener that walks it.
//
// Nodes keep their raw prefix and attributes so a parsed part can be edited and
// written back without a typed object model. The Kind of a node only matters for
// text extraction; every element that is not text, tab, break or paragraph is a
// transparent container.
package markup

import (
	"encoding/xml"
	"fmt"
)

// Kind is the semantic role of a node for text extraction.
type Kind int

const (
	KindOther Kind = iota
	KindText
	KindTab
	KindLineBreak
	KindPageBreak
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTab:
		return "tab"
	case KindLineBreak:
		return "line-break"
	case KindPageBreak:
		return "page-break"
	case KindParagraph:
		return "paragraph"
	default:
		return "other"
	}
}

// Node is one element of a markup tree. Children are owned by their parent and
// kept in document order.
type Node struct {
	Kind     Kind
	Name     xml.Name // Space holds the raw prefix, e.g. "w"
	Attr     []xml.Attr
	Text     string
	Children []*Node
}

// kindOf classifies an element by local name alone. Tab stop definitions in
// <w:tabs> are tabs too and flatten to a tab character.
func kindOf(name xml.Name) Kind {
	switch name.Local {
	case "t":
		return KindText
	case "tab":
		return KindTab
	case "cr":
		return KindLineBreak
	case "br":
		return KindPageBreak
	case "p":
		return KindParagraph
	default:
		return KindOther
	}
}

// Element creates a node with the given prefix and local name.
func Element(prefix, local string, children ...*Node) *Node {
	n := &Node{Name: xml.Name{Space: prefix, Local: local}}
	n.Kind = kindOf(n.Name)
	n.Children = append(n.Children, children...)
	return n
}

// Paragraph builds <p><r><t>text</t></r></p> using prefix for all three elements.
func Paragraph(prefix, text string) *Node {
	t := Element(prefix, "t")
	t.Text = text
	t.Attr = []xml.Attr{{Name: xml.Name{Space: "xml", Local: "space"}, Value: "preserve"}}
	return Element(prefix, "p", Element(prefix, "r", t))
}

// QualifiedName returns prefix:local, or local when there is no prefix.
func (n *Node) QualifiedName() string {
	return qualify(n.Name)
}

func qualify(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// Is reports whether the node's local name equals local.
func (n *Node) Is(local string) bool {
	return n != nil && n.Name.Local == local
}

// Append adds children at the end.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Elements returns the direct children with the given local name, or all
// children when local is empty.
func (n *Node) Elements(local string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if local == "" || c.Is(local) {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns all descendants with the given local name in document order.
func (n *Node) Descendants(local string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if local == "" || c.Is(local) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// First returns the first descendant with the given local name, or nil.
func (n *Node) First(local string) *Node {
	for _, c := range n.Children {
		if c.Is(local) {
			return c
		}
		if d := c.First(local); d != nil {
			return d
		}
	}
	return nil
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveChildren detaches all direct children with the given local name and
// returns how many were removed.
func (n *Node) RemoveChildren(local string) int {
	kept := n.Children[:0]
	removed := 0
	for _, c := range n.Children {
		if c.Is(local) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(n.Children); i++ {
		n.Children[i] = nil
	}
	n.Children = kept
	return removed
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Name: n.Name, Text: n.Text}
	if len(n.Attr) > 0 {
		c.Attr = make([]xml.Attr, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

func (n *Node) String() string {
	return fmt.Sprintf("<%s> (%s, %d children)", n.QualifiedName(), n.Kind, len(n.Children))
}
