package markup

import (
	"errors"
	"fmt"
	"strings"
)

// Newline is emitted for breaks and, twice, after every paragraph.
const Newline = "\n"

// ErrStructuralIntegrity reports a tree that is not a finite tree: a node
// reachable twice, or a nil child.
var ErrStructuralIntegrity = errors.New("markup: malformed tree")

// Flatten renders the children of node as plain text in document order.
//
// Text nodes contribute their literal text, tabs a horizontal tab, line and
// page breaks a Newline. A paragraph contributes its flattened children
// followed by two Newlines, so consecutive paragraphs are separated by a blank
// line. All other nodes are transparent. The output is not trimmed.
func Flatten(node *Node) (string, error) {
	if node == nil {
		return "", nil
	}
	f := flattener{seen: map[*Node]struct{}{node: {}}}
	if err := f.children(node); err != nil {
		return "", err
	}
	return f.sb.String(), nil
}

type flattener struct {
	sb   strings.Builder
	seen map[*Node]struct{}
}

func (f *flattener) children(n *Node) error {
	for i, c := range n.Children {
		if c == nil {
			return fmt.Errorf("%w: nil child %d of %s", ErrStructuralIntegrity, i, n)
		}
		if _, ok := f.seen[c]; ok {
			return fmt.Errorf("%w: %s reached twice", ErrStructuralIntegrity, c)
		}
		f.seen[c] = struct{}{}

		switch c.Kind {
		case KindText:
			f.sb.WriteString(c.Text)
		case KindTab:
			f.sb.WriteByte('\t')
		case KindLineBreak, KindPageBreak:
			f.sb.WriteString(Newline)
		case KindParagraph:
			if err := f.children(c); err != nil {
				return err
			}
			f.sb.WriteString(Newline)
			f.sb.WriteString(Newline)
		default:
			if err := f.children(c); err != nil {
				return err
			}
		}
	}
	return nil
}
