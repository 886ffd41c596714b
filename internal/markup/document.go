package markup

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrNoRoot is returned when a part contains no root element.
var ErrNoRoot = errors.New("markup: no root element")

// Document is a parsed XML part: its prolog and the root element.
type Document struct {
	ProcInst []xml.ProcInst
	Root     *Node
}

// Body returns the <w:body> element directly below the root, or nil.
func (d *Document) Body() *Node {
	if d == nil || d.Root == nil {
		return nil
	}
	for _, c := range d.Root.Children {
		if c.Is("body") {
			return c
		}
	}
	return nil
}

// Parse reads an XML part into a markup tree. Prefixes are kept as written;
// comments and directives are dropped.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}
	var stack []*Node
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		switch t := tok.(type) {
		case xml.ProcInst:
			if doc.Root == nil {
				doc.ProcInst = append(doc.ProcInst, t.Copy())
			}
		case xml.StartElement:
			var parent *Node
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			n := &Node{Name: t.Name, Kind: kindOf(t.Name)}
			if len(t.Attr) > 0 {
				n.Attr = make([]xml.Attr, len(t.Attr))
				copy(n.Attr, t.Attr)
			}
			if parent == nil {
				if doc.Root != nil {
					return nil, fmt.Errorf("second root element <%s>", qualify(t.Name))
				}
				doc.Root = n
			} else {
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected end element </%s>", qualify(t.Name))
			}
			top := stack[len(stack)-1]
			if top.Name != t.Name {
				return nil, fmt.Errorf("element <%s> closed by </%s>", top.QualifiedName(), qualify(t.Name))
			}
			// whitespace between child elements is not content
			if len(top.Children) > 0 {
				top.Text = ""
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed element <%s>: %w", stack[len(stack)-1].QualifiedName(), io.ErrUnexpectedEOF)
	}
	if doc.Root == nil {
		return nil, ErrNoRoot
	}
	return doc, nil
}

// ParseString is Parse over an in-memory part.
func ParseString(s string) (*Document, error) {
	return Parse(bytes.NewReader([]byte(s)))
}

// Encode writes the document back as XML.
func (d *Document) Encode(w io.Writer) error {
	if d.Root == nil {
		return ErrNoRoot
	}
	bw := bufio.NewWriter(w)
	for _, pi := range d.ProcInst {
		bw.WriteString("<?")
		bw.WriteString(pi.Target)
		if len(pi.Inst) > 0 {
			bw.WriteByte(' ')
			bw.Write(pi.Inst)
		}
		bw.WriteString("?>\n")
	}
	e := encoder{w: bw, seen: make(map[*Node]struct{})}
	if err := e.node(d.Root); err != nil {
		return err
	}
	return bw.Flush()
}

// String returns the encoded document. Encoding errors yield an empty string.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return ""
	}
	return buf.String()
}

type encoder struct {
	w    *bufio.Writer
	seen map[*Node]struct{}
}

func (e *encoder) node(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrStructuralIntegrity)
	}
	if _, ok := e.seen[n]; ok {
		return fmt.Errorf("%w: %s reached twice", ErrStructuralIntegrity, n)
	}
	e.seen[n] = struct{}{}

	name := n.QualifiedName()
	e.w.WriteByte('<')
	e.w.WriteString(name)
	for _, a := range n.Attr {
		e.w.WriteByte(' ')
		e.w.WriteString(qualify(a.Name))
		e.w.WriteString(`="`)
		if err := xml.EscapeText(e.w, []byte(a.Value)); err != nil {
			return err
		}
		e.w.WriteByte('"')
	}
	if len(n.Children) == 0 && n.Text == "" {
		e.w.WriteString("/>")
		return nil
	}
	e.w.WriteByte('>')
	if len(n.Children) == 0 {
		if err := xml.EscapeText(e.w, []byte(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := e.node(c); err != nil {
			return err
		}
	}
	e.w.WriteString("</")
	e.w.WriteString(name)
	_, err := e.w.WriteString(">")
	return err
}
