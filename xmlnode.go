package sbml

import (
	"strings"

	"github.com/pkg/errors"
)

// XMLNode is an opaque XML subtree: notes, annotations, math and any other
// content carried through without interpretation.
type XMLNode struct {
	Name     string
	URI      string
	Prefix   string
	Attrs    []XMLAttr
	NSDecls  []NSDecl
	Children []*XMLNode

	// Text is set on text nodes only.
	Text   string
	isText bool
}

// NewXMLElement creates an element node.
func NewXMLElement(name, uri, prefix string) *XMLNode {
	return &XMLNode{Name: name, URI: uri, Prefix: prefix}
}

// NewXMLText creates a text node.
func NewXMLText(text string) *XMLNode {
	return &XMLNode{Text: text, isText: true}
}

func (n *XMLNode) IsText() bool    { return n.isText }
func (n *XMLNode) IsElement() bool { return !n.isText }
func (n *XMLNode) QName() string   { return qualify(n.Prefix, n.Name) }

// AddChild appends c and returns n.
func (n *XMLNode) AddChild(c *XMLNode) *XMLNode {
	if c != nil {
		n.Children = append(n.Children, c)
	}
	return n
}

// SetAttr sets the unqualified attribute name.
func (n *XMLNode) SetAttr(name, value string) *XMLNode {
	for i := range n.Attrs {
		if n.Attrs[i].URI == "" && n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, XMLAttr{Name: name, Value: value})
	return n
}

// Attr returns the unqualified attribute name.
func (n *XMLNode) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.URI == "" && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AddNSDecl declares prefix on n.
func (n *XMLNode) AddNSDecl(prefix, uri string) *XMLNode {
	n.NSDecls = append(n.NSDecls, NSDecl{Prefix: prefix, URI: uri})
	return n
}

// Child returns the first element child named name.
func (n *XMLNode) Child(name string) *XMLNode {
	for _, c := range n.Children {
		if !c.isText && c.Name == name {
			return c
		}
	}
	return nil
}

// Elements returns the element children of n.
func (n *XMLNode) Elements() []*XMLNode {
	var elems []*XMLNode
	for _, c := range n.Children {
		if !c.isText {
			elems = append(elems, c)
		}
	}
	return elems
}

// TextContent concatenates the text of the subtree.
func (n *XMLNode) TextContent() string {
	if n.isText {
		return n.Text
	}

	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Clone returns a deep copy of n.
func (n *XMLNode) Clone() *XMLNode {
	if n == nil {
		return nil
	}

	c := &XMLNode{
		Name:    n.Name,
		URI:     n.URI,
		Prefix:  n.Prefix,
		Text:    n.Text,
		isText:  n.isText,
		Attrs:   append([]XMLAttr(nil), n.Attrs...),
		NSDecls: append([]NSDecl(nil), n.NSDecls...),
	}

	if len(n.Children) > 0 {
		c.Children = make([]*XMLNode, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}

	return c
}

// Write emits n and its subtree.
func (n *XMLNode) Write(o *XMLOutputStream) {
	if n.isText {
		o.WriteText(n.Text)
		return
	}

	qname := n.QName()
	o.StartElement(qname)
	for _, d := range n.NSDecls {
		o.WriteNSDecl(d)
	}
	for _, a := range n.Attrs {
		o.WriteAttr(a.QName(), a.Value)
	}
	for _, c := range n.Children {
		c.Write(o)
	}
	o.EndElement(qname)
}

func (n *XMLNode) String() string {
	s, err := marshalXMLNode(n, "")
	if err != nil {
		return ""
	}
	return s
}

// ReadXMLNode consumes the element at the head of s. Namespaces declared on
// ancestors and used inside the subtree are redeclared on the returned root
// so it can be written on its own.
func ReadXMLNode(s *XMLInputStream) *XMLNode {
	start := s.Next()
	if !start.IsStart() {
		return nil
	}

	declared := map[string]bool{}
	used := map[string]string{}
	root := readXMLElement(s, start, declared, used)

	for _, p := range sortedKeys(used) {
		if declared[p] || p == "xml" {
			continue
		}
		uri := used[p]
		if p == "" && (IsCoreURI(uri) || uri == s.core) {
			continue
		}
		root.NSDecls = append(root.NSDecls, NSDecl{Prefix: p, URI: uri})
	}

	return root
}

func readXMLElement(s *XMLInputStream, start XMLToken, declared map[string]bool, used map[string]string) *XMLNode {
	n := &XMLNode{
		Name:    start.Name,
		URI:     start.URI,
		Prefix:  start.Prefix,
		Attrs:   append([]XMLAttr(nil), start.Attrs...),
		NSDecls: append([]NSDecl(nil), start.NSDecls...),
	}

	for _, d := range start.NSDecls {
		declared[d.Prefix] = true
	}
	if n.URI != "" {
		used[n.Prefix] = n.URI
	}
	for _, a := range n.Attrs {
		if a.URI != "" {
			used[a.Prefix] = a.URI
		}
	}

	for {
		t := s.Next()
		switch t.Kind {
		case TokenStart:
			n.Children = append(n.Children, readXMLElement(s, t, declared, used))
		case TokenText:
			// layout only, the writer indents on its own
			if !t.IsWhitespace() {
				n.Children = append(n.Children, NewXMLText(t.Text))
			}
		case TokenEnd, TokenEOF:
			return n
		}
	}
}

// ParseXMLNode parses a standalone XML fragment holding one element.
func ParseXMLNode(xmlText string) (*XMLNode, error) {
	log := NewErrorLog()
	s := NewXMLInputStream(strings.NewReader(xmlText), log)
	s.SkipText()

	n := ReadXMLNode(s)
	if s.IsError() {
		return nil, s.Err()
	}
	if n == nil {
		return nil, errors.New("xml: no element found")
	}
	return n, nil
}
