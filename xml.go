package sbml

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TokenKind discriminates XMLToken.
type TokenKind int8

const (
	TokenEOF = TokenKind(iota)
	TokenStart
	TokenEnd
	TokenText
)

var tokenKindStrings = [...]string{
	TokenEOF:   "eof",
	TokenStart: "start",
	TokenEnd:   "end",
	TokenText:  "text",
}

func (k TokenKind) String() string { return tokenKindStrings[k] }

// XMLAttr is one attribute with its namespace resolved.
type XMLAttr struct {
	Name   string
	URI    string
	Prefix string
	Value  string
}

// QName returns the prefixed name.
func (a XMLAttr) QName() string { return qualify(a.Prefix, a.Name) }

// NSDecl is one xmlns declaration.
type NSDecl struct {
	Prefix string
	URI    string
}

func (d NSDecl) attrName() string {
	if d.Prefix == "" {
		return "xmlns"
	}
	return "xmlns:" + d.Prefix
}

// XMLToken is one item of the token stream.
type XMLToken struct {
	Kind    TokenKind
	Name    string
	URI     string
	Prefix  string
	Attrs   []XMLAttr
	NSDecls []NSDecl
	Text    string
	Line    int
	Column  int
}

func (t XMLToken) IsStart() bool { return t.Kind == TokenStart }
func (t XMLToken) IsEnd() bool   { return t.Kind == TokenEnd }
func (t XMLToken) IsText() bool  { return t.Kind == TokenText }
func (t XMLToken) IsEOF() bool   { return t.Kind == TokenEOF }

// QName returns the prefixed element name.
func (t XMLToken) QName() string { return qualify(t.Prefix, t.Name) }

// IsEndFor reports whether t closes start.
func (t XMLToken) IsEndFor(start XMLToken) bool {
	return t.Kind == TokenEnd && t.Name == start.Name && t.URI == start.URI
}

// IsWhitespace reports whether t is a text token holding only blanks.
func (t XMLToken) IsWhitespace() bool {
	return t.Kind == TokenText && strings.TrimSpace(t.Text) == ""
}

// Attr returns the value of the unqualified attribute name.
func (t XMLToken) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.URI == "" && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrNS returns the value of the attribute name in namespace uri.
func (t XMLToken) AttrNS(uri, name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.URI == uri && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

const xmlNamespaceURI = "http://www.w3.org/XML/1998/namespace"

func qualify(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

// XMLInputStream is a pull parser over an XML document. It never returns
// errors: malformed input is reported to the attached ErrorLog once and the
// stream turns into the error state.
type XMLInputStream struct {
	dec    *xml.Decoder
	peeked *XMLToken
	scopes [][]NSDecl
	core   string
	log    *ErrorLog
	err    error
	eof    bool
}

// NewXMLInputStream creates a stream reading r. log may be nil.
func NewXMLInputStream(r io.Reader, log *ErrorLog) *XMLInputStream {
	return &XMLInputStream{
		dec: xml.NewDecoder(r),
		log: log,
	}
}

func (s *XMLInputStream) SetErrorLog(log *ErrorLog) { s.log = log }
func (s *XMLInputStream) ErrorLog() *ErrorLog       { return s.log }

func (s *XMLInputStream) IsGood() bool  { return s.err == nil && !s.eof }
func (s *XMLInputStream) IsEOF() bool   { return s.eof && s.err == nil }
func (s *XMLInputStream) IsError() bool { return s.err != nil }
func (s *XMLInputStream) Err() error    { return s.err }

// Next consumes and returns the next token.
func (s *XMLInputStream) Next() XMLToken {
	if s.peeked != nil {
		t := *s.peeked
		s.peeked = nil
		return t
	}
	return s.fetch()
}

// Peek returns the next token without consuming it.
func (s *XMLInputStream) Peek() XMLToken {
	if s.peeked == nil {
		t := s.fetch()
		s.peeked = &t
	}
	return *s.peeked
}

// SkipText consumes text tokens up to the next element boundary.
func (s *XMLInputStream) SkipText() {
	for s.Peek().IsText() {
		s.Next()
	}
}

// SkipElement consumes the element starting at the next token.
func (s *XMLInputStream) SkipElement() {
	start := s.Next()
	if !start.IsStart() {
		return
	}

	depth := 1
	for depth > 0 {
		t := s.Next()
		switch t.Kind {
		case TokenStart:
			depth++
		case TokenEnd:
			depth--
		case TokenEOF:
			return
		}
	}
}

// readEndTo feeds every child start tag of start to f until the matching
// end tag is consumed. f must consume the element it is given.
func (s *XMLInputStream) readEndTo(start XMLToken, f func(s *XMLInputStream, child XMLToken)) {
	for {
		t := s.Peek()
		switch t.Kind {
		case TokenEOF:
			s.unexpectedEOF(start)
			return
		case TokenEnd:
			s.Next()
			if t.IsEndFor(start) {
				return
			}
		case TokenText:
			s.Next()
		case TokenStart:
			f(s, t)
			if next := s.Peek(); next.IsStart() && next.Line == t.Line && next.Column == t.Column && next.Name == t.Name {
				// f left the element in place.
				s.SkipElement()
			}
		}
	}
}

func (s *XMLInputStream) unexpectedEOF(start XMLToken) {
	if s.err != nil || s.log == nil {
		return
	}
	s.log.add(CodeUnexpectedEOF, SeverityFatal, CategoryXML, start.Line, start.Column,
		"unexpected end of input inside <%s>", start.QName())
}

// lookupPrefix returns the first prefix in declaration order, innermost
// scope first, that is bound to uri and not shadowed by an inner scope.
func (s *XMLInputStream) lookupPrefix(uri string) (string, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		for _, d := range s.scopes[i] {
			if d.URI == uri && !s.shadowed(d.Prefix, i) {
				return d.Prefix, true
			}
		}
	}
	return "", false
}

func (s *XMLInputStream) shadowed(prefix string, scope int) bool {
	for i := len(s.scopes) - 1; i > scope; i-- {
		for _, d := range s.scopes[i] {
			if d.Prefix == prefix {
				return true
			}
		}
	}
	return false
}

// acceptAsCore makes uri count as the core namespace for the rest of the
// read. Used after the root declared the wrong core namespace.
func (s *XMLInputStream) acceptAsCore(uri string) { s.core = uri }

func (s *XMLInputStream) isCoreURI(uri string, ns *Namespaces) bool {
	return uri == ns.CoreURI() || (uri != "" && uri == s.core)
}

func (s *XMLInputStream) prefixOf(space string) string {
	if space == "" {
		return ""
	}
	if space == xmlNamespaceURI {
		return "xml"
	}
	if p, ok := s.lookupPrefix(space); ok {
		return p
	}
	// unbound prefixes are left untranslated by encoding/xml
	return space
}

func (s *XMLInputStream) fetch() XMLToken {
	if s.err != nil || s.eof {
		return XMLToken{Kind: TokenEOF}
	}

	for {
		// tokens are positioned at their first byte, errors where decoding stopped
		line, col := s.dec.InputPos()
		raw, err := s.dec.Token()

		if err != nil {
			line, col = s.dec.InputPos()
			if err == io.EOF {
				s.eof = true
			} else {
				s.err = errors.WithMessage(err, "xml")
				if s.log != nil {
					s.log.add(CodeBadlyFormedXML, SeverityFatal, CategoryXML, line, col, "%s", err.Error())
				}
			}
			return XMLToken{Kind: TokenEOF, Line: line, Column: col}
		}

		switch t := raw.(type) {
		case xml.StartElement:
			return s.startToken(t, line, col)

		case xml.EndElement:
			tok := XMLToken{
				Kind:   TokenEnd,
				Name:   t.Name.Local,
				URI:    t.Name.Space,
				Prefix: s.prefixOf(t.Name.Space),
				Line:   line,
				Column: col,
			}
			if n := len(s.scopes); n > 0 {
				s.scopes = s.scopes[:n-1]
			}
			return tok

		case xml.CharData:
			return XMLToken{Kind: TokenText, Text: string(t), Line: line, Column: col}
		}
	}
}

func (s *XMLInputStream) startToken(t xml.StartElement, line, col int) XMLToken {
	var scope []NSDecl
	tok := XMLToken{Kind: TokenStart, Name: t.Name.Local, URI: t.Name.Space, Line: line, Column: col}

	for _, a := range t.Attr {
		switch {
		case a.Name.Space == "xmlns":
			scope = append(scope, NSDecl{Prefix: a.Name.Local, URI: a.Value})
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			scope = append(scope, NSDecl{URI: a.Value})
		}
	}
	s.scopes = append(s.scopes, scope)
	tok.NSDecls = scope

	tok.Prefix = s.prefixOf(tok.URI)
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		attr := XMLAttr{Name: a.Name.Local, URI: a.Name.Space, Value: a.Value}
		if attr.URI != "" {
			attr.Prefix = s.prefixOf(attr.URI)
		}
		tok.Attrs = append(tok.Attrs, attr)
	}

	return tok
}

// XMLOutputStream writes an XML document. Attributes may be added until the
// first child or the end of the current element is written. Write errors
// are sticky and reported by Flush.
type XMLOutputStream struct {
	enc     *xml.Encoder
	pending *xml.StartElement
	err     error
}

// NewXMLOutputStream creates a stream writing to w; indent "" disables
// pretty printing.
func NewXMLOutputStream(w io.Writer, indent string) *XMLOutputStream {
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}
	return &XMLOutputStream{enc: enc}
}

func (o *XMLOutputStream) Err() error { return o.err }

func (o *XMLOutputStream) encode(t xml.Token) {
	if o.err != nil {
		return
	}
	if err := o.enc.EncodeToken(t); err != nil {
		o.err = errors.WithMessage(err, "xml")
	}
}

func (o *XMLOutputStream) flushPending() {
	if o.pending != nil {
		start := *o.pending
		o.pending = nil
		o.encode(start)
	}
}

// WriteXMLDecl writes the XML declaration. It must come first.
func (o *XMLOutputStream) WriteXMLDecl() {
	o.encode(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)})
}

func (o *XMLOutputStream) StartElement(qname string) {
	o.flushPending()
	o.pending = &xml.StartElement{Name: xml.Name{Local: qname}}
}

func (o *XMLOutputStream) EndElement(qname string) {
	o.flushPending()
	o.encode(xml.EndElement{Name: xml.Name{Local: qname}})
}

// WriteAttr adds an attribute to the element being started.
func (o *XMLOutputStream) WriteAttr(qname, value string) {
	if o.pending == nil {
		if o.err == nil {
			o.err = errors.Errorf("xml: attribute %s written outside a start tag", qname)
		}
		return
	}
	o.pending.Attr = append(o.pending.Attr, xml.Attr{Name: xml.Name{Local: qname}, Value: value})
}

func (o *XMLOutputStream) WriteAttrBool(qname string, v bool) {
	o.WriteAttr(qname, strconv.FormatBool(v))
}

func (o *XMLOutputStream) WriteAttrInt(qname string, v int) {
	o.WriteAttr(qname, strconv.Itoa(v))
}

func (o *XMLOutputStream) WriteAttrFloat(qname string, v float64) {
	o.WriteAttr(qname, formatFloat(v))
}

func (o *XMLOutputStream) WriteNSDecl(d NSDecl) { o.WriteAttr(d.attrName(), d.URI) }

func (o *XMLOutputStream) WriteText(text string) {
	o.flushPending()
	o.encode(xml.CharData(text))
}

// WriteXMLNode writes n and its subtree.
func (o *XMLOutputStream) WriteXMLNode(n *XMLNode) {
	if n != nil {
		n.Write(o)
	}
}

// Flush writes buffered output and returns the first error met.
func (o *XMLOutputStream) Flush() error {
	o.flushPending()
	if o.err != nil {
		return o.err
	}
	if err := o.enc.Flush(); err != nil {
		o.err = errors.WithMessage(err, "xml")
	}
	return o.err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func marshalXMLNode(n *XMLNode, indent string) (string, error) {
	buf := buffers.get()
	defer buffers.put(buf)

	o := NewXMLOutputStream(buf, indent)
	n.Write(o)
	if err := o.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
