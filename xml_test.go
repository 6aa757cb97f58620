package sbml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLInputStreamTokens(t *testing.T) {
	s := NewXMLInputStream(strings.NewReader(
		`<a xmlns="urn:a" xmlns:p="urn:p" p:x="1" y="2"><b>text</b><p:c/></a>`), NewErrorLog())

	a := s.Next()
	require.True(t, a.IsStart())
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, "urn:a", a.URI)
	assert.Equal(t, "", a.Prefix)
	assert.Len(t, a.NSDecls, 2)

	y, ok := a.Attr("y")
	require.True(t, ok)
	assert.Equal(t, "2", y)
	x, ok := a.AttrNS("urn:p", "x")
	require.True(t, ok)
	assert.Equal(t, "1", x)
	_, ok = a.Attr("x")
	assert.False(t, ok)

	assert.Equal(t, "b", s.Peek().Name)
	b := s.Next()
	assert.True(t, b.IsStart())
	text := s.Next()
	assert.True(t, text.IsText())
	assert.Equal(t, "text", text.Text)
	assert.True(t, s.Next().IsEndFor(b))

	c := s.Next()
	assert.Equal(t, "p:c", c.QName())
	assert.True(t, s.Next().IsEnd())
	assert.True(t, s.Next().IsEndFor(a))

	assert.True(t, s.Next().IsEOF())
	assert.True(t, s.IsEOF())
	assert.False(t, s.IsError())
}

func TestXMLInputStreamPrefixChoice(t *testing.T) {
	s := NewXMLInputStream(strings.NewReader(
		`<r xmlns:p="urn:x" xmlns:q="urn:x"><p:a/><s xmlns:p="urn:y"><q:b/></s></r>`), nil)

	r := s.Next()
	assert.Equal(t, []NSDecl{{Prefix: "p", URI: "urn:x"}, {Prefix: "q", URI: "urn:x"}}, r.NSDecls)

	// the first declaration wins among equal bindings
	assert.Equal(t, "p:a", s.Next().QName())
	s.Next()

	s.Next()
	// p is rebound on <s>, so only q still names urn:x
	b := s.Next()
	assert.Equal(t, "urn:x", b.URI)
	assert.Equal(t, "q:b", b.QName())
}

func TestXMLInputStreamPositions(t *testing.T) {
	s := NewXMLInputStream(strings.NewReader("<a>\n  <b\n    x=\"1\"/>\n</a>"), nil)

	a := s.Next()
	assert.Equal(t, 1, a.Line)
	assert.Equal(t, 1, a.Column)

	s.SkipText()
	b := s.Next()
	require.Equal(t, "b", b.Name)
	assert.Equal(t, 2, b.Line)
	assert.Equal(t, 3, b.Column)
}

func TestXMLInputStreamSkipElement(t *testing.T) {
	s := NewXMLInputStream(strings.NewReader(`<r><skip><x><y/></x></skip><keep/></r>`), nil)

	s.Next()
	s.SkipElement()
	assert.Equal(t, "keep", s.Next().Name)
}

func TestXMLInputStreamMalformed(t *testing.T) {
	log := NewErrorLog()
	s := NewXMLInputStream(strings.NewReader(`<a><b></a>`), log)

	for !s.Next().IsEOF() {
	}

	assert.True(t, s.IsError())
	assert.False(t, s.IsGood())
	assert.Error(t, s.Err())
	assert.Equal(t, 1, log.Count(CodeBadlyFormedXML))

	s.Next()
	assert.Equal(t, 1, log.Count(CodeBadlyFormedXML))
}

func TestXMLOutputStream(t *testing.T) {
	var buf bytes.Buffer
	o := NewXMLOutputStream(&buf, "")

	o.StartElement("a")
	o.WriteNSDecl(NSDecl{URI: "urn:a"})
	o.WriteAttrBool("b", true)
	o.WriteAttrInt("i", 3)
	o.WriteAttrFloat("f", 0.25)
	o.StartElement("c")
	o.WriteText("x<y")
	o.EndElement("c")
	o.EndElement("a")
	require.NoError(t, o.Flush())

	assert.Equal(t, `<a xmlns="urn:a" b="true" i="3" f="0.25"><c>x&lt;y</c></a>`, buf.String())
}

func TestXMLOutputStreamAttrOutsideTag(t *testing.T) {
	var buf bytes.Buffer
	o := NewXMLOutputStream(&buf, "")
	o.WriteAttr("a", "b")
	assert.Error(t, o.Flush())
}

func TestXMLNodeParseAndWrite(t *testing.T) {
	n, err := ParseXMLNode(`<math xmlns="http://www.w3.org/1998/Math/MathML">
  <apply><plus/><ci> x </ci><cn>1</cn></apply>
</math>`)
	require.NoError(t, err)

	assert.Equal(t, "math", n.Name)
	assert.Equal(t, MathMLNamespaceURI, n.URI)
	require.Len(t, n.Elements(), 1)
	apply := n.Child("apply")
	require.NotNil(t, apply)
	assert.Len(t, apply.Elements(), 3)
	assert.Equal(t, " x ", apply.Child("ci").TextContent())

	c := n.Clone()
	c.Child("apply").Child("cn").Children[0].Text = "2"
	assert.Equal(t, "1", n.Child("apply").Child("cn").TextContent())

	assert.Equal(t,
		`<math xmlns="http://www.w3.org/1998/Math/MathML"><apply><plus></plus><ci> x </ci><cn>1</cn></apply></math>`,
		n.String())

	_, err = ParseXMLNode(`<a>`)
	assert.Error(t, err)
}

func TestReadXMLNodeRedeclaresNamespaces(t *testing.T) {
	s := NewXMLInputStream(strings.NewReader(
		`<root xmlns:q="urn:q"><annotation><q:info q:v="1"/></annotation></root>`), nil)
	s.Next()

	n := ReadXMLNode(s)
	require.NotNil(t, n)
	assert.Contains(t, n.String(), `xmlns:q="urn:q"`)
	assert.Contains(t, n.String(), `<q:info q:v="1">`)
}
