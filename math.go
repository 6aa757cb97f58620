package sbml

// MathMLNamespaceURI is the namespace of <math> content.
const MathMLNamespaceURI = "http://www.w3.org/1998/Math/MathML"

// mathSlot holds a <math> element as opaque XML.
type mathSlot struct {
	math *XMLNode
}

func (m *mathSlot) Math() *XMLNode  { return m.math }
func (m *mathSlot) IsSetMath() bool { return m.math != nil }

// SetMath stores a copy of a <math> element; nil unsets.
func (m *mathSlot) SetMath(math *XMLNode) Status {
	if math == nil {
		m.math = nil
		return OperationSuccess
	}
	if !math.IsElement() || math.Name != "math" {
		return InvalidObject
	}

	m.math = math.Clone()
	if m.math.URI == "" && m.math.Prefix == "" {
		m.math.URI = MathMLNamespaceURI
		m.math.NSDecls = append(m.math.NSDecls, NSDecl{URI: MathMLNamespaceURI})
	}
	return OperationSuccess
}

// SetMathString parses text as a <math> element.
func (m *mathSlot) SetMathString(text string) Status {
	n, err := ParseXMLNode(text)
	if err != nil {
		return InvalidObject
	}
	return m.SetMath(n)
}

func (m *mathSlot) UnsetMath() Status {
	m.math = nil
	return OperationSuccess
}

func (m *mathSlot) readMath(s *XMLInputStream, t XMLToken) bool {
	if t.Name != "math" || t.URI != MathMLNamespaceURI {
		return false
	}
	m.math = ReadXMLNode(s)
	return true
}

func (m *mathSlot) writeMath(o *XMLOutputStream) { o.WriteXMLNode(m.math) }

func (m *mathSlot) cloneMath() mathSlot { return mathSlot{math: m.math.Clone()} }

// readOpaque captures the core element name as an opaque subtree.
func readOpaque(s *XMLInputStream, t XMLToken, name string, ns *Namespaces, dst **XMLNode) bool {
	if t.Name != name || (t.URI != "" && !s.isCoreURI(t.URI, ns)) {
		return false
	}
	*dst = ReadXMLNode(s)
	return true
}

// setOpaque stores a copy of n, which must be an element called name.
func setOpaque(n *XMLNode, name string, dst **XMLNode) Status {
	if n == nil {
		*dst = nil
		return OperationSuccess
	}
	if !n.IsElement() || n.Name != name {
		return InvalidObject
	}
	*dst = n.Clone()
	return OperationSuccess
}
