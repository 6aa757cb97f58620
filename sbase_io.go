package sbml

import (
	"strings"
)

func (b *sbase) logf(s *XMLInputStream, code int, sev Severity, line, column int, format string, args ...interface{}) {
	if log := s.ErrorLog(); log != nil {
		log.add(code, sev, CategorySBML, line, column, format, args...)
	}
}

func (b *sbase) isCoreElement(s *XMLInputStream, t XMLToken) bool {
	return t.URI == "" || s.isCoreURI(t.URI, b.ns)
}

// Read consumes one complete element: attributes through readAttributes,
// notes and annotation here, children through createObject and
// readOtherXML. Anything else is reported and skipped.
func (b *sbase) Read(s *XMLInputStream) {
	s.SkipText()
	start := s.Next()
	if !start.IsStart() {
		return
	}

	if debug {
		logger.Debug().Str("element", start.QName()).Int("line", start.Line).Msg("read")
	}

	b.line, b.column = start.Line, start.Column

	expected := NewExpectedAttributes()
	b.self.addExpectedAttributes(expected)
	b.self.readAttributes(s, start, expected)

	for _, name := range missingAttributes(b.self) {
		b.logf(s, CodeMissingRequiredAttribute, SeverityError, start.Line, start.Column,
			"<%s> is missing the required attribute '%s' at %s", start.QName(), name, b.LevelVersion())
	}

	s.readEndTo(start, func(s *XMLInputStream, child XMLToken) {
		b.readChild(s, child)
	})

	b.self.base().afterRead(s, start)
}

func (b *sbase) readChild(s *XMLInputStream, child XMLToken) {
	if b.isCoreElement(s, child) {
		switch child.Name {
		case "notes":
			if b.notes != nil {
				b.logf(s, CodeOnlyOneNotes, SeverityError, child.Line, child.Column,
					"<%s> may contain only one <notes> element", b.self.ElementName())
				s.SkipElement()
				return
			}
			b.notes = ReadXMLNode(s)
			return

		case "annotation":
			if b.annotation != nil {
				b.logf(s, CodeOnlyOneAnnotation, SeverityError, child.Line, child.Column,
					"<%s> may contain only one <annotation> element", b.self.ElementName())
				s.SkipElement()
				return
			}
			b.annotation = ReadXMLNode(s)
			return
		}

		if obj := b.self.createObject(s, child); obj != nil {
			obj.Read(s)
			return
		}
	}

	if b.self.readOtherXML(s, child) {
		return
	}

	if next := s.Peek(); !next.IsStart() || next.Line != child.Line || next.Column != child.Column {
		// consumed by createObject, which reported it
		return
	}

	if tc := TypeForElement(child.Name, b.LevelVersion()); tc != TypeUnknown && b.isCoreElement(s, child) &&
		!tc.Schema().Legal(b.LevelVersion()) {
		b.logNotValid(s, child)
	} else {
		b.logf(s, CodeUnrecognizedElement, SeverityError, child.Line, child.Column,
			"element <%s> is not recognized inside <%s> at %s", child.QName(), b.self.ElementName(), b.LevelVersion())
	}
	s.SkipElement()
}

func (b *sbase) logNotValid(s *XMLInputStream, child XMLToken) {
	b.logf(s, CodeNotValidForLevelVersion, SeverityError, child.Line, child.Column,
		"<%s> is not a valid component for this level/version (%s)", child.QName(), b.LevelVersion())
}

func (b *sbase) afterRead(s *XMLInputStream, start XMLToken) {
	if b.self.HasRequiredElements() {
		return
	}
	if _, ok := b.self.(*ListOf); ok {
		b.logf(s, CodeEmptyListElement, SeverityError, start.Line, start.Column,
			"<%s> must not be empty at %s", start.QName(), b.LevelVersion())
		return
	}
	b.logf(s, CodeMissingRequiredElement, SeverityError, start.Line, start.Column,
		"<%s> is missing a required child element at %s", start.QName(), b.LevelVersion())
}

func (b *sbase) addExpectedAttributes(ea *ExpectedAttributes) {
	for _, name := range b.schema().ExpectedAttributes(b.LevelVersion()).Names() {
		ea.Add(name)
	}
}

// readAttributes reports attributes not expected at the node's
// level/version, routes package attributes and reads the shared ones.
func (b *sbase) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	for _, a := range t.Attrs {
		switch {
		case a.URI == "":
			if !ea.Has(a.Name) {
				b.logf(s, CodeUnknownCoreAttribute, SeverityError, t.Line, t.Column,
					"attribute '%s' is not permitted on <%s> at %s", a.Name, t.QName(), b.LevelVersion())
			}
		case s.isCoreURI(a.URI, b.ns):
			b.logf(s, CodeUnknownCoreAttribute, SeverityError, t.Line, t.Column,
				"attribute '%s' of <%s> must not carry the core namespace", a.QName(), t.QName())
		default:
			b.readExtensionAttribute(s, t, a)
		}
	}

	if ea.Has("metaid") {
		if v, ok := t.Attr("metaid"); ok {
			if IsValidMetaId(v) {
				b.metaId = v
			} else {
				b.logf(s, CodeInvalidMetaIDSyntax, SeverityError, t.Line, t.Column,
					"metaid '%s' of <%s> is not a valid XML ID", v, t.QName())
			}
		}
	}

	if ea.Has("sboTerm") {
		if v, ok := t.Attr("sboTerm"); ok {
			if term, ok := ParseSBOTerm(v); ok {
				b.sboTerm = term
			} else {
				b.logf(s, CodeInvalidSBOTermSyntax, SeverityError, t.Line, t.Column,
					"sboTerm '%s' of <%s> is not of the form SBO:nnnnnnn", v, t.QName())
			}
		}
	}

	idAttr := "id"
	if b.l1() {
		idAttr = "name"
	}
	if b.schema().Attribute("id") != nil && ea.Has(idAttr) {
		if v, ok := t.Attr(idAttr); ok {
			if IsValidSId(v) {
				b.id = v
			} else {
				b.logf(s, CodeInvalidIDSyntax, SeverityError, t.Line, t.Column,
					"%s '%s' of <%s> does not conform to the SId syntax", idAttr, v, t.QName())
			}
		}
	}

	if !b.l1() && ea.Has("name") {
		if v, ok := t.Attr("name"); ok {
			b.name = v
		}
	}
}

func (b *sbase) readExtensionAttribute(s *XMLInputStream, t XMLToken, a XMLAttr) {
	if a.URI == xmlNamespaceURI {
		b.extAttrs = append(b.extAttrs, a)
		return
	}

	var ext *Extension
	if b.doc != nil {
		if binding := b.doc.packageFor(a.URI); binding != nil {
			ext = binding.ext
		}
	}

	switch {
	case ext == nil:
		b.logf(s, CodeUnknownPackageAttribute, SeverityWarning, t.Line, t.Column,
			"attribute '%s' of <%s> belongs to the unknown package '%s'", a.QName(), t.QName(), a.URI)
		b.extAttrs = append(b.extAttrs, a)
	case !ext.allows(b.self.TypeCode(), a.Name):
		b.logf(s, CodeUnknownPackageAttribute, SeverityError, t.Line, t.Column,
			"package '%s' does not define attribute '%s' on <%s>", ext.Name, a.Name, t.QName())
	default:
		b.extAttrs = append(b.extAttrs, a)
	}
}

// readAttrString reads name when it is legal at the node's level/version.
func (b *sbase) readAttrString(t XMLToken, ea *ExpectedAttributes, name string, dst *string) bool {
	if !ea.Has(name) {
		return false
	}
	v, ok := t.Attr(name)
	if ok {
		*dst = v
	}
	return ok
}

// readAttrSIdRef reads a reference that must follow the SId grammar.
func (b *sbase) readAttrSIdRef(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes, name string, dst *string) bool {
	var v string
	if !b.readAttrString(t, ea, name, &v) {
		return false
	}
	if !IsValidSId(v) {
		b.logf(s, CodeInvalidAttributeValue, SeverityError, t.Line, t.Column,
			"attribute '%s' of <%s> has the value '%s' which is not a valid SId reference", name, t.QName(), v)
		return false
	}
	*dst = v
	return true
}

func (b *sbase) readAttrBool(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes, name string, dst *bool) bool {
	var v string
	if !b.readAttrString(t, ea, name, &v) {
		return false
	}
	bv, ok := parseBool(v)
	if !ok {
		b.logf(s, CodeInvalidAttributeValue, SeverityError, t.Line, t.Column,
			"attribute '%s' of <%s> must be a boolean, got '%s'", name, t.QName(), v)
		return false
	}
	*dst = bv
	return true
}

func (b *sbase) readAttrFloat(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes, name string, dst *float64) bool {
	var v string
	if !b.readAttrString(t, ea, name, &v) {
		return false
	}
	fv, ok := parseFloat(v)
	if !ok {
		b.logf(s, CodeInvalidAttributeValue, SeverityError, t.Line, t.Column,
			"attribute '%s' of <%s> must be a double, got '%s'", name, t.QName(), v)
		return false
	}
	*dst = fv
	return true
}

func (b *sbase) readAttrInt(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes, name string, dst *int) bool {
	var v string
	if !b.readAttrString(t, ea, name, &v) {
		return false
	}
	iv, ok := parseInt(v)
	if !ok {
		b.logf(s, CodeInvalidAttributeValue, SeverityError, t.Line, t.Column,
			"attribute '%s' of <%s> must be an integer, got '%s'", name, t.QName(), v)
		return false
	}
	*dst = iv
	return true
}

// Write emits the node as one element with its legal attributes, notes,
// annotation and children.
func (b *sbase) Write(o *XMLOutputStream) {
	name := b.self.ElementName()
	o.StartElement(name)
	b.self.writeAttributes(o)
	b.writeExtensionAttributes(o)
	o.WriteXMLNode(b.notes)
	o.WriteXMLNode(b.annotation)
	b.self.writeElements(o)
	o.EndElement(name)
}

// writeLegal emits name only when it exists at the node's level/version.
func (b *sbase) writeLegal(o *XMLOutputStream, name, value string) {
	if b.legal(name) {
		o.WriteAttr(name, value)
	}
}

func (b *sbase) writeLegalBool(o *XMLOutputStream, name string, v bool) {
	if b.legal(name) {
		o.WriteAttrBool(name, v)
	}
}

func (b *sbase) writeLegalFloat(o *XMLOutputStream, name string, v float64) {
	if b.legal(name) {
		o.WriteAttrFloat(name, v)
	}
}

func (b *sbase) writeAttributes(o *XMLOutputStream) {
	if b.metaId != "" {
		b.writeLegal(o, "metaid", b.metaId)
	}
	if b.IsSetSBOTerm() {
		b.writeLegal(o, "sboTerm", b.SBOTermID())
	}

	if b.l1() {
		if b.id != "" && b.idLegal() {
			o.WriteAttr("name", b.id)
		}
		return
	}

	if b.id != "" {
		b.writeLegal(o, "id", b.id)
	}
	if b.name != "" {
		b.writeLegal(o, "name", b.name)
	}
}

// writeExtensionAttributes writes package attributes under the prefix the
// document binds; namespaces unknown to the document are declared on the
// element itself.
func (b *sbase) writeExtensionAttributes(o *XMLOutputStream) {
	var declared map[string]bool
	for _, a := range b.extAttrs {
		if a.URI == xmlNamespaceURI {
			o.WriteAttr(qualify("xml", a.Name), a.Value)
			continue
		}

		prefix := ""
		if b.doc != nil {
			prefix = b.doc.ns.Prefix(a.URI)
		}
		if prefix == "" {
			prefix = a.Prefix
			if prefix == "" || strings.ContainsAny(prefix, "/:") {
				// no usable prefix to write the attribute under
				continue
			}
			if declared == nil {
				declared = map[string]bool{}
			}
			if !declared[prefix] {
				declared[prefix] = true
				o.WriteNSDecl(NSDecl{Prefix: prefix, URI: a.URI})
			}
		}
		o.WriteAttr(qualify(prefix, a.Name), a.Value)
	}
}
