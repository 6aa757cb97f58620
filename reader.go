package sbml

import (
	"io"
	"os"
	"strconv"
	"strings"
)

type readOptions struct {
	extensions *ExtensionRegistry
	override   SeverityOverride
}

// ReadOption configures ReadSBML.
type ReadOption func(*readOptions)

// WithExtensions makes the packages of reg known to the reader.
func WithExtensions(reg *ExtensionRegistry) ReadOption {
	return func(o *readOptions) { o.extensions = reg }
}

// WithSeverityOverride sets the override of the returned document's error
// log before reading starts.
func WithSeverityOverride(override SeverityOverride) ReadOption {
	return func(o *readOptions) { o.override = override }
}

// ReadSBML reads a document from r. A document is always returned; every
// problem met, including unreadable XML, is in its error log.
func ReadSBML(r io.Reader, opts ...ReadOption) *Document {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := NewErrorLog()
	log.SetSeverityOverride(o.override)

	return readDocument(NewXMLInputStream(r, log), &o)
}

func ReadSBMLFromString(text string, opts ...ReadOption) *Document {
	return ReadSBML(strings.NewReader(text), opts...)
}

// ReadSBMLFromFile reads the document stored at path.
func ReadSBMLFromFile(path string, opts ...ReadOption) *Document {
	file, err := os.Open(path)
	if err != nil {
		var o readOptions
		for _, opt := range opts {
			opt(&o)
		}
		d := newDocument(mustNamespaces(DefaultLevelVersion), o.extensions, nil)
		d.ErrorLog().SetSeverityOverride(o.override)
		d.ErrorLog().add(CodeXMLFileUnreadable, SeverityFatal, CategoryXML, 0, 0,
			"file '%s' can not be read: %v", path, err)
		return d
	}

	defer file.Close()

	return ReadSBML(file, opts...)
}

func readDocument(s *XMLInputStream, o *readOptions) *Document {
	log := s.ErrorLog()
	fallback := func() *Document {
		return newDocument(mustNamespaces(DefaultLevelVersion), o.extensions, log)
	}

	s.SkipText()
	start := s.Peek()
	if !start.IsStart() {
		if !s.IsError() {
			log.add(CodeBadlyFormedXML, SeverityFatal, CategoryXML, start.Line, start.Column,
				"no root element found")
		}
		return fallback()
	}

	if start.Name != documentSchema.Name {
		log.add(CodeUnrecognizedElement, SeverityFatal, CategorySBML, start.Line, start.Column,
			"root element <%s> is not <sbml>", start.QName())
		s.SkipElement()
		return fallback()
	}

	lv, ok := readLevelVersion(start, log)
	if !ok {
		s.SkipElement()
		return fallback()
	}

	ns := mustNamespaces(lv)
	if start.URI != ns.CoreURI() {
		log.add(CodeInvalidNamespaceOnSBML, SeverityError, CategorySBML, start.Line, start.Column,
			"namespace '%s' does not match level %d version %d, expected '%s'",
			start.URI, lv.Level, lv.Version, ns.CoreURI())
		s.acceptAsCore(start.URI)
	}

	d := newDocument(ns, o.extensions, log)
	d.bindNamespaces(start)
	d.Read(s)

	if d.model == nil && !s.IsError() {
		log.add(CodeMissingModel, SeverityError, CategorySBML, start.Line, start.Column,
			"<sbml> does not contain a <model>")
	}

	if debug {
		logger.Debug().Str("lv", lv.String()).Int("diagnostics", log.Len()).Msg("read document")
	}

	return d
}

func readLevelVersion(start XMLToken, log *ErrorLog) (LevelVersion, bool) {
	parse := func(name string, code int) (uint, bool) {
		v, ok := start.Attr(name)
		if !ok {
			log.add(code, SeverityFatal, CategorySBML, start.Line, start.Column,
				"<sbml> is missing the '%s' attribute", name)
			return 0, false
		}
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
		if err != nil || n == 0 {
			log.add(code, SeverityFatal, CategorySBML, start.Line, start.Column,
				"'%s' of <sbml> must be a positive integer, got '%s'", name, v)
			return 0, false
		}
		return uint(n), true
	}

	level, okLevel := parse("level", CodeMissingOrInconsistentLvl)
	version, okVersion := parse("version", CodeMissingOrInconsistentVer)
	if !okLevel || !okVersion {
		return LevelVersion{}, false
	}

	lv := LevelVersion{level, version}
	if !lv.Valid() {
		log.add(CodeInvalidLevelVersion, SeverityFatal, CategorySBML, start.Line, start.Column,
			"level %d version %d is not a supported combination", level, version)
		return LevelVersion{}, false
	}
	return lv, true
}

// bindNamespaces records the prefixed declarations of the root element and
// enables the registered packages among them.
func (d *Document) bindNamespaces(start XMLToken) {
	for _, decl := range start.NSDecls {
		if decl.Prefix == "" {
			continue
		}

		ext := d.res.extensions.Lookup(decl.URI)
		if ext != nil && d.Level() >= 3 {
			d.EnablePackage(decl.URI, decl.Prefix, true)
			continue
		}
		d.ns.Add(decl.Prefix, decl.URI)
	}
}
