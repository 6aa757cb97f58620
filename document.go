package sbml

import (
	"github.com/GodYY/gutils/finalize"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Document is the root of a model tree. It owns the model, the level,
// version and namespace context, and the error log every part of the tree
// reports to.
type Document struct {
	sbase

	model *Model
	res   *docResources
}

var documentSchema = &ElementSchema{
	Name: "sbml",
	Attributes: append(sbaseOptionalId(L3V2),
		AttributeSpec{Name: "level", Required: always},
		AttributeSpec{Name: "version", Required: always},
	),
	Children: []ChildSpec{{Name: "model"}},
}

func init() {
	registerType(TypeDocument, documentSchema, nil)
}

// docResources is what a document holds beyond its tree: the error log
// and the package bindings.
type docResources struct {
	log        *ErrorLog
	extensions *ExtensionRegistry
	packages   map[string]*packageBinding
}

func newDocResources(log *ErrorLog, extensions *ExtensionRegistry) *docResources {
	if log == nil {
		log = NewErrorLog()
	}
	r := &docResources{
		log:        log,
		extensions: extensions,
		packages:   map[string]*packageBinding{},
	}

	finalize.SetFinalizer(r)

	return r
}

func (r *docResources) release() {
	r.log.Clear()
	r.extensions = nil
	r.packages = map[string]*packageBinding{}
}

func (r *docResources) Finalizer() {
	if debug {
		logger.Debug().Msg("docResources.Finalizer")
	}
	r.release()
}

// NewDocument creates an empty document of level/version.
func NewDocument(level, version uint) (*Document, error) {
	return NewDocumentWithExtensions(level, version, nil)
}

// NewDocumentWithExtensions creates an empty document whose packages are
// looked up in reg.
func NewDocumentWithExtensions(level, version uint, reg *ExtensionRegistry) (*Document, error) {
	ns, err := namespacesFor(TypeDocument, level, version)
	if err != nil {
		return nil, err
	}
	return newDocument(ns, reg, nil), nil
}

func newDocument(ns *Namespaces, reg *ExtensionRegistry, log *ErrorLog) *Document {
	d := &Document{}
	d.sbase = newSBase(d, ns)
	d.doc = d
	d.res = newDocResources(log, reg)
	return d
}

// Release tears the document down: the tree is detached, the error log
// emptied and the package bindings dropped.
func (d *Document) Release() {
	finalize.UnsetFinalizer(d.res)
	if d.model != nil {
		d.model.detach()
		d.model = nil
	}
	d.res.release()
}

func (d *Document) TypeCode() TypeCode { return TypeDocument }

// Document returns d itself.
func (d *Document) Document() *Document { return d }

func (d *Document) ErrorLog() *ErrorLog { return d.res.log }

// NumErrors counts the errors and fatals of the log.
func (d *Document) NumErrors() int { return d.res.log.NumErrors() }

func (d *Document) Extensions() *ExtensionRegistry { return d.res.extensions }

// Model returns the model, nil when absent.
func (d *Document) Model() *Model { return d.model }

// CreateModel replaces the model by a new empty one.
func (d *Document) CreateModel(id string) *Model {
	m := newModel(d.ns.Clone())
	if id != "" {
		m.SetId(id)
	}
	d.replaceModel(m)
	return m
}

// SetModel stores a copy of m; nil removes the model.
func (d *Document) SetModel(m *Model) Status {
	if m == nil {
		d.replaceModel(nil)
		return OperationSuccess
	}
	if m.Level() != d.Level() {
		return LevelMismatch
	}
	if m.Version() != d.Version() {
		return VersionMismatch
	}
	if m == d.model {
		return OperationSuccess
	}

	d.replaceModel(m.clone())
	return OperationSuccess
}

func (d *Document) replaceModel(m *Model) {
	if d.model != nil {
		d.model.detach()
	}
	d.model = m
	if m != nil {
		m.connect(d)
	}
}

func (d *Document) packageFor(uri string) *packageBinding {
	return d.res.packages[uri]
}

// EnablePackage binds or unbinds the registered package uri. prefix ""
// selects the package default. Disabling a package strips its attributes
// from the whole tree.
func (d *Document) EnablePackage(uri, prefix string, enable bool) Status {
	ext := d.res.extensions.Lookup(uri)
	if ext == nil {
		return PkgUnknown
	}
	if d.Level() < 3 {
		return LevelMismatch
	}

	if !enable {
		binding := d.res.packages[uri]
		if binding == nil {
			return OperationSuccess
		}
		delete(d.res.packages, uri)
		d.ns.Remove(binding.prefix)
		Walk(d, func(n Node) bool {
			b := n.base()
			kept := b.extAttrs[:0]
			for _, a := range b.extAttrs {
				if a.URI != uri {
					kept = append(kept, a)
				}
			}
			b.extAttrs = kept
			return true
		})
		return OperationSuccess
	}

	if d.res.packages[uri] != nil {
		return OperationSuccess
	}
	if prefix == "" {
		prefix = ext.DefaultPrefix
	}
	if other := d.ns.URI(prefix); other != "" && other != uri {
		return NamespacesMismatch
	}
	if err := d.ns.Add(prefix, uri); err != nil {
		return InvalidAttributeValue
	}

	d.res.packages[uri] = &packageBinding{ext: ext, prefix: prefix}
	return OperationSuccess
}

func (d *Document) IsPackageEnabled(uri string) bool { return d.res.packages[uri] != nil }

// EnabledPackages returns the uris of the enabled packages, sorted.
func (d *Document) EnabledPackages() []string {
	uris := maps.Keys(d.res.packages)
	slices.Sort(uris)
	return uris
}

// SetPackageRequired records whether readers must understand the package
// to interpret the model.
func (d *Document) SetPackageRequired(uri string, required bool) Status {
	binding := d.res.packages[uri]
	if binding == nil {
		return PkgUnknown
	}
	binding.required = required
	return OperationSuccess
}

func (d *Document) IsPackageRequired(uri string) bool {
	binding := d.res.packages[uri]
	return binding != nil && binding.required
}

func (d *Document) Accept(v Visitor) bool {
	v.VisitDocument(d)
	if d.model != nil {
		d.model.Accept(v)
	}
	v.LeaveDocument(d)
	return true
}

// Clone copies the tree and the package bindings. The copy starts with an
// empty error log.
func (d *Document) Clone() Node {
	c := &Document{}
	c.sbase = d.cloneFor(c)
	c.doc = c

	log := NewErrorLog()
	log.SetSeverityOverride(d.res.log.SeverityOverride())
	c.res = newDocResources(log, d.res.extensions)
	for uri, binding := range d.res.packages {
		cb := *binding
		c.res.packages[uri] = &cb
	}

	if d.model != nil {
		c.replaceModel(d.model.clone())
	}
	return c
}

func (d *Document) children() []Node {
	if d.model == nil {
		return nil
	}
	return []Node{d.model}
}

func (d *Document) isSetAttribute(name string) bool {
	switch name {
	case "level", "version":
		return true
	}
	return d.sbase.isSetAttribute(name)
}

// readAttributes takes the package required flags off the attributes
// before the shared reading; level and version were read by the caller.
func (d *Document) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	attrs := make([]XMLAttr, 0, len(t.Attrs))
	for _, a := range t.Attrs {
		binding := d.res.packages[a.URI]
		if binding == nil || a.Name != "required" {
			attrs = append(attrs, a)
			continue
		}

		if v, ok := parseBool(a.Value); ok {
			binding.required = v
		} else {
			d.logf(s, CodeInvalidAttributeValue, SeverityError, t.Line, t.Column,
				"attribute '%s' of <%s> must be a boolean, got '%s'", a.QName(), t.QName(), a.Value)
		}
	}

	t.Attrs = attrs
	d.sbase.readAttributes(s, t, ea)
}

func (d *Document) writeAttributes(o *XMLOutputStream) {
	o.WriteNSDecl(NSDecl{URI: d.ns.CoreURI()})
	for _, prefix := range d.ns.Prefixes() {
		o.WriteNSDecl(NSDecl{Prefix: prefix, URI: d.ns.URI(prefix)})
	}
	o.WriteAttrInt("level", int(d.Level()))
	o.WriteAttrInt("version", int(d.Version()))

	d.sbase.writeAttributes(o)

	for _, uri := range d.EnabledPackages() {
		binding := d.res.packages[uri]
		o.WriteAttrBool(qualify(binding.prefix, "required"), binding.required)
	}
}

func (d *Document) createObject(s *XMLInputStream, t XMLToken) Node {
	if t.Name != "model" {
		return nil
	}
	if d.model != nil {
		d.logf(s, CodeUnrecognizedElement, SeverityError, t.Line, t.Column,
			"<sbml> may contain only one <model>")
		s.SkipElement()
		return nil
	}

	d.replaceModel(newModel(d.ns.Clone()))
	return d.model
}

func (d *Document) writeElements(o *XMLOutputStream) {
	if d.model != nil {
		d.model.Write(o)
	}
}
