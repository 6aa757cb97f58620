package sbml

import (
	"github.com/GodYY/gutils/assert"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Extension describes a Level 3 package: its namespace and the attributes
// it may add to core elements.
type Extension struct {
	Name          string
	URI           string
	DefaultPrefix string

	// Attributes lists the package attributes allowed per kind.
	Attributes map[TypeCode][]string
}

func (e *Extension) allows(tc TypeCode, name string) bool {
	if tc == TypeDocument && name == "required" {
		return true
	}
	return slices.Contains(e.Attributes[tc], name)
}

// ExtensionRegistry maps package namespaces to their extensions. A
// registry is handed to the documents that may use it.
type ExtensionRegistry struct {
	byURI  map[string]*Extension
	byName map[string]*Extension
}

func NewExtensionRegistry() *ExtensionRegistry {
	return &ExtensionRegistry{
		byURI:  map[string]*Extension{},
		byName: map[string]*Extension{},
	}
}

// Register adds ext. Names and URIs must be unique and must not clash with
// the core namespaces.
func (r *ExtensionRegistry) Register(ext *Extension) error {
	if ext == nil {
		return errors.New("nil extension")
	}
	if ext.Name == "" || ext.URI == "" {
		return errors.Errorf("extension \"%s\" needs a name and a uri", ext.Name)
	}
	if IsCoreURI(ext.URI) {
		return errors.Errorf("extension \"%s\" uses the core namespace %s", ext.Name, ext.URI)
	}
	if r.byURI[ext.URI] != nil {
		return errors.Errorf("extension uri %s registered", ext.URI)
	}
	if r.byName[ext.Name] != nil {
		return errors.Errorf("extension \"%s\" registered", ext.Name)
	}

	if ext.DefaultPrefix == "" {
		ext.DefaultPrefix = ext.Name
	}

	r.byURI[ext.URI] = ext
	r.byName[ext.Name] = ext
	return nil
}

// MustRegister is Register for package initialization.
func (r *ExtensionRegistry) MustRegister(ext *Extension) {
	err := r.Register(ext)
	assert.AssertF(err == nil, "register extension: %v", err)
}

// Lookup returns the extension of uri, nil when unknown.
func (r *ExtensionRegistry) Lookup(uri string) *Extension {
	if r == nil {
		return nil
	}
	return r.byURI[uri]
}

func (r *ExtensionRegistry) LookupByName(name string) *Extension {
	if r == nil {
		return nil
	}
	return r.byName[name]
}

// Names returns the registered package names, sorted.
func (r *ExtensionRegistry) Names() []string {
	if r == nil {
		return nil
	}
	names := maps.Keys(r.byName)
	slices.Sort(names)
	return names
}

// packageBinding is the state of one package enabled on a document.
type packageBinding struct {
	ext      *Extension
	prefix   string
	required bool
}
