package sbml

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// LevelVersion identifies one SBML schema.
type LevelVersion struct {
	Level   uint
	Version uint
}

// Well known schemas.
var (
	L1V1 = LevelVersion{1, 1}
	L1V2 = LevelVersion{1, 2}
	L2V1 = LevelVersion{2, 1}
	L2V2 = LevelVersion{2, 2}
	L2V3 = LevelVersion{2, 3}
	L2V4 = LevelVersion{2, 4}
	L2V5 = LevelVersion{2, 5}
	L3V1 = LevelVersion{3, 1}
	L3V2 = LevelVersion{3, 2}
)

// DefaultLevelVersion is used when nothing else is specified.
var DefaultLevelVersion = L3V2

var coreURIs = map[LevelVersion]string{
	L1V1: "http://www.sbml.org/sbml/level1",
	L1V2: "http://www.sbml.org/sbml/level1",
	L2V1: "http://www.sbml.org/sbml/level2",
	L2V2: "http://www.sbml.org/sbml/level2/version2",
	L2V3: "http://www.sbml.org/sbml/level2/version3",
	L2V4: "http://www.sbml.org/sbml/level2/version4",
	L2V5: "http://www.sbml.org/sbml/level2/version5",
	L3V1: "http://www.sbml.org/sbml/level3/version1/core",
	L3V2: "http://www.sbml.org/sbml/level3/version2/core",
}

// Valid reports whether lv is a supported combination.
func (lv LevelVersion) Valid() bool {
	_, ok := coreURIs[lv]
	return ok
}

// Before reports whether lv precedes o.
func (lv LevelVersion) Before(o LevelVersion) bool {
	return lv.Level < o.Level || (lv.Level == o.Level && lv.Version < o.Version)
}

// AtLeast reports whether lv is o or later.
func (lv LevelVersion) AtLeast(o LevelVersion) bool { return !lv.Before(o) }

func (lv LevelVersion) String() string { return fmt.Sprintf("L%dV%d", lv.Level, lv.Version) }

// CoreURI returns the core namespace of lv, "" when unsupported.
func (lv LevelVersion) CoreURI() string { return coreURIs[lv] }

// IsCoreURI reports whether uri names any SBML core namespace.
func IsCoreURI(uri string) bool {
	return slices.Contains(maps.Values(coreURIs), uri)
}

// Namespaces is the level, version and namespace context of a node.
type Namespaces struct {
	lv      LevelVersion
	uri     string
	entries map[string]string // prefix -> uri
}

// NewNamespaces creates the namespace context of level/version.
func NewNamespaces(level, version uint) (*Namespaces, error) {
	lv := LevelVersion{level, version}
	if !lv.Valid() {
		return nil, newConstructorError("Namespaces", lv, "invalid level/version combination")
	}

	return &Namespaces{lv: lv, uri: lv.CoreURI(), entries: map[string]string{}}, nil
}

func mustNamespaces(lv LevelVersion) *Namespaces {
	ns, err := NewNamespaces(lv.Level, lv.Version)
	if err != nil {
		panic(err)
	}
	return ns
}

func (ns *Namespaces) Level() uint                  { return ns.lv.Level }
func (ns *Namespaces) Version() uint                { return ns.lv.Version }
func (ns *Namespaces) LevelVersion() LevelVersion   { return ns.lv }
func (ns *Namespaces) CoreURI() string              { return ns.uri }
func (ns *Namespaces) URI(prefix string) string     { return ns.entries[prefix] }
func (ns *Namespaces) Len() int                     { return len(ns.entries) }
func (ns *Namespaces) Prefixes() []string           { return sortedKeys(ns.entries) }
func (ns *Namespaces) HasURI(uri string) bool       { return ns.Prefix(uri) != "" || uri == ns.uri }
func (ns *Namespaces) HasPrefix(prefix string) bool { _, ok := ns.entries[prefix]; return ok }

// Prefix returns the prefix bound to uri, "" when unbound.
func (ns *Namespaces) Prefix(uri string) string {
	for _, p := range sortedKeys(ns.entries) {
		if ns.entries[p] == uri {
			return p
		}
	}
	return ""
}

// Add binds prefix to uri. The empty prefix is reserved for the core
// namespace.
func (ns *Namespaces) Add(prefix, uri string) error {
	if prefix == "" {
		return errors.New("empty prefix reserved for the core namespace")
	}

	if uri == "" {
		return errors.Errorf("empty uri for prefix \"%s\"", prefix)
	}

	ns.entries[prefix] = uri
	return nil
}

// Remove unbinds prefix.
func (ns *Namespaces) Remove(prefix string) { delete(ns.entries, prefix) }

// Clone returns a deep copy of ns.
func (ns *Namespaces) Clone() *Namespaces {
	if ns == nil {
		return nil
	}

	return &Namespaces{lv: ns.lv, uri: ns.uri, entries: maps.Clone(ns.entries)}
}

func sortedKeys(m map[string]string) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
