package validator

import "github.com/GodYY/sbml"

// Context is handed to every indexer and constraint of one validation
// pass. It holds the cross-node state of the pass.
type Context struct {
	doc *sbml.Document

	sids    map[string]sbml.Node
	metaIds map[string]sbml.Node
}

func newContext(doc *sbml.Document) *Context {
	return &Context{
		doc:     doc,
		sids:    map[string]sbml.Node{},
		metaIds: map[string]sbml.Node{},
	}
}

func (c *Context) Document() *sbml.Document { return c.doc }

// Model returns the model of the document, nil when absent.
func (c *Context) Model() *sbml.Model {
	if c.doc == nil {
		return nil
	}
	return c.doc.Model()
}

// DeclareSId records n as the owner of id unless an earlier node owns it.
func (c *Context) DeclareSId(id string, n sbml.Node) {
	if _, ok := c.sids[id]; !ok {
		c.sids[id] = n
	}
}

// SIdOwner returns the first node declared with id.
func (c *Context) SIdOwner(id string) sbml.Node { return c.sids[id] }

func (c *Context) DeclareMetaId(metaId string, n sbml.Node) {
	if _, ok := c.metaIds[metaId]; !ok {
		c.metaIds[metaId] = n
	}
}

func (c *Context) MetaIdOwner(metaId string) sbml.Node { return c.metaIds[metaId] }
