package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/GodYY/sbml"
	"github.com/spf13/cobra"
)

func newPrintCmd(global *globalParams) *cobra.Command {
	return &cobra.Command{
		Use:   "print file",
		Short: "print the element tree of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}

			doc, err := readDocument(args[0], cfg)
			if err != nil {
				return err
			}
			defer doc.Release()

			doc.Accept(&treePrinter{w: cmd.OutOrStdout()})
			return nil
		},
	}
}

// treePrinter writes one line per element, indented by depth.
type treePrinter struct {
	sbml.BaseVisitor
	w     io.Writer
	depth int
}

func (p *treePrinter) line(n sbml.Node) {
	fmt.Fprintf(p.w, "%s<%s>", strings.Repeat("  ", p.depth), n.ElementName())
	if n.IsSetId() {
		fmt.Fprintf(p.w, " id=%s", n.Id())
	}
	if n.Line() > 0 {
		fmt.Fprintf(p.w, " @%d:%d", n.Line(), n.Column())
	}
	fmt.Fprintln(p.w)
}

func (p *treePrinter) enter(n sbml.Node) bool {
	p.line(n)
	p.depth++
	return true
}

func (p *treePrinter) leaf(n sbml.Node) bool {
	p.line(n)
	return true
}

func (p *treePrinter) leave() { p.depth-- }

func (p *treePrinter) VisitDocument(d *sbml.Document) {
	fmt.Fprintf(p.w, "<sbml> level=%d version=%d\n", d.Level(), d.Version())
	p.depth++
}

func (p *treePrinter) VisitListOf(l *sbml.ListOf) {
	if l.Size() > 0 {
		fmt.Fprintf(p.w, "%s<%s> size=%d\n", strings.Repeat("  ", p.depth), l.ElementName(), l.Size())
	}
	p.depth++
}

func (p *treePrinter) VisitModel(m *sbml.Model) bool             { return p.enter(m) }
func (p *treePrinter) VisitReaction(r *sbml.Reaction) bool       { return p.enter(r) }
func (p *treePrinter) VisitEvent(e *sbml.Event) bool             { return p.enter(e) }
func (p *treePrinter) VisitCompartment(c *sbml.Compartment) bool { return p.leaf(c) }
func (p *treePrinter) VisitSpecies(s *sbml.Species) bool         { return p.leaf(s) }
func (p *treePrinter) VisitParameter(n *sbml.Parameter) bool     { return p.leaf(n) }
func (p *treePrinter) VisitRule(r *sbml.Rule) bool               { return p.leaf(r) }
func (p *treePrinter) VisitEventAssignment(e *sbml.EventAssignment) bool {
	return p.leaf(e)
}
func (p *treePrinter) VisitSpeciesReference(s *sbml.SpeciesReference) bool {
	return p.leaf(s)
}
func (p *treePrinter) VisitModifierSpeciesReference(s *sbml.ModifierSpeciesReference) bool {
	return p.leaf(s)
}

func (p *treePrinter) LeaveDocument(*sbml.Document) { p.leave() }
func (p *treePrinter) LeaveModel(*sbml.Model)       { p.leave() }
func (p *treePrinter) LeaveListOf(*sbml.ListOf)     { p.leave() }
func (p *treePrinter) LeaveReaction(*sbml.Reaction) { p.leave() }
func (p *treePrinter) LeaveEvent(*sbml.Event)       { p.leave() }
