package sbml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Severity of a diagnostic.
type Severity int8

const (
	SeverityInfo = Severity(iota)
	SeverityWarning
	SeverityError
	SeverityFatal
)

var severityStrings = [...]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
	SeverityFatal:   "fatal",
}

func (s Severity) String() string { return severityStrings[s] }

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Category groups diagnostics by the pass that produced them.
type Category int8

const (
	CategoryXML = Category(iota)
	CategorySBML
	CategoryGeneralConsistency
	CategoryIdentifierConsistency
	CategoryReferenceConsistency
	CategoryModelingPractice
	CategoryInternalConsistency
)

var categoryStrings = [...]string{
	CategoryXML:                   "xml",
	CategorySBML:                  "sbml",
	CategoryGeneralConsistency:    "general-consistency",
	CategoryIdentifierConsistency: "identifier-consistency",
	CategoryReferenceConsistency:  "reference-consistency",
	CategoryModelingPractice:      "modeling-practice",
	CategoryInternalConsistency:   "internal-consistency",
}

func (c Category) String() string { return categoryStrings[c] }

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ParseCategory maps a category name back to its value.
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryStrings {
		if name == s {
			return Category(i), true
		}
	}
	return 0, false
}

// Diagnostic codes. The numbers are part of the public contract and are
// never reused for a different meaning.
const (
	CodeXMLFileUnreadable = 1001
	CodeBadlyFormedXML    = 1002
	CodeUnexpectedEOF     = 1003

	CodeUnrecognizedElement       = 10102
	CodeDuplicateComponentID      = 10301
	CodeDuplicateMetaID           = 10307
	CodeInvalidSBOTermSyntax      = 10308
	CodeInvalidMetaIDSyntax       = 10309
	CodeInvalidIDSyntax           = 10310
	CodeOnlyOneAnnotation         = 10404
	CodeOnlyOneNotes              = 10805
	CodeInvalidNamespaceOnSBML    = 20101
	CodeMissingOrInconsistentLvl  = 20102
	CodeMissingOrInconsistentVer  = 20103
	CodeMissingModel              = 20201
	CodeIncorrectOrderInModel     = 20202
	CodeEmptyListElement          = 20203
	CodeOneListOfEachKind         = 20205
	CodeZeroDimensionalSize       = 20501
	CodeInvalidOutsideRef         = 20504
	CodeInvalidSpeciesCompartment = 20601
	CodeConstantSpeciesInRule     = 20610
	CodeInvalidRuleVariable       = 20901
	CodeNoReactantsOrProducts     = 21101
	CodeInvalidSpeciesReference   = 21111
	CodeMissingTriggerInEvent     = 21201
	CodeInvalidEventAssignVar     = 21214
	CodeCompartmentSizeNotSet     = 80501
	CodeSpeciesInitialValueNotSet = 80601
	CodeParameterUnitsNotSet      = 80701
	CodeUnknownPackageAttribute   = 99993
	CodeUnknownCoreAttribute      = 99994
	CodeNotValidForLevelVersion   = 99995
	CodeInvalidAttributeValue     = 99996
	CodeMissingRequiredAttribute  = 99997
	CodeMissingRequiredElement    = 99998
	CodeInvalidLevelVersion       = 99999
)

// Diagnostic is one entry of an ErrorLog.
type Diagnostic struct {
	Code     int      `json:"code"`
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
	Message  string   `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d:%d: (%05d [%s]) %s", d.Line, d.Column, d.Code, d.Severity, d.Message)
	}
	return fmt.Sprintf("(%05d [%s]) %s", d.Code, d.Severity, d.Message)
}

// IsError reports whether d is at least an error.
func (d Diagnostic) IsError() bool { return d.Severity >= SeverityError }

// SeverityOverride is applied by an ErrorLog to every incoming diagnostic.
type SeverityOverride int8

const (
	OverrideNone = SeverityOverride(iota)
	OverrideDontLog
	OverrideWarning
	OverrideError
)

var overrideStrings = [...]string{
	OverrideNone:    "none",
	OverrideDontLog: "dont-log",
	OverrideWarning: "warning",
	OverrideError:   "error",
}

func (o SeverityOverride) String() string { return overrideStrings[o] }

// ParseSeverityOverride maps an override name back to its value.
func ParseSeverityOverride(s string) (SeverityOverride, bool) {
	for i, name := range overrideStrings {
		if name == s {
			return SeverityOverride(i), true
		}
	}
	return OverrideNone, false
}

// ErrorLog is the ordered sink of every non-fatal problem found while
// reading, writing or validating a document.
type ErrorLog struct {
	entries  []Diagnostic
	override SeverityOverride
}

func NewErrorLog() *ErrorLog { return &ErrorLog{} }

func (l *ErrorLog) SeverityOverride() SeverityOverride     { return l.override }
func (l *ErrorLog) SetSeverityOverride(o SeverityOverride) { l.override = o }

// Add appends d after applying the severity override.
func (l *ErrorLog) Add(d Diagnostic) {
	switch l.override {
	case OverrideDontLog:
		return
	case OverrideWarning:
		if d.Severity > SeverityWarning {
			d.Severity = SeverityWarning
		}
	case OverrideError:
		if d.Severity == SeverityWarning {
			d.Severity = SeverityError
		}
	}

	l.entries = append(l.entries, d)
	logger.WithLevel(zerologLevel(d.Severity)).
		Int("code", d.Code).
		Str("category", d.Category.String()).
		Int("line", d.Line).
		Int("column", d.Column).
		Msg(d.Message)
}

func (l *ErrorLog) add(code int, sev Severity, cat Category, line, column int, format string, args ...interface{}) {
	l.Add(Diagnostic{
		Code:     code,
		Severity: sev,
		Category: cat,
		Line:     line,
		Column:   column,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (l *ErrorLog) Len() int { return len(l.entries) }

// At returns the i-th diagnostic.
func (l *ErrorLog) At(i int) (Diagnostic, bool) {
	if i < 0 || i >= len(l.entries) {
		return Diagnostic{}, false
	}
	return l.entries[i], true
}

// Diagnostics returns a copy of every entry.
func (l *ErrorLog) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), l.entries...)
}

// Contains reports whether any entry carries code.
func (l *ErrorLog) Contains(code int) bool {
	for _, d := range l.entries {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Count returns the number of entries carrying code.
func (l *ErrorLog) Count(code int) int {
	n := 0
	for _, d := range l.entries {
		if d.Code == code {
			n++
		}
	}
	return n
}

func (l *ErrorLog) NumWithSeverity(sev Severity) int {
	n := 0
	for _, d := range l.entries {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// NumErrors counts errors and fatals.
func (l *ErrorLog) NumErrors() int {
	return l.NumWithSeverity(SeverityError) + l.NumWithSeverity(SeverityFatal)
}

// Clear drops every entry.
func (l *ErrorLog) Clear() { l.entries = nil }

// Print writes one line per entry.
func (l *ErrorLog) Print(w io.Writer) error {
	for _, d := range l.entries {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

func (l *ErrorLog) String() string {
	var buf bytes.Buffer
	l.Print(&buf)
	return buf.String()
}

// WriteJSON writes the entries as a JSON array.
func (l *ErrorLog) WriteJSON(w io.Writer) error {
	entries := l.entries
	if entries == nil {
		entries = []Diagnostic{}
	}
	return json.NewEncoder(w).Encode(entries)
}

func zerologLevel(sev Severity) zerolog.Level {
	switch sev {
	case SeverityInfo:
		return zerolog.DebugLevel
	case SeverityWarning:
		return zerolog.InfoLevel
	case SeverityError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
