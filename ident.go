package sbml

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

func isASCIILetter(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }

func isASCIIDigit(r rune) bool { return '0' <= r && r <= '9' }

// IsValidSId reports whether id matches the SId grammar:
// (letter | '_') (letter | digit | '_')*.
func IsValidSId(id string) bool {
	if id == "" {
		return false
	}

	for i, r := range id {
		switch {
		case isASCIILetter(r), r == '_':
		case i > 0 && isASCIIDigit(r):
		default:
			return false
		}
	}
	return true
}

// IsValidUnitSId reports whether id matches the UnitSId grammar, which is
// the SId grammar.
func IsValidUnitSId(id string) bool { return IsValidSId(id) }

func isNameStartChar(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isNameChar(r rune) bool {
	return isNameStartChar(r) ||
		unicode.IsDigit(r) ||
		r == '.' || r == '-' ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Lm) ||
		r == '·'
}

// IsValidMetaId reports whether id is an XML ID (an NCName).
func IsValidMetaId(id string) bool {
	if id == "" {
		return false
	}

	for i, r := range id {
		if i == 0 {
			if !isNameStartChar(r) {
				return false
			}
		} else if !isNameChar(r) {
			return false
		}
	}
	return true
}

const (
	sboPrefix  = "SBO:"
	sboMaxTerm = 9999999
)

// IsValidSBOTerm reports whether term is in the SBO number range.
func IsValidSBOTerm(term int) bool { return term >= 0 && term <= sboMaxTerm }

// FormatSBOTerm renders term as "SBO:nnnnnnn".
func FormatSBOTerm(term int) string {
	if !IsValidSBOTerm(term) {
		return ""
	}
	return fmt.Sprintf("%s%07d", sboPrefix, term)
}

// ParseSBOTerm parses "SBO:nnnnnnn".
func ParseSBOTerm(s string) (int, bool) {
	if len(s) != len(sboPrefix)+7 || !strings.HasPrefix(s, sboPrefix) {
		return -1, false
	}

	digits := s[len(sboPrefix):]
	for _, r := range digits {
		if !isASCIIDigit(r) {
			return -1, false
		}
	}

	term, err := strconv.Atoi(digits)
	if err != nil {
		return -1, false
	}
	return term, true
}

func parseBool(s string) (bool, bool) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "INF":
		s = "+Inf"
	case "-INF":
		s = "-Inf"
	}

	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, err == nil
}
