//go:build debug
// +build debug

package sbml

const debug = true
