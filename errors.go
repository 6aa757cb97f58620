package sbml

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConstructorError is returned when a node can not be built for the
// requested level/version. It is the only failure that aborts creation.
type ConstructorError struct {
	Kind string
	LV   LevelVersion
	msg  string
}

func newConstructorError(kind string, lv LevelVersion, msg string) *ConstructorError {
	return &ConstructorError{Kind: kind, LV: lv, msg: msg}
}

func (e *ConstructorError) Error() string {
	return fmt.Sprintf("sbml: can not construct %s at %s: %s", e.Kind, e.LV, e.msg)
}

// IsConstructorError reports whether err wraps a *ConstructorError.
func IsConstructorError(err error) bool {
	_, ok := errors.Cause(err).(*ConstructorError)
	return ok
}

var (
	errNilNode      = errors.New("sbml: nil node")
	errTypeNotFound = errors.New("sbml: type code not registered")
)
