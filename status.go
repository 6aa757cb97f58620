package sbml

// Status is the result of a mutating operation on the model.
type Status int8

const (
	OperationSuccess = Status(iota)
	IndexExceedsSize
	UnexpectedAttribute
	OperationFailed
	InvalidAttributeValue
	InvalidObject
	DuplicateObjectID
	LevelMismatch
	VersionMismatch
	PkgUnknown
	NamespacesMismatch
)

var statusStrings = [...]string{
	OperationSuccess:      "success",
	IndexExceedsSize:      "index-exceeds-size",
	UnexpectedAttribute:   "unexpected-attribute",
	OperationFailed:       "operation-failed",
	InvalidAttributeValue: "invalid-attribute-value",
	InvalidObject:         "invalid-object",
	DuplicateObjectID:     "duplicate-object-id",
	LevelMismatch:         "level-mismatch",
	VersionMismatch:       "version-mismatch",
	PkgUnknown:            "pkg-unknown",
	NamespacesMismatch:    "namespaces-mismatch",
}

func (s Status) String() string { return statusStrings[s] }

// OK reports whether s is OperationSuccess.
func (s Status) OK() bool { return s == OperationSuccess }
