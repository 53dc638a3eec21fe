package tree

import "errors"

// Sentinel errors for the tree package.
var (
	// ErrUnknownWidget is returned for a node that names no known widget.
	ErrUnknownWidget = errors.New("tree: node names no known widget")

	// ErrAmbiguousNode is returned for a node that names more than one widget.
	ErrAmbiguousNode = errors.New("tree: node names more than one widget")

	// ErrUnsupportedFormat is returned for definition files with an unknown
	// extension.
	ErrUnsupportedFormat = errors.New("tree: unsupported format")

	// ErrEmptyAnimation is returned for an animation without children.
	ErrEmptyAnimation = errors.New("tree: animation needs at least one child")

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("tree: missing required field")
)
