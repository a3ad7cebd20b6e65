package engine

import (
	"fmt"
	"strings"
)

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage StageKind
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v shader error: %v", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError reports a program whose link status check failed.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("linker error: %v", strings.TrimSpace(e.Log))
}

// InvalidSizeError reports vertex data that does not split into whole vertices,
// or whose vertex count disagrees with the attributes already uploaded.
type InvalidSizeError struct {
	Attribute AttributeName
	Length    int
	ItemSize  int

	// vertex count mismatch, Expected may be zero for an empty attribute
	Mismatch    bool
	VertexCount int
	Expected    int
}

func (e *InvalidSizeError) Error() string {
	if e.Mismatch {
		return fmt.Sprintf("attribute %v: %v vertices, other attributes have %v", e.Attribute, e.VertexCount, e.Expected)
	}
	return fmt.Sprintf("attribute %v: length %v is not a multiple of item size %v", e.Attribute, e.Length, e.ItemSize)
}

// MissingAttributeError reports a draw of geometry lacking a required attribute.
type MissingAttributeError struct {
	Attribute AttributeName
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing attribute: %v", e.Attribute)
}
