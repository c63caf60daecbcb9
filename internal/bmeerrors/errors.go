// Package bmeerrors defines the engine's error taxonomy (spec.md §7). Every
// public operation returns one of these categories, tagged with the graph
// coordinates (block/port ids) involved rather than a source position -
// this engine interprets JSON graphs, not source text.
package bmeerrors

import "fmt"

// Category identifies which of spec.md §7's error kinds an Error reports.
type Category string

const (
	// CategoryGraphInvalid is a loader-level structural violation.
	CategoryGraphInvalid Category = "GraphInvalid"
	// CategoryTypeUnknown means JSON referenced a connection type or block
	// kind that was never registered.
	CategoryTypeUnknown Category = "TypeUnknown"
	// CategoryMissingBlock means an edge or lookup referenced a block id
	// absent from the loaded graph.
	CategoryMissingBlock Category = "MissingBlock"
	// CategoryMissingOutput means a Static producer chain did not yield the
	// requested output port.
	CategoryMissingOutput Category = "MissingOutput"
	// CategoryRegisterMiss means a Normal/Start output was read before that
	// block ran - an execution-order violation.
	CategoryRegisterMiss Category = "RegisterMiss"
	// CategoryTypeMismatch means a handler received a Value whose dynamic
	// tag did not match its declared port type.
	CategoryTypeMismatch Category = "TypeMismatch"
	// CategoryBlockFailed wraps an error returned by a block handler.
	CategoryBlockFailed Category = "BlockFailed"
	// CategoryDepthExceeded means the recursion guard tripped.
	CategoryDepthExceeded Category = "DepthExceeded"
	// CategoryNoStart means the graph has no Start block.
	CategoryNoStart Category = "NoStart"
)

// Error is the engine's single error type. All public operations return
// either nil or an *Error.
type Error struct {
	Category Category
	Message  string

	// BlockID/PortID pinpoint the offending graph coordinates when known.
	BlockID *uint32
	PortID  *uint32

	// Cause chains an underlying error (e.g. a BlockFailed handler error),
	// mirroring internal/errors.InterpreterError's Unwrap-based chaining.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.BlockID != nil && e.PortID != nil:
		return fmt.Sprintf("%s error (block %d, port %d): %s", e.Category, *e.BlockID, *e.PortID, e.Message)
	case e.BlockID != nil:
		return fmt.Sprintf("%s error (block %d): %s", e.Category, *e.BlockID, e.Message)
	default:
		return fmt.Sprintf("%s error: %s", e.Category, e.Message)
	}
}

// Unwrap exposes the chained cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

func u32(v uint32) *uint32 { return &v }

// GraphInvalid reports a loader-level structural violation.
func GraphInvalid(reason string) *Error {
	return &Error{Category: CategoryGraphInvalid, Message: reason}
}

// TypeUnknown reports a JSON connection type or block kind with no
// registered descriptor.
func TypeUnknown(name string) *Error {
	return &Error{Category: CategoryTypeUnknown, Message: fmt.Sprintf("unknown type %q", name)}
}

// MissingBlock reports a reference to a block id absent from the graph.
func MissingBlock(blockID uint32) *Error {
	return &Error{Category: CategoryMissingBlock, Message: "no block with the given id", BlockID: u32(blockID)}
}

// MissingOutput reports a Static producer chain that did not yield the
// requested output port.
func MissingOutput(blockID, portID uint32) *Error {
	return &Error{Category: CategoryMissingOutput, Message: "no value produced for this output port", BlockID: u32(blockID), PortID: u32(portID)}
}

// RegisterMiss reports an execution-order violation: a Normal/Start output
// was read before that block ran.
func RegisterMiss(blockID, portID uint32) *Error {
	return &Error{Category: CategoryRegisterMiss, Message: "value not available in register", BlockID: u32(blockID), PortID: u32(portID)}
}

// TypeMismatch reports a handler input whose dynamic tag did not match its
// declared port type.
func TypeMismatch(blockID uint32, expected, found string) *Error {
	return &Error{
		Category: CategoryTypeMismatch,
		Message:  fmt.Sprintf("expected %s, got %s", expected, found),
		BlockID:  u32(blockID),
	}
}

// BlockFailed wraps an error returned by a block handler.
func BlockFailed(blockID uint32, cause error) *Error {
	return &Error{Category: CategoryBlockFailed, Message: cause.Error(), BlockID: u32(blockID), Cause: cause}
}

// DepthExceeded reports that the recursion guard tripped.
func DepthExceeded(limit int) *Error {
	return &Error{Category: CategoryDepthExceeded, Message: fmt.Sprintf("maximum recursion depth (%d) exceeded", limit)}
}

// NoStart reports a graph with no Start block.
func NoStart() *Error {
	return &Error{Category: CategoryNoStart, Message: "no start block in the loaded graph"}
}
