package evaluator

import "github.com/nodeflow/bme/internal/bmeerrors"

// callStack is the depth guard spec.md §5 asks for, grounded in
// internal/interp/evaluator/callstack.go's push/pop-with-limit shape. One
// instance is created per Execute call and shared across both recursions the
// evaluator performs - the execution-flow chain and the Static pull chain -
// so the limit bounds their combined depth, matching spec.md §5: "Recursion
// depth is bounded by the graph's execution-chain length plus Static-
// resolution depth."
type callStack struct {
	depth int
	limit int
}

func newCallStack(limit int) *callStack {
	return &callStack{limit: limit}
}

// push increments the depth counter, failing with DepthExceeded once the
// configured limit is passed.
func (c *callStack) push() error {
	c.depth++
	if c.depth > c.limit {
		return bmeerrors.DepthExceeded(c.limit)
	}
	return nil
}

// pop decrements the depth counter. Called via defer immediately after a
// successful push.
func (c *callStack) pop() {
	c.depth--
}
