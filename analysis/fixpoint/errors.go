package fixpoint

import (
	"errors"
	"fmt"
)

// Failure categories of a fixpoint computation. Every error returned by
// Fixpoint wraps exactly one of these sentinels together with the identity
// of the offending node, and is matchable with errors.Is.
var (
	// ErrUnknownNode flags a node that is not part of the graph under
	// computation, either among the starting points or yielded by the
	// working set.
	ErrUnknownNode = errors.New("node is not part of the graph")
	// ErrMissingEntryState flags a node with neither a prescribed entry
	// state nor a stored predecessor result to derive one from.
	ErrMissingEntryState = errors.New("node does not have an entry state")
	// ErrTransferFailure flags a semantic function that signaled a
	// computation failure.
	ErrTransferFailure = errors.New("semantic computation failed")
	// ErrEntryStateFailure flags a failure while assembling a node's entry
	// state from its predecessors.
	ErrEntryStateFailure = errors.New("entry state computation failed")
	// ErrCombinationFailure flags a failure while combining a new
	// approximation with a stored one.
	ErrCombinationFailure = errors.New("combination of approximations failed")
	// ErrUnexpectedFailure flags any other failure escaping the fixpoint
	// loop.
	ErrUnexpectedFailure = errors.New("unexpected failure during fixpoint computation")
)

func nodeError[N comparable](kind error, node N) error {
	return fmt.Errorf("%w: %v", kind, node)
}

func nodeErrorCause[N comparable](kind error, node N, cause error) error {
	return fmt.Errorf("%w: %v: %w", kind, node, cause)
}

// guard converts panics raised by client lattice operations into an error
// of the given category.
func guard[N comparable](kind error, node N, do func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v: %v", kind, node, r)
		}
	}()
	do()
	return nil
}
