package chain

import (
	"fmt"

	"github.com/minichain/minichain/pow"
)

// Reason identifies which invariant a faulty Block violates.
type Reason uint8

const (
	// ReasonNone is the zero Reason carried by the zero Fault.
	ReasonNone = Reason(iota)
	// ReasonContentAltered marks a Block whose stored digest no longer
	// matches a digest recomputed from its stored fields.
	ReasonContentAltered
	// ReasonBrokenLinkage marks a Block whose parent hash does not match the
	// digest of the Block before it.
	ReasonBrokenLinkage
	// ReasonInsufficientWork marks a Block whose digest does not satisfy the
	// Chain's difficulty.
	ReasonInsufficientWork
)

// String implements the `fmt.Stringer` interface for the Reason type.
func (reason Reason) String() string {
	switch reason {
	case ReasonNone:
		return "none"
	case ReasonContentAltered:
		return "content altered"
	case ReasonBrokenLinkage:
		return "broken linkage"
	case ReasonInsufficientWork:
		return "insufficient work"
	default:
		panic(fmt.Errorf("non-exhaustive pattern: %d", uint8(reason)))
	}
}

// A Fault locates the first Block that fails verification.
type Fault struct {
	Index  uint64
	Reason Reason
}

// String implements the `fmt.Stringer` interface for the Fault type.
func (fault Fault) String() string {
	return fmt.Sprintf("Fault(Index=%d,Reason=%s)", fault.Index, fault.Reason)
}

// Verify traverses the Chain from index 1 and checks every Block against the
// content, linkage, and proof-of-work invariants, stopping at the first
// fault. Genesis is trusted axiomatically: it anchors linkage but its own
// digest is not rechecked. Verify never mutates the Chain; a detected
// integrity violation is a normal return value, not an error.
func (chain *Chain) Verify() (Fault, bool) {
	for i := 1; i < len(chain.blocks); i++ {
		current := chain.blocks[i]
		previous := chain.blocks[i-1]

		if !current.Hash.Equal(current.ComputeHash()) {
			return Fault{Index: current.Index, Reason: ReasonContentAltered}, false
		}
		if !current.ParentHash.Equal(previous.Hash) {
			return Fault{Index: current.Index, Reason: ReasonBrokenLinkage}, false
		}
		if !pow.SatisfiesTarget(current.Hash, chain.opts.Difficulty) {
			return Fault{Index: current.Index, Reason: ReasonInsufficientWork}, false
		}
	}
	return Fault{}, true
}
