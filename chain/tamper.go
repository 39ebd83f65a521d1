package chain

import (
	"fmt"

	"github.com/minichain/minichain/block"
)

// Tamper mutates a Block in place, bypassing mining and linkage. It exists
// only so that demos and tests can exercise Verify's detection behavior;
// nothing else in the API can mutate a mined Block. The mutation is applied
// to the Chain's own copy of the Block, so the next Verify sees it.
func (chain *Chain) Tamper(index uint64, mutate func(*block.Block)) error {
	if index >= uint64(len(chain.blocks)) {
		return fmt.Errorf("tampering with block %d: chain has %d blocks", index, len(chain.blocks))
	}
	mutate(&chain.blocks[index])
	chain.opts.Logger.
		WithField("index", index).
		Warn("block tampered")
	return nil
}
